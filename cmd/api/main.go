package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "grasswren-api/docs"
	"grasswren-api/internal/config"
	"grasswren-api/internal/firemodel"
	"grasswren-api/internal/geocoder"
	"grasswren-api/internal/handler"
	"grasswren-api/internal/observability"
	"grasswren-api/internal/repository"
	"grasswren-api/internal/service"
	"grasswren-api/internal/weather"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	observability.SetupLogger(config.LogLevel, config.LogFormat)
	if config.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Database connection
	conn, err := pgxpool.New(ctx, config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)
	clock := clockwork.NewRealClock()

	// Upstream adapters
	var resolver service.LocationResolver = geocoder.NewClient(
		config.GeocodeAPIKey, config.GeocodeBaseURL, config.GeocodeCountrySuffix, metrics, clock)
	if config.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     config.RedisAddr,
			Password: config.RedisPassword,
			DB:       config.RedisDB,
		})
		defer rdb.Close()
		resolver = geocoder.NewCachedResolver(resolver, rdb, config.GeocodeCacheTTL, metrics)
		log.Info().Str("addr", config.RedisAddr).Dur("ttl", config.GeocodeCacheTTL).Msg("geocode cache enabled")
	}
	forecasts := weather.NewClient(config.WeatherAPIKey, config.WeatherBaseURL, metrics, clock)
	model := firemodel.NewClient(config.FireModelURL, config.FireModelAPIKey, metrics, clock)
	if config.FireModelURL == "" {
		log.Warn().Msg("FIRE_MODEL_URL not set, estimates will omit the model score")
	}

	// Initialize layers
	repo := repository.NewRepository(conn)

	riskService := service.NewRiskService(resolver, repo, forecasts, model, metrics, clock)
	nearbyService := service.NewNearbyService(resolver, repo, config.NearbyRadiusKm)

	riskHandler := handler.NewRiskHandler(riskService)
	nearbyHandler := handler.NewNearbyHandler(nearbyService)

	r := handler.NewRouter(riskHandler, nearbyHandler, promhttp.Handler())

	srv := &http.Server{
		Addr:    config.ServerAddress,
		Handler: r,
	}

	go func() {
		log.Info().Str("addr", config.ServerAddress).Msg("http server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown error")
	}
}
