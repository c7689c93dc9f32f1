package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"grasswren-api/internal/config"
	"grasswren-api/internal/observability"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

func main() {
	table := flag.String("table", "", "Table to seed: fires or observations")
	file := flag.String("file", "", "Path to the CSV file to import")
	flag.Parse()

	if *table == "" || *file == "" {
		fmt.Fprintln(os.Stderr, "Error: --table and --file flags are required")
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	observability.SetupLogger(cfg.LogLevel, cfg.LogFormat)

	ds, err := lookupDataset(*table)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid table")
	}

	log.Info().Str("table", ds.table).Str("file", *file).Msg("starting import")

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open file")
	}
	rows, err := parseCSV(f, ds)
	f.Close()
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing CSV")
	}
	log.Info().Int("rows", len(rows)).Msg("parsed records")

	ctx := context.Background()

	// pgx stdlib driver; copyRows reaches the raw pgx connection for CopyFrom.
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, ds.ddl); err != nil {
		log.Fatal().Err(err).Msg("error creating table")
	}

	before, err := countRows(ctx, db, ds.table)
	if err != nil {
		log.Fatal().Err(err).Msg("error counting rows")
	}

	copied, err := copyRows(ctx, db, ds, rows)
	if err != nil {
		log.Fatal().Err(err).Msg("error inserting records")
	}

	after, err := countRows(ctx, db, ds.table)
	if err != nil {
		log.Fatal().Err(err).Msg("error counting rows")
	}
	if after-before != len(rows) || copied != int64(len(rows)) {
		log.Fatal().Int("expected", len(rows)).Int("got", after-before).Int64("copied", copied).Msg("record count mismatch")
	}

	log.Info().Str("table", ds.table).Int("rows", len(rows)).Int("total", after).Msg("import complete")
}

// copyRows bulk loads rows with a single COPY on the underlying pgx connection.
func copyRows(ctx context.Context, db *sqlx.DB, ds dataset, rows [][]interface{}) (int64, error) {
	conn, err := db.Conn(ctx)
	if err != nil {
		return 0, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	var copied int64
	err = conn.Raw(func(driverConn any) error {
		pgxConn := driverConn.(*stdlib.Conn).Conn()
		n, err := pgxConn.CopyFrom(ctx, pgx.Identifier{ds.table}, ds.columns, pgx.CopyFromRows(rows))
		copied = n
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("copy: %w", err)
	}
	return copied, nil
}

func countRows(ctx context.Context, db *sqlx.DB, table string) (int, error) {
	var count int
	if err := db.GetContext(ctx, &count, "SELECT COUNT(*) FROM "+pgx.Identifier{table}.Sanitize()); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}
