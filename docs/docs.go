// Package docs registers the OpenAPI document served at /swagger.
// Regenerate with `swag init -g cmd/api/main.go` after changing handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/grasswren/geo/nearby": {
            "get": {
                "description": "Lists sightings within the configured radius of a postcode, nearest first.",
                "produces": ["application/json"],
                "tags": ["grasswren"],
                "summary": "Nearby grasswren sightings",
                "parameters": [
                    {"type": "string", "description": "Postcode", "name": "postcode", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/geo.NearbyResult"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/risk/estimate": {
            "get": {
                "description": "Fuses historical fire incidence, the weather forecast and the fire model score for a postcode.",
                "produces": ["application/json"],
                "tags": ["risk"],
                "summary": "Estimate fire risk",
                "parameters": [
                    {"type": "string", "description": "Postcode", "name": "postcode", "in": "query", "required": true},
                    {"type": "string", "description": "ISO date, e.g. 2024-11-20", "name": "currentDate", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.RiskEstimate"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "geo.NearbyResult": {
            "type": "object",
            "properties": {
                "nearby": {"type": "boolean"},
                "observations": {"type": "array", "items": {"$ref": "#/definitions/models.NearbyObservation"}}
            }
        },
        "models.FireIncidentAggregate": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "distance_km": {"type": "number"},
                "fire_date": {"type": "string"},
                "month": {"type": "integer"}
            }
        },
        "models.NearbyObservation": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "distance_km": {"type": "number"},
                "id": {"type": "integer"},
                "latitude": {"type": "number"},
                "longitude": {"type": "number"},
                "wren_id": {"type": "string"}
            }
        },
        "models.RiskEstimate": {
            "type": "object",
            "properties": {
                "city": {"type": "string"},
                "historicalData": {"type": "array", "items": {"$ref": "#/definitions/models.FireIncidentAggregate"}},
                "latitude": {"type": "number"},
                "longitude": {"type": "number"},
                "probability": {"type": "string"},
                "riskLevel": {"$ref": "#/definitions/models.RiskLevel"},
                "state": {"type": "string"}
            }
        },
        "models.RiskLevel": {
            "type": "string",
            "enum": ["Moderate", "High", "Extreme", "Catastrophic"],
            "x-enum-varnames": ["RiskModerate", "RiskHigh", "RiskExtreme", "RiskCatastrophic"]
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Grasswren API",
	Description:      "Fire-risk estimates and grasswren sightings by postcode.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
