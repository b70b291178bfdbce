// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package docs registers the OpenAPI document served at /swagger/doc.json.
// Regenerate from the handler annotations with:
//
//	swag init -g cmd/server/docs.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "GitHub Repository",
            "url": "https://github.com/tomtom215/marquee"
        },
        "license": {
            "name": "AGPL-3.0-or-later",
            "url": "https://www.gnu.org/licenses/agpl-3.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/search/actors": {
            "get": {
                "description": "Classifies the query into an emotion vector and ranks actors by cosine similarity blended with a fame prior.",
                "produces": ["application/json"],
                "tags": ["Search"],
                "summary": "Search actors by emotional profile",
                "parameters": [
                    {"type": "string", "description": "Free-text query; longer than 2000 characters is truncated", "name": "q", "in": "query"},
                    {"enum": ["primary", "lsa"], "type": "string", "description": "Ranking mode", "name": "mode", "in": "query"},
                    {"maximum": 1000, "type": "integer", "description": "Number of results; 0 or less returns all", "name": "top_k", "in": "query"},
                    {"maximum": 1, "minimum": 0, "type": "number", "description": "Fame blend weight", "name": "fame_weight", "in": "query"},
                    {"type": "boolean", "description": "Attach actor records", "name": "hydrate", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Ranked actors", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "400": {"description": "Invalid parameters", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "429": {"description": "Rate limit exceeded", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "503": {"description": "Index not built yet", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            },
            "post": {
                "description": "Same as GET with the search in a JSON body; query parameters win.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Search"],
                "summary": "Search actors by emotional profile",
                "parameters": [
                    {"description": "Search", "name": "request", "in": "body", "schema": {"$ref": "#/definitions/retrieval.RankRequest"}}
                ],
                "responses": {
                    "200": {"description": "Ranked actors", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "400": {"description": "Invalid parameters", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "503": {"description": "Index not built yet", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/index/rebuild": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Reclassifies actors as needed and rebuilds the primary and/or LSA index. With async=true the request is queued and 202 is returned.",
                "produces": ["application/json"],
                "tags": ["Index"],
                "summary": "Rebuild search indexes",
                "parameters": [
                    {"enum": ["primary", "lsa", "all"], "type": "string", "default": "all", "description": "Indexes to rebuild", "name": "mode", "in": "query"},
                    {"type": "boolean", "description": "Classify every actor again", "name": "reclassify", "in": "query"},
                    {"type": "boolean", "description": "Queue the rebuild and return immediately", "name": "async", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Rebuild finished", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "202": {"description": "Rebuild queued", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "400": {"description": "Invalid parameters", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "401": {"description": "Missing or invalid bearer token", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "409": {"description": "Rebuild already in progress", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "503": {"description": "Classifier or database unavailable", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/index/status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Index"],
                "summary": "Index status",
                "responses": {
                    "200": {"description": "Current status", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/health/live": {
            "get": {
                "description": "Returns 200 while the process is up, regardless of index state.",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "Service is alive", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        },
        "/health/ready": {
            "get": {
                "description": "Returns 200 once the primary index has been built, 503 before.",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "Service is ready", "schema": {"$ref": "#/definitions/api.APIResponse"}},
                    "503": {"description": "Index not built yet", "schema": {"$ref": "#/definitions/api.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "details": {},
                "message": {"type": "string"},
                "request_id": {"type": "string"}
            }
        },
        "api.SearchMeta": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "degraded": {"type": "boolean"},
                "fallback": {"type": "boolean"},
                "mode": {"type": "string"},
                "partial": {"type": "boolean"},
                "requested_mode": {"type": "string"}
            }
        },
        "api.APIMeta": {
            "type": "object",
            "properties": {
                "duration_ms": {"type": "integer"},
                "request_id": {"type": "string"},
                "search": {"$ref": "#/definitions/api.SearchMeta"},
                "timestamp": {"type": "string"}
            }
        },
        "api.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"$ref": "#/definitions/api.APIError"},
                "meta": {"$ref": "#/definitions/api.APIMeta"},
                "success": {"type": "boolean"}
            }
        },
        "retrieval.RankRequest": {
            "type": "object",
            "properties": {
                "fame_weight": {"type": "number", "maximum": 1, "minimum": 0},
                "hydrate": {"type": "boolean"},
                "mode": {"type": "string", "enum": ["primary", "lsa"]},
                "query": {"type": "string"},
                "top_k": {"type": "integer", "maximum": 1000}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "HS256 token with role admin: \"Bearer <token>\"",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Marquee API",
	Description:      "Emotion-aware actor search: rank actors whose on-screen dialogue matches the emotional tone of a free-text query.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
