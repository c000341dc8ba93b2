// Package docs registers the OpenAPI document served under /swagger. Keep it
// in step with the swag annotations on the handlers.
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
        "/brackets": {
            "post": {
                "description": "Groups matches by canonical round, resolves slots and flags winners. Matches with unknown round labels are listed in dropped_match_ids.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["brackets"],
                "summary": "Build a bracket from raw matches",
                "parameters": [
                    {
                        "description": "Matches",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.buildBracketInput"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.BracketResult"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "422": {"description": "Unprocessable Entity", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/rankings": {
            "post": {
                "description": "Rounds keep first-appearance order. In the placement round explicit places win over scores.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["rankings"],
                "summary": "Rank performances per round",
                "parameters": [
                    {
                        "description": "Performances",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.rankPerformancesInput"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.RoundRanking"}}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "422": {"description": "Unprocessable Entity", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/tournaments/{tournamentID}/bracket": {
            "get": {
                "produces": ["application/json"],
                "tags": ["brackets"],
                "summary": "Get the bracket of a stored tournament",
                "parameters": [
                    {"type": "integer", "description": "Tournament ID", "name": "tournamentID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.BracketResult"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/tournaments/{tournamentID}/connectors": {
            "get": {
                "description": "Derived from round and match order only. The bronze round is never linked.",
                "produces": ["application/json"],
                "tags": ["brackets"],
                "summary": "Get the connector lines between bracket rounds",
                "parameters": [
                    {"type": "integer", "description": "Tournament ID", "name": "tournamentID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/brackets.Connector"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/tournaments/{tournamentID}/rankings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["rankings"],
                "summary": "Get the leaderboard of a stored tournament",
                "parameters": [
                    {"type": "integer", "description": "Tournament ID", "name": "tournamentID", "in": "path", "required": true},
                    {"type": "string", "description": "Placement round label, defaults to the one stored for the tournament", "name": "placement_round", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.RoundRanking"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/tournaments/{tournamentID}/placement-round": {
            "put": {
                "security": [{"BearerAuth": []}],
                "description": "A blank label clears the designation.",
                "consumes": ["application/json"],
                "tags": ["rankings"],
                "summary": "Designate the placement round of a tournament",
                "parameters": [
                    {"type": "integer", "description": "Tournament ID", "name": "tournamentID", "in": "path", "required": true},
                    {"description": "Placement round", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.placementRoundInput"}}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "401": {"description": "Unauthorized"},
                    "403": {"description": "Forbidden"},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/tournaments/{tournamentID}/publish": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Broadcasts the bracket and leaderboard to websocket clients and uploads them to storage when they changed since the last publish.",
                "produces": ["application/json"],
                "tags": ["publishing"],
                "summary": "Publish the tournament snapshot",
                "parameters": [
                    {"type": "integer", "description": "Tournament ID", "name": "tournamentID", "in": "path", "required": true},
                    {"type": "boolean", "description": "Publish even when nothing changed", "name": "force", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.PublishResult"}},
                    "401": {"description": "Unauthorized"},
                    "403": {"description": "Forbidden"},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["publishing"],
                "summary": "Remove the stored tournament snapshot",
                "parameters": [
                    {"type": "integer", "description": "Tournament ID", "name": "tournamentID", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "401": {"description": "Unauthorized"},
                    "403": {"description": "Forbidden"}
                }
            }
        }
    },
    "definitions": {
        "brackets.Connector": {
            "type": "object",
            "properties": {
                "from_match_id": {"type": "string"},
                "from_round": {"type": "string"},
                "to_match_id": {"type": "string"},
                "to_round": {"type": "string"},
                "to_slot": {"type": "string", "enum": ["first", "second"]}
            }
        },
        "handlers.buildBracketInput": {
            "type": "object",
            "properties": {
                "matches": {"type": "array", "items": {"$ref": "#/definitions/models.Match"}}
            }
        },
        "handlers.placementRoundInput": {
            "type": "object",
            "properties": {
                "placement_round": {"type": "string"}
            }
        },
        "handlers.rankPerformancesInput": {
            "type": "object",
            "properties": {
                "performances": {"type": "array", "items": {"$ref": "#/definitions/models.Performance"}},
                "placement_round": {"type": "string"}
            }
        },
        "models.BracketMatch": {
            "type": "object",
            "properties": {
                "completed_time": {"type": "string"},
                "display_name": {"type": "string"},
                "first": {"$ref": "#/definitions/models.Slot"},
                "id": {"type": "string"},
                "round_label": {"type": "string"},
                "scheduled_time": {"type": "string"},
                "second": {"$ref": "#/definitions/models.Slot"},
                "status": {"type": "string", "enum": ["scheduled", "in_progress", "completed"]},
                "winner": {"type": "string", "enum": ["none", "first", "second"]},
                "winner_ref": {"type": "string"}
            }
        },
        "models.BracketResult": {
            "type": "object",
            "properties": {
                "dropped_match_ids": {"type": "array", "items": {"type": "string"}},
                "participant_count": {"type": "integer"},
                "rounds": {"type": "array", "items": {"$ref": "#/definitions/models.RoundGroup"}}
            }
        },
        "models.Match": {
            "type": "object",
            "properties": {
                "completed_time": {"type": "string"},
                "display_name": {"type": "string"},
                "id": {"type": "string"},
                "participants": {"type": "array", "items": {"$ref": "#/definitions/models.Participant"}},
                "round_label": {"type": "string"},
                "scheduled_time": {"type": "string"},
                "status": {"type": "string", "enum": ["scheduled", "in_progress", "completed"]},
                "winner_ref": {"type": "string"}
            }
        },
        "models.Participant": {
            "type": "object",
            "properties": {
                "kind": {"type": "string", "enum": ["player", "team", "bye"]},
                "position": {"type": "string"},
                "ref": {"type": "string"}
            }
        },
        "models.Performance": {
            "type": "object",
            "properties": {
                "final_score": {"type": "number"},
                "id": {"type": "string"},
                "performance_order": {"type": "integer"},
                "performer_ref": {"type": "string"},
                "place": {"type": "integer"},
                "round_label": {"type": "string"},
                "scores": {"type": "array", "items": {"type": "number"}}
            }
        },
        "models.RankedPerformance": {
            "type": "object",
            "properties": {
                "final_score": {"type": "number"},
                "id": {"type": "string"},
                "performance_order": {"type": "integer"},
                "performer_ref": {"type": "string"},
                "place": {"type": "integer"},
                "rank": {"type": "integer"},
                "round_label": {"type": "string"},
                "scores": {"type": "array", "items": {"type": "number"}}
            }
        },
        "models.RoundGroup": {
            "type": "object",
            "properties": {
                "matches": {"type": "array", "items": {"$ref": "#/definitions/models.BracketMatch"}},
                "round": {"type": "string", "enum": ["Preliminary", "Quarterfinal", "Semifinal", "Bronze", "Final"]}
            }
        },
        "models.RoundRanking": {
            "type": "object",
            "properties": {
                "entries": {"type": "array", "items": {"$ref": "#/definitions/models.RankedPerformance"}},
                "placement": {"type": "boolean"},
                "round_label": {"type": "string"}
            }
        },
        "models.Slot": {
            "type": "object",
            "properties": {
                "bye": {"type": "boolean"},
                "participant": {"$ref": "#/definitions/models.Participant"},
                "winner": {"type": "boolean"}
            }
        },
        "services.PublishResult": {
            "type": "object",
            "properties": {
                "changed": {"type": "boolean"},
                "digest": {"type": "string"},
                "location": {"type": "string"},
                "tournament_id": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
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
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Bracketboard API",
	Description:      "Bracket and leaderboard views over tournament match and performance data.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
