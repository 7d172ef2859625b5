// Package docs holds the Swagger 2.0 document served at /swagger. Keep it in
// step with the @-annotations on the handlers in internal/adapters/handler/http.
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
        "/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["stats"],
                "summary": "Recognized categories with labels and icons",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/http.categoryResponse"}}
                    }
                }
            }
        },
        "/habits": {
            "get": {
                "produces": ["application/json"],
                "tags": ["habits"],
                "summary": "List habits",
                "parameters": [
                    {"type": "string", "description": "Case-insensitive match on name or description", "name": "search", "in": "query"},
                    {"type": "string", "description": "Exact category", "name": "category", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Habit"}}
                    }
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["habits"],
                "summary": "Add a habit",
                "parameters": [
                    {"description": "New habit", "name": "habit", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.createHabitRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Habit"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/habits/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["habits"],
                "summary": "Get a habit",
                "parameters": [
                    {"type": "string", "description": "Habit ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Habit"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["habits"],
                "summary": "Edit name, description or category",
                "parameters": [
                    {"type": "string", "description": "Habit ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "habit", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.updateHabitRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Habit"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["habits"],
                "summary": "Delete a habit (undoable for a short window)",
                "parameters": [
                    {"type": "string", "description": "Habit ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Habit"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/habits/{id}/restore": {
            "post": {
                "produces": ["application/json"],
                "tags": ["habits"],
                "summary": "Undo a recent deletion",
                "parameters": [
                    {"type": "string", "description": "Habit ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Habit"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "410": {"description": "Gone", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/habits/{id}/streaks": {
            "get": {
                "produces": ["application/json"],
                "tags": ["stats"],
                "summary": "Current and longest streak of one habit",
                "parameters": [
                    {"type": "string", "description": "Habit ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Streaks"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/habits/{id}/toggle": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["habits"],
                "summary": "Toggle completion for today, or for the given date",
                "parameters": [
                    {"type": "string", "description": "Habit ID", "name": "id", "in": "path", "required": true},
                    {"description": "Optional YYYY-MM-DD date", "name": "body", "in": "body", "schema": {"$ref": "#/definitions/http.toggleHabitRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.toggleResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["stats"],
                "summary": "Completion statistics",
                "parameters": [
                    {"type": "string", "description": "Reference day (YYYY-MM-DD), defaults to the local date", "name": "today", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.StatsSnapshot"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "domain.CategoryStat": {
            "type": "object",
            "properties": {
                "completed": {"type": "integer"},
                "icon": {"type": "string"},
                "label": {"type": "string"},
                "name": {"type": "string"},
                "rate": {"type": "number"},
                "total": {"type": "integer"}
            }
        },
        "domain.DayStat": {
            "type": "object",
            "properties": {
                "completed": {"type": "integer"},
                "date": {"type": "string"},
                "day": {"type": "string"},
                "rate": {"type": "number"},
                "total": {"type": "integer"}
            }
        },
        "domain.Habit": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "completedDates": {"type": "array", "items": {"type": "string"}},
                "createdAt": {"type": "string"},
                "description": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "domain.StatsSnapshot": {
            "type": "object",
            "properties": {
                "categories": {"type": "array", "items": {"$ref": "#/definitions/domain.CategoryStat"}},
                "completed_today": {"type": "integer"},
                "completion_rate": {"type": "number"},
                "longest_streak": {"type": "integer"},
                "today": {"type": "string"},
                "total_habits": {"type": "integer"},
                "weekly": {"type": "array", "items": {"$ref": "#/definitions/domain.DayStat"}}
            }
        },
        "domain.Streaks": {
            "type": "object",
            "properties": {
                "current_streak": {"type": "integer"},
                "longest_streak": {"type": "integer"}
            }
        },
        "http.categoryResponse": {
            "type": "object",
            "properties": {
                "icon": {"type": "string"},
                "label": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "http.createHabitRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "category": {"type": "string"},
                "description": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "http.toggleHabitRequest": {
            "type": "object",
            "properties": {
                "date": {"type": "string"}
            }
        },
        "http.toggleResponse": {
            "type": "object",
            "properties": {
                "completed": {"type": "boolean"},
                "habit": {"$ref": "#/definitions/domain.Habit"}
            }
        },
        "http.updateHabitRequest": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "description": {"type": "string"},
                "name": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Kanso Habits API",
	Description:      "Habit tracking with streaks and completion statistics.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
