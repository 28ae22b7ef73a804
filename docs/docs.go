// Package docs Transit Graph API.
//
// Schemes: http, https
// BasePath: /
// Version: 1.0.0
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/stops/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Stops"],
                "summary": "Остановка по ID",
                "parameters": [
                    {"type": "integer", "description": "ID остановки", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/stops/{id}/lines": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Stops"],
                "summary": "Линии, проходящие через остановку",
                "parameters": [
                    {"type": "integer", "description": "ID остановки", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Типы транспорта через запятую (Bus,Tram,Metro,...)", "name": "transportation_types", "in": "query"},
                    {"type": "string", "description": "ID линий через запятую", "name": "line_ids", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/stops/{id}/realtime": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Stops"],
                "summary": "Табло отправлений остановки",
                "parameters": [
                    {"type": "integer", "description": "ID остановки", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Типы транспорта через запятую", "name": "transport_types", "in": "query"},
                    {"type": "string", "description": "Названия линий через запятую", "name": "line_names", "in": "query"},
                    {"type": "string", "description": "Направление", "name": "direction", "in": "query"},
                    {"type": "integer", "description": "Максимум визитов", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/stops/{id}/overview": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Stops"],
                "summary": "Остановка, ее линии и табло одним запросом",
                "parameters": [
                    {"type": "integer", "description": "ID остановки", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}
                }
            }
        },
        "/api/v1/stops/closest": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Places"],
                "summary": "Ближайшие остановки к точке",
                "parameters": [
                    {"description": "Точка и радиус в метрах", "name": "request", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/stops/area": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Places"],
                "summary": "Остановки в прямоугольнике",
                "parameters": [
                    {"description": "Юго-западный и северо-восточный углы", "name": "request", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/lines/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Lines"],
                "summary": "Линия по ID",
                "parameters": [
                    {"type": "integer", "description": "ID линии", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}
                }
            }
        },
        "/api/v1/lines/{id}/stops": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Lines"],
                "summary": "Остановки линии",
                "parameters": [
                    {"type": "integer", "description": "ID линии", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}
                }
            }
        },
        "/api/v1/places": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Places"],
                "summary": "Поиск мест по названию",
                "parameters": [
                    {"type": "string", "description": "Название или его часть", "name": "name", "in": "query", "required": true},
                    {"type": "string", "description": "Типы мест через запятую (Stop,POI,Area,Street)", "name": "type", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/streets/{id}/houses": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Places"],
                "summary": "Дома на улице",
                "parameters": [
                    {"type": "integer", "description": "ID улицы", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}}
                }
            }
        },
        "/api/v1/travel/plan": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Planner"],
                "summary": "Планирование поездки",
                "parameters": [
                    {"description": "Параметры поездки", "name": "request", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/graphql": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["GraphQL"],
                "summary": "GraphQL запрос",
                "parameters": [
                    {"description": "query, variables, operationName", "name": "request", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}}
                }
            }
        },
        "/api/v1/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Проверка работоспособности",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}}
                }
            }
        }
    },
    "definitions": {
        "errors.AppError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "object", "additionalProperties": true}
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/errors.AppError"}
            }
        },
        "utils.Meta": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "limit": {"type": "integer"},
                "time_ms": {"type": "number"}
            }
        },
        "utils.SuccessResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "meta": {"$ref": "#/definitions/utils.Meta"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Transit Graph API",
	Description:      "Транспортный граф Ruter: остановки, линии, табло отправлений, поиск мест и планировщик поездок. REST и GraphQL поверх кэшируемого клиента reisapi.ruter.no.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
