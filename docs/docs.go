// Package docs holds the OpenAPI document served under /api/swagger. It is
// maintained by hand alongside the handler annotations; running swag init
// regenerates it from them.
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
        "/v1/models": {
            "get": {
                "description": "Returns catalog entries matching the optional filters, in registration order.",
                "produces": ["application/json"],
                "tags": ["Models"],
                "summary": "Query the model catalog",
                "parameters": [
                    {"type": "string", "description": "Case-insensitive substring of the model id", "name": "model_name", "in": "query"},
                    {"type": "string", "description": "Owner, matched case-insensitively", "name": "model_owner", "in": "query"},
                    {"type": "string", "description": "Category tag, e.g. free or premium", "name": "model_type", "in": "query"},
                    {"type": "integer", "description": "Minimum input window (exclusive), >= 0", "name": "model_input_context_greater_than", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.ModelResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Adds a catalog entry. object_type and created_at are assigned by the catalog.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Models"],
                "summary": "Register a model",
                "parameters": [
                    {"description": "Model to register", "name": "model", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.RegisterModelRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.ModelInfo"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/v1/models/query": {
            "post": {
                "description": "Same as GET /v1/models, with the filters sent as an IncomingModelQuery body. An empty body means no filters.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Models"],
                "summary": "Query the model catalog with a JSON body",
                "parameters": [
                    {"description": "Filter criteria", "name": "query", "in": "body", "schema": {"$ref": "#/definitions/model.IncomingModelQueryFields"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.ModelResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/v1/models/with-parameters": {
            "get": {
                "description": "Like GET /v1/models, but every entry is paired with its resolved optional parameters.",
                "produces": ["application/json"],
                "tags": ["Models"],
                "summary": "Query the catalog including sampling parameters",
                "parameters": [
                    {"type": "string", "description": "Case-insensitive substring of the model id", "name": "model_name", "in": "query"},
                    {"type": "string", "description": "Owner, matched case-insensitively", "name": "model_owner", "in": "query"},
                    {"type": "string", "description": "Category tag, e.g. free or premium", "name": "model_type", "in": "query"},
                    {"type": "integer", "description": "Minimum input window (exclusive), >= 0", "name": "model_input_context_greater_than", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.ModelResponseWithOptionalParameters"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/v1/models/query/with-parameters": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Models"],
                "summary": "Query the catalog including sampling parameters, with a JSON body",
                "parameters": [
                    {"description": "Filter criteria", "name": "query", "in": "body", "schema": {"$ref": "#/definitions/model.IncomingModelQueryFields"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.ModelResponseWithOptionalParameters"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/v1/models/{modelID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Models"],
                "summary": "Get a catalog entry",
                "parameters": [
                    {"type": "string", "description": "Model id (percent-encoded)", "name": "modelID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.ModelInfo"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Models"],
                "summary": "Remove a model from the catalog",
                "parameters": [
                    {"type": "string", "description": "Model id (percent-encoded)", "name": "modelID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.StatusResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/v1/models/{modelID}/parameters": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Models"],
                "summary": "Get a catalog entry with its sampling parameters",
                "parameters": [
                    {"type": "string", "description": "Model id (percent-encoded)", "name": "modelID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.ModelCombinedWithOptionalParameters"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Models"],
                "summary": "Replace a model's sampling parameters",
                "parameters": [
                    {"type": "string", "description": "Model id (percent-encoded)", "name": "modelID", "in": "path", "required": true},
                    {"description": "All eight parameters", "name": "parameters", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.ModelOptionalParameters"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.StatusResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "api.StatusResponse": {
            "type": "object",
            "properties": {"status": {"type": "string"}}
        },
        "model.IncomingModelQueryFields": {
            "type": "object",
            "properties": {
                "model_input_context_greater_than": {"type": "integer", "minimum": 0, "example": 100000},
                "model_name": {"type": "string", "example": "deepseek"},
                "model_owner": {"type": "string", "example": "deepseek"},
                "model_type": {"type": "string", "example": "free"}
            }
        },
        "model.ModelCombinedWithOptionalParameters": {
            "type": "object",
            "properties": {
                "model": {"$ref": "#/definitions/model.ModelInfo"},
                "optional_parameters": {"$ref": "#/definitions/model.ModelOptionalParameters"}
            }
        },
        "model.ModelInfo": {
            "type": "object",
            "required": ["created_at", "id", "object_type", "owned_by"],
            "properties": {
                "available_roles": {"type": "array", "items": {"type": "string"}, "example": ["ai", "user", "system"]},
                "base_url": {"type": "string"},
                "created_at": {"type": "string"},
                "id": {"type": "string", "example": "Deepseek R1"},
                "local_path": {"type": "string"},
                "max_input_token_window_size": {"type": "integer", "minimum": 0, "example": 128000},
                "max_output_token_size": {"type": "integer", "minimum": 0, "example": 8000},
                "model_path": {"type": "string", "example": "deepseek/deepseek-r1:free"},
                "object_type": {"type": "string", "example": "model"},
                "owned_by": {"type": "string", "example": "deepseek"}
            }
        },
        "model.ModelOptionalParameters": {
            "type": "object",
            "properties": {
                "frequency_penalty": {"type": "number", "maximum": 2, "minimum": -2, "example": 0},
                "min_p": {"type": "number", "maximum": 1, "minimum": 0, "example": 0},
                "presence_penalty": {"type": "number", "maximum": 2, "minimum": -2, "example": 0},
                "repetition_penalty": {"type": "number", "maximum": 2, "example": 1},
                "temperature": {"type": "number", "maximum": 2, "minimum": 0, "example": 1},
                "top_a": {"type": "number", "maximum": 1, "minimum": 0, "example": 0},
                "top_k": {"type": "integer", "minimum": 0, "example": 0},
                "top_p": {"type": "number", "maximum": 1, "minimum": 0, "example": 1}
            }
        },
        "model.ModelResponse": {
            "type": "object",
            "properties": {
                "models": {"type": "array", "items": {"$ref": "#/definitions/model.ModelInfo"}},
                "query_metrics": {"$ref": "#/definitions/model.QueryMetrics"}
            }
        },
        "model.ModelResponseWithOptionalParameters": {
            "type": "object",
            "properties": {
                "models": {"type": "array", "items": {"$ref": "#/definitions/model.ModelCombinedWithOptionalParameters"}},
                "query_metrics": {"$ref": "#/definitions/model.QueryMetrics"}
            }
        },
        "model.QueryMetrics": {
            "type": "object",
            "properties": {
                "query_time_ms": {"type": "number", "minimum": 0, "example": 1.25},
                "total_records": {"type": "integer", "minimum": 0, "example": 3}
            }
        },
        "service.RegisterModelRequest": {
            "type": "object",
            "required": ["id", "owned_by"],
            "properties": {
                "available_roles": {"type": "array", "items": {"type": "string"}, "example": ["ai", "user", "system"]},
                "base_url": {"type": "string", "example": "https://openrouter.ai/api/v1"},
                "id": {"type": "string", "maxLength": 256, "example": "Deepseek R1"},
                "local_path": {"type": "string"},
                "max_input_token_window_size": {"type": "integer", "minimum": 0, "example": 128000},
                "max_output_token_size": {"type": "integer", "minimum": 0, "example": 8000},
                "model_path": {"type": "string", "example": "deepseek/deepseek-r1:free"},
                "model_type": {"type": "string", "maxLength": 64, "example": "free"},
                "optional_parameters": {"$ref": "#/definitions/model.ModelOptionalParameters"},
                "owned_by": {"type": "string", "example": "deepseek"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Model Catalog API",
	Description:      "Queryable catalog of language models and their sampling parameters.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
