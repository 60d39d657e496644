// Package docs registers the Swagger document served at /swagger/*any.
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
        "/api/v1/chat/messages": {
            "post": {
                "description": "Answers one visitor message. A session is created when session_id is omitted.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Send a message to the assistant",
                "parameters": [
                    {"description": "Message", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.sendMessageReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.sendMessageResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "413": {"description": "Message too long", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/chat/sessions": {
            "get": {
                "description": "Returns the stored sessions of a user with their message count, most recently active first.",
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "List the sessions of a user",
                "parameters": [
                    {"type": "string", "description": "Owner of the sessions", "name": "user_id", "in": "query", "required": true},
                    {"type": "integer", "description": "Page size (default: 50)", "name": "limit", "in": "query"},
                    {"type": "integer", "description": "Page offset (default: 0)", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.listSessionsResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            },
            "post": {
                "description": "Opens a new conversation and returns its session id.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Start a chat session",
                "parameters": [
                    {"description": "Optional owner", "name": "body", "in": "body", "schema": {"$ref": "#/definitions/http.startSessionReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.sessionResp"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/chat/sessions/{id}": {
            "delete": {
                "description": "Removes the stored messages and the in-memory context of a session.",
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Delete a session",
                "parameters": [{"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/chat/sessions/{id}/messages": {
            "get": {
                "description": "Returns the stored messages of a session in chronological order.",
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Get the messages of a session",
                "parameters": [{"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.historyResp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/chat/sessions/{id}/summary": {
            "get": {
                "description": "Returns message counts, the last detected intent and the user attributes.",
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Get the context summary of a session",
                "parameters": [{"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.summaryResp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/chat/sessions/{id}/attributes": {
            "put": {
                "description": "Merges the given attributes into the session context. Existing keys are overwritten.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Merge user attributes",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "id", "in": "path", "required": true},
                    {"description": "Attributes", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.updateAttributesReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.summaryResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/test/message": {
            "post": {
                "description": "Classify a message and return the assembled prompt and the fallback answer without calling the model",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["test"],
                "summary": "Test message processing",
                "parameters": [
                    {"description": "Test message", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/test.TestMessageRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/test.TestMessageResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "tags": ["Health"],
                "summary": "Health Check",
                "produces": ["application/json"],
                "responses": {"200": {"description": "API is healthy"}}
            }
        },
        "/ready": {
            "get": {
                "tags": ["Health"],
                "summary": "Readiness Check",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "API is ready"},
                    "503": {"description": "Database unavailable", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/live": {
            "get": {
                "tags": ["Health"],
                "summary": "Liveness Check",
                "produces": ["application/json"],
                "responses": {"200": {"description": "API is alive"}}
            }
        }
    },
    "definitions": {
        "response.Resp": {
            "type": "object",
            "properties": {
                "error_code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {},
                "errors": {}
            }
        },
        "http.startSessionReq": {
            "type": "object",
            "properties": {"user_id": {"type": "string"}}
        },
        "http.sendMessageReq": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "session_id": {"type": "string"},
                "user_id": {"type": "string"},
                "display_name": {"type": "string"}
            }
        },
        "http.listSessionsResp": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "sessions": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "session_id": {"type": "string"},
                            "user_id": {"type": "string"},
                            "created_at": {"type": "string"},
                            "last_activity": {"type": "string"},
                            "message_count": {"type": "integer"}
                        }
                    }
                }
            }
        },
        "http.updateAttributesReq": {
            "type": "object",
            "properties": {"attributes": {"type": "object", "additionalProperties": true}}
        },
        "http.sessionResp": {
            "type": "object",
            "properties": {
                "session_id": {"type": "string"},
                "user_id": {"type": "string"},
                "created_at": {"type": "string"},
                "last_activity": {"type": "string"}
            }
        },
        "http.sendMessageResp": {
            "type": "object",
            "properties": {
                "response": {"type": "string"},
                "session_id": {"type": "string"},
                "intent": {"type": "string"},
                "fallback": {"type": "boolean"},
                "timestamp": {"type": "string"}
            }
        },
        "http.messageResp": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "role": {"type": "string"},
                "content": {"type": "string"},
                "timestamp": {"type": "string"},
                "metadata": {"type": "object", "additionalProperties": true}
            }
        },
        "http.historyResp": {
            "type": "object",
            "properties": {
                "session": {"$ref": "#/definitions/http.sessionResp"},
                "messages": {"type": "array", "items": {"$ref": "#/definitions/http.messageResp"}}
            }
        },
        "http.summaryResp": {
            "type": "object",
            "properties": {
                "session_id": {"type": "string"},
                "message_count": {"type": "integer"},
                "stored_messages": {"type": "integer"},
                "last_intent": {"type": "string"},
                "user_attributes": {"type": "object", "additionalProperties": true},
                "created_at": {"type": "string"},
                "last_activity": {"type": "string"}
            }
        },
        "test.TestMessageRequest": {
            "type": "object",
            "required": ["text"],
            "properties": {
                "text": {"type": "string"},
                "session_id": {"type": "string"},
                "display_name": {"type": "string"}
            }
        },
        "test.TestMessageResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "intent": {"type": "string"},
                "text": {"type": "string"},
                "prompt": {"type": "string"},
                "fallback": {"type": "string"},
                "history": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Preinscription Chatbot API",
	Description:      "Pre-registration assistant of ICT University: intent detection, conversation context and Gemini answers.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
