package docs

import "github.com/swaggo/swag"

// docTemplatechat describes the chat front-end, registered as the "chat" instance.
const docTemplatechat = `{
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
        "/chat": {
            "post": {
                "description": "Classifies the message, queries the Content Service with the caller's key and returns a reply.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Send a chat message",
                "parameters": [
                    {"description": "Message and API key", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.ChatRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Reply"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ChatErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.ChatErrorResponse"}}
                }
            }
        },
        "/verify-api-key": {
            "post": {
                "description": "Checks the key against the Content Service.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Verify an API key",
                "parameters": [
                    {"description": "API key", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.VerifyKeyRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.VerifyKeyResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.VerifyKeyResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.VerifyKeyResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.VerifyKeyResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.ChatErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string", "example": "No message provided"}}
        },
        "api.ChatRequest": {
            "type": "object",
            "properties": {
                "api_key": {"type": "string"},
                "credential": {"type": "string"},
                "message": {"type": "string", "example": "show all images"}
            }
        },
        "api.VerifyKeyRequest": {
            "type": "object",
            "properties": {"api_key": {"type": "string"}}
        },
        "api.VerifyKeyResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "valid": {"type": "boolean"}
            }
        },
        "model.FileItem": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "file_type": {"type": "string"},
                "filename": {"type": "string"},
                "folder_id": {"type": "integer"},
                "folder_name": {"type": "string"},
                "id": {"type": "integer"},
                "metadata": {"type": "object", "additionalProperties": {}},
                "uploaded_at": {"type": "string"},
                "url": {"type": "string"}
            }
        },
        "model.Reply": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/model.FileItem"}},
                "images": {"type": "array", "items": {"$ref": "#/definitions/model.FileItem"}},
                "message": {"type": "string"},
                "pdfs": {"type": "array", "items": {"$ref": "#/definitions/model.FileItem"}},
                "type": {"type": "string", "enum": ["text", "images", "pdfs", "mixed"]}
            }
        }
    }
}`

// SwaggerInfochat holds exported Swagger Info so clients can modify it
var SwaggerInfochat = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Image API Chatbot",
	Description:      "Natural-language front-end over the Image API.",
	InfoInstanceName: "chat",
	SwaggerTemplate:  docTemplatechat,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfochat.InstanceName(), SwaggerInfochat)
}
