// Package docs holds the Swagger 2.0 specs served under /api/swagger/. The
// templates mirror the godoc annotations on the handlers in internal/api and
// must be updated alongside them.
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
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Info"],
                "summary": "API information",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.InfoResponse"}}
                }
            }
        },
        "/register": {
            "post": {
                "description": "Creates an account and returns its first API key.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Accounts"],
                "summary": "Register a user",
                "parameters": [
                    {"description": "New account", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"allOf": [{"$ref": "#/definitions/api.SuccessResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/api.APIKeyResponse"}}}]}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/login": {
            "post": {
                "description": "Exchanges email and password for the account's API key.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Accounts"],
                "summary": "Log in",
                "parameters": [
                    {"description": "Credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/api.SuccessResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/api.LoginResponse"}}}]}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/refresh-key": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Issues a new API key. The old key stops working immediately.",
                "produces": ["application/json"],
                "tags": ["Accounts"],
                "summary": "Rotate the API key",
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/api.SuccessResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/api.APIKeyResponse"}}}]}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/folders": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["Folders"],
                "summary": "List folders",
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/api.SuccessResponse"}, {"type": "object", "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/model.FolderSummary"}}}}]}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Folders"],
                "summary": "Create a folder",
                "parameters": [
                    {"description": "Folder", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.CreateFolderRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"allOf": [{"$ref": "#/definitions/api.SuccessResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/model.FolderSummary"}}}]}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/folder/{id}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["Folders"],
                "summary": "Get a folder with its files",
                "parameters": [{"type": "integer", "description": "Folder ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/api.SuccessResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/model.FolderDetail"}}}]}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Deletes the folder, its files and their stored content.",
                "produces": ["application/json"],
                "tags": ["Folders"],
                "summary": "Delete a folder",
                "parameters": [{"type": "integer", "description": "Folder ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.SuccessResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/folder/{id}/images": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["Folders"],
                "summary": "List a folder's images",
                "parameters": [{"type": "integer", "description": "Folder ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/api.SuccessResponse"}, {"type": "object", "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/model.FileItem"}}}}]}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/folder/{id}/pdfs": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["Folders"],
                "summary": "List a folder's PDFs",
                "parameters": [{"type": "integer", "description": "Folder ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/api.SuccessResponse"}, {"type": "object", "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/model.FileItem"}}}}]}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/folder/{id}/upload": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Stores an image (png, jpg, jpeg, gif, webp) or a PDF in the folder.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Files"],
                "summary": "Upload a file",
                "parameters": [
                    {"type": "integer", "description": "Folder ID", "name": "id", "in": "path", "required": true},
                    {"type": "file", "description": "File to upload", "name": "file", "in": "formData", "required": true},
                    {"type": "string", "description": "Description", "name": "description", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/api.SuccessResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/model.FileItem"}}}]}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/image/{id}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["Files"],
                "summary": "Get an image or PDF",
                "parameters": [{"type": "integer", "description": "File ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/api.SuccessResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/model.FileItem"}}}]}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/pdf/{id}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["Files"],
                "summary": "Get an image or PDF",
                "parameters": [{"type": "integer", "description": "File ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/api.SuccessResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/model.FileItem"}}}]}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/pdf/{id}/text": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["Files"],
                "summary": "Extract PDF text",
                "parameters": [{"type": "integer", "description": "File ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/api.SuccessResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/model.FileItem"}}}]}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/file/{id}": {
            "delete": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["Files"],
                "summary": "Delete a file",
                "parameters": [{"type": "integer", "description": "File ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.SuccessResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/search": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Matches filenames and descriptions across all of the caller's folders.",
                "produces": ["application/json"],
                "tags": ["Files"],
                "summary": "Search files",
                "parameters": [{"type": "string", "description": "Search term", "name": "q", "in": "query", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/api.SuccessResponse"}, {"type": "object", "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/model.FileItem"}}}}]}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.APIKeyResponse": {
            "type": "object",
            "properties": {"api_key": {"type": "string", "example": "q3x...Zt"}}
        },
        "api.ErrorResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Resource not found"},
                "status": {"type": "string", "example": "error"}
            }
        },
        "api.InfoResponse": {
            "type": "object",
            "properties": {
                "endpoints": {"type": "object", "additionalProperties": {"type": "string"}},
                "name": {"type": "string", "example": "Image API"},
                "version": {"type": "string", "example": "1.0.0"}
            }
        },
        "api.LoginResponse": {
            "type": "object",
            "properties": {
                "api_key": {"type": "string"},
                "username": {"type": "string", "example": "alice"}
            }
        },
        "api.SuccessResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "message": {"type": "string"},
                "status": {"type": "string", "example": "success"}
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
                "text": {"type": "string"},
                "uploaded_at": {"type": "string"},
                "url": {"type": "string"}
            }
        },
        "model.FolderDetail": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "files": {"type": "array", "items": {"$ref": "#/definitions/model.FileItem"}},
                "id": {"type": "integer"},
                "is_public": {"type": "boolean"},
                "name": {"type": "string"}
            }
        },
        "model.FolderSummary": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "file_count": {"type": "integer"},
                "id": {"type": "integer"},
                "is_public": {"type": "boolean"},
                "name": {"type": "string"}
            }
        },
        "service.CreateFolderRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "is_public": {"type": "boolean", "example": false},
                "name": {"type": "string", "maxLength": 100, "example": "Vacation"}
            }
        },
        "service.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string", "example": "alice@example.com"},
                "password": {"type": "string", "example": "s3cret-pass"}
            }
        },
        "service.RegisterRequest": {
            "type": "object",
            "required": ["email", "password", "username"],
            "properties": {
                "email": {"type": "string", "maxLength": 120, "example": "alice@example.com"},
                "password": {"type": "string", "maxLength": 72, "minLength": 6, "example": "s3cret-pass"},
                "username": {"type": "string", "maxLength": 80, "minLength": 3, "example": "alice"}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "X-API-Key", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Image API",
	Description:      "Folders, image and PDF uploads, metadata and search, authenticated with an X-API-Key header.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
