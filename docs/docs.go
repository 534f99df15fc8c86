// Package docs registers the OpenAPI description of the HTTP API with swag.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/files": {
            "put": {
                "consumes": ["application/octet-stream"],
                "produces": ["application/json"],
                "tags": ["files"],
                "summary": "Write a document",
                "parameters": [
                    {"type": "string", "description": "Target directory, rooted at /", "name": "dir", "in": "query", "required": true},
                    {"type": "string", "description": "File name", "name": "name", "in": "query", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.WriteFileResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            },
            "delete": {
                "tags": ["files"],
                "summary": "Delete a file or directory tree",
                "parameters": [
                    {"type": "string", "description": "Path to remove, rooted at /", "name": "path", "in": "query", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/entries": {
            "get": {
                "produces": ["application/json"],
                "tags": ["entries"],
                "summary": "List a directory",
                "parameters": [
                    {"type": "string", "description": "Directory path, rooted at /", "name": "path", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.EntriesResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/exists": {
            "get": {
                "produces": ["application/json"],
                "tags": ["entries"],
                "summary": "Check whether a path exists",
                "parameters": [
                    {"type": "string", "description": "File or directory path, rooted at /", "name": "path", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ExistsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/documents": {
            "get": {
                "produces": ["application/octet-stream"],
                "tags": ["files"],
                "summary": "Read a document",
                "parameters": [
                    {"type": "string", "description": "File path, rooted at /", "name": "path", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Backend health",
                "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.errorPayload"}}}
            }
        }
    },
    "definitions": {
        "handler.errorPayload": {
            "type": "object",
            "properties": {
                "request_id": {"type": "string"},
                "error": {
                    "type": "object",
                    "properties": {
                        "code": {"type": "string"},
                        "message": {"type": "string"},
                        "details": {"type": "array", "items": {"type": "string"}}
                    }
                }
            }
        },
        "model.WriteFileResult": {
            "type": "object",
            "properties": {"error_messages": {"type": "array", "items": {"type": "string"}}}
        },
        "handler.EntriesResponse": {
            "type": "object",
            "properties": {
                "path": {"type": "string"},
                "entries": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handler.ExistsResponse": {
            "type": "object",
            "properties": {
                "path": {"type": "string"},
                "exists": {"type": "boolean"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Document FileSystem API",
	Description:      "Validated filesystem operations over local disk or S3-compatible storage.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
