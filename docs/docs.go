// Package docs registers the OpenAPI document served under /swagger/.
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
        "/commits": {
            "get": {
                "produces": ["application/json"],
                "summary": "Recent commits of a repository",
                "parameters": [
                    {"type": "string", "description": "owner/name", "name": "repo", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/response.Envelope"}}
                }
            }
        },
        "/commits/{sha}": {
            "get": {
                "produces": ["application/json"],
                "summary": "One commit of a repository with its changed files",
                "parameters": [
                    {"type": "string", "description": "commit sha", "name": "sha", "in": "path", "required": true},
                    {"type": "string", "description": "owner/name", "name": "repo", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/response.Envelope"}}
                }
            }
        },
        "/forks": {
            "get": {
                "produces": ["application/json"],
                "summary": "Newest forks of a repository",
                "parameters": [
                    {"type": "string", "description": "owner/name", "name": "repo", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/response.Envelope"}}
                }
            }
        },
        "/repositories": {
            "get": {
                "produces": ["application/json"],
                "summary": "Top repositories for a language",
                "parameters": [
                    {"type": "string", "description": "language, e.g. rust", "name": "language", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/response.Envelope"}}
                }
            }
        },
        "/repositories/summary": {
            "get": {
                "produces": ["application/json"],
                "summary": "Totals over the top repositories for a language",
                "parameters": [
                    {"type": "string", "description": "language, e.g. rust", "name": "language", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/response.Envelope"}}
                }
            }
        }
    },
    "definitions": {
        "response.Envelope": {
            "type": "object",
            "properties": {
                "data": {},
                "message": {"type": "string"},
                "status": {"type": "string"}
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
	Title:            "repo-explorer API",
	Description:      "Read-only view over GitHub repository search and commit history.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
