package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Guest Services API",
        "description": "Hotel guest service request tracker",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Requests", "description": "Guest service requests"},
        {"name": "Ops", "description": "Health, readiness and metrics"}
    ],
    "paths": {
        "/health": {
            "get": {
                "tags": ["Ops"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "tags": ["Ops"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Store unavailable"}
                }
            }
        },
        "/metrics": {
            "get": {
                "tags": ["Ops"],
                "summary": "Prometheus metrics",
                "produces": ["text/plain"],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/requests": {
            "post": {
                "tags": ["Requests"],
                "summary": "Create guest service request",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "floor", "in": "formData", "type": "string", "required": true},
                    {"name": "room", "in": "formData", "type": "string", "required": true},
                    {"name": "block", "in": "formData", "type": "string", "required": true},
                    {"name": "guestName", "in": "formData", "type": "string", "required": true},
                    {"name": "phoneNumber", "in": "formData", "type": "string", "required": true},
                    {"name": "service", "in": "formData", "type": "string", "required": true},
                    {"name": "department", "in": "formData", "type": "string", "required": true},
                    {"name": "priority", "in": "formData", "type": "string", "enum": ["HIGH", "MEDIUM", "LOW"]},
                    {"name": "file", "in": "formData", "type": "file"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/CreateRequestResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/MessageBody"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/MessageBody"}}
                }
            }
        },
        "/api/capture": {
            "get": {
                "tags": ["Requests"],
                "summary": "List guest service requests",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Request"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/MessageBody"}}
                }
            }
        },
        "/api/requests/export": {
            "get": {
                "tags": ["Requests"],
                "summary": "Download request report",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "Report file", "schema": {"type": "file"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/MessageBody"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/MessageBody"}}
                }
            }
        },
        "/api/requests/{id}": {
            "patch": {
                "tags": ["Requests"],
                "summary": "Update guest service request",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateRequestBody"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/UpdateRequestResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/MessageBody"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/MessageBody"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/MessageBody"}}
                }
            },
            "delete": {
                "tags": ["Requests"],
                "summary": "Delete guest service request",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/MessageBody"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/MessageBody"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/MessageBody"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/MessageBody"}}
                }
            }
        }
    },
    "definitions": {
        "Request": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "format": "uuid"},
                "floor": {"type": "string"},
                "room": {"type": "string"},
                "block": {"type": "string"},
                "guestName": {"type": "string"},
                "phoneNumber": {"type": "string"},
                "service": {"type": "string"},
                "department": {"type": "string"},
                "status": {"type": "string", "enum": ["PENDING", "IN_PROGRESS", "COMPLETED"]},
                "priority": {"type": "string", "enum": ["HIGH", "MEDIUM", "LOW"]},
                "createdOn": {"type": "string", "format": "date-time"},
                "file": {"type": "string"}
            }
        },
        "UpdateRequestBody": {
            "type": "object",
            "properties": {
                "floor": {"type": "string"},
                "room": {"type": "string"},
                "block": {"type": "string"},
                "guestName": {"type": "string"},
                "phoneNumber": {"type": "string"},
                "service": {"type": "string"},
                "department": {"type": "string"},
                "status": {"type": "string", "enum": ["PENDING", "IN_PROGRESS", "COMPLETED"]},
                "priority": {"type": "string", "enum": ["HIGH", "MEDIUM", "LOW"]},
                "file": {"type": "string", "x-nullable": true}
            }
        },
        "CreateRequestResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "request": {"$ref": "#/definitions/Request"}
            }
        },
        "UpdateRequestResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "updatedRequest": {"$ref": "#/definitions/Request"}
            }
        },
        "MessageBody": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
