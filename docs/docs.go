// Package docs is generated by swaggo/swag. Regenerate with
// `swag init -g cmd/spacebook/main.go`.
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
        "/notifications": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["notifications"],
                "summary": "List the caller's notifications",
                "parameters": [
                    {"type": "boolean", "description": "Only unread", "name": "unread", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}
            }
        },
        "/notifications/{id}/read": {
            "post": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["notifications"],
                "summary": "Mark a notification as read",
                "parameters": [
                    {"type": "integer", "description": "Notification ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            }
        },
        "/reservations": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["reservations"],
                "summary": "List reservations",
                "parameters": [
                    {"type": "integer", "description": "Space ID", "name": "space_id", "in": "query"},
                    {"type": "integer", "description": "Owner ID", "name": "user_id", "in": "query"},
                    {"type": "string", "description": "pending, approved or rejected", "name": "status", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "403": {"description": "Staff only", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            },
            "post": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["reservations"],
                "summary": "Request a reservation",
                "parameters": [
                    {"description": "Reservation request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateReservationRequest"}}
                ],
                "responses": {
                    "201": {"description": "Reservation created", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "400": {"description": "Admission rule failed", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "409": {"description": "Slot already booked", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            }
        },
        "/reservations/availability": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["reservations"],
                "summary": "Approved bookings of a space in a time window",
                "parameters": [
                    {"type": "integer", "description": "Space ID", "name": "space_id", "in": "query", "required": true},
                    {"type": "string", "description": "RFC3339 window start", "name": "from", "in": "query", "required": true},
                    {"type": "string", "description": "RFC3339 window end", "name": "to", "in": "query", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}
            }
        },
        "/reservations/mine": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["reservations"],
                "summary": "List my reservations",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}
            }
        },
        "/reservations/{id}": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["reservations"],
                "summary": "Get a reservation",
                "parameters": [
                    {"type": "integer", "description": "Reservation ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}
            },
            "patch": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["reservations"],
                "summary": "Edit a reservation",
                "parameters": [
                    {"type": "integer", "description": "Reservation ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateReservationRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}
            },
            "delete": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["reservations"],
                "summary": "Deactivate (soft delete) a reservation",
                "parameters": [
                    {"type": "integer", "description": "Reservation ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}
            }
        },
        "/reservations/{id}/approve": {
            "post": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["reservations"],
                "summary": "Approve a pending reservation",
                "parameters": [
                    {"type": "integer", "description": "Reservation ID", "name": "id", "in": "path", "required": true},
                    {"description": "Optional note", "name": "request", "in": "body", "schema": {"$ref": "#/definitions/dto.TransitionNoteRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}
            }
        },
        "/reservations/{id}/cancel": {
            "post": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["reservations"],
                "summary": "Cancel an own pending reservation",
                "parameters": [
                    {"type": "integer", "description": "Reservation ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}
            }
        },
        "/reservations/{id}/history": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["reservations"],
                "summary": "Audit trail of a reservation, oldest first",
                "parameters": [
                    {"type": "integer", "description": "Reservation ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}
            }
        },
        "/reservations/{id}/reactivate": {
            "post": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["reservations"],
                "summary": "Reactivate a deactivated reservation",
                "parameters": [
                    {"type": "integer", "description": "Reservation ID", "name": "id", "in": "path", "required": true},
                    {"description": "Optional note", "name": "request", "in": "body", "schema": {"$ref": "#/definitions/dto.TransitionNoteRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}
            }
        },
        "/reservations/{id}/reject": {
            "post": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["reservations"],
                "summary": "Reject a pending reservation",
                "parameters": [
                    {"type": "integer", "description": "Reservation ID", "name": "id", "in": "path", "required": true},
                    {"description": "Rejection reason", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RejectReservationRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}
            }
        },
        "/settings": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "List configuration entries",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}
            }
        },
        "/settings/{key}": {
            "put": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Create or replace a configuration entry",
                "parameters": [
                    {"type": "string", "description": "Setting key", "name": "key", "in": "path", "required": true},
                    {"description": "New value", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpsertSettingRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}
            }
        },
        "/spaces": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["spaces"],
                "summary": "List spaces",
                "parameters": [
                    {"type": "boolean", "description": "Staff only", "name": "include_inactive", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}
            },
            "post": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["spaces"],
                "summary": "Create a space",
                "parameters": [
                    {"description": "Space", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateSpaceRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}
            }
        },
        "/spaces/{id}": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["spaces"],
                "summary": "Get a space",
                "parameters": [
                    {"type": "integer", "description": "Space ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}
            },
            "patch": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["spaces"],
                "summary": "Update a space",
                "parameters": [
                    {"type": "integer", "description": "Space ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateSpaceRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}
            },
            "delete": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["spaces"],
                "summary": "Deactivate a space",
                "parameters": [
                    {"type": "integer", "description": "Space ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}}}
            }
        }
    },
    "definitions": {
        "dto.CreateReservationRequest": {
            "type": "object",
            "properties": {
                "attendees": {"type": "integer"},
                "documents": {"type": "array", "items": {"type": "string"}},
                "end": {"type": "string"},
                "event_category": {"type": "string"},
                "space_id": {"type": "integer"},
                "start": {"type": "string"}
            }
        },
        "dto.CreateSpaceRequest": {
            "type": "object",
            "required": ["location", "name"],
            "properties": {
                "capacity": {"type": "integer"},
                "closing_time": {"type": "string"},
                "equipment": {"type": "array", "items": {"type": "string"}},
                "kind": {"type": "string", "maxLength": 50},
                "location": {"type": "string", "maxLength": 200},
                "name": {"type": "string", "maxLength": 100},
                "opening_time": {"type": "string"}
            }
        },
        "dto.RejectReservationRequest": {
            "type": "object",
            "properties": {
                "reason": {"type": "string", "maxLength": 1000}
            }
        },
        "dto.TransitionNoteRequest": {
            "type": "object",
            "properties": {
                "note": {"type": "string", "maxLength": 1000}
            }
        },
        "dto.UpdateReservationRequest": {
            "type": "object",
            "properties": {
                "attendees": {"type": "integer"},
                "documents": {"type": "array", "items": {"type": "string"}},
                "end": {"type": "string"},
                "event_category": {"type": "string"},
                "note": {"type": "string", "maxLength": 1000},
                "start": {"type": "string"}
            }
        },
        "dto.UpdateSpaceRequest": {
            "type": "object",
            "properties": {
                "capacity": {"type": "integer"},
                "closing_time": {"type": "string"},
                "equipment": {"type": "array", "items": {"type": "string"}},
                "kind": {"type": "string", "maxLength": 50},
                "location": {"type": "string", "maxLength": 200},
                "name": {"type": "string", "maxLength": 100},
                "opening_time": {"type": "string"},
                "status": {"type": "string", "enum": ["available", "under_maintenance"]}
            }
        },
        "dto.UpsertSettingRequest": {
            "type": "object",
            "required": ["value"],
            "properties": {
                "description": {"type": "string", "maxLength": 500},
                "value": {"type": "string"},
                "value_type": {"type": "string", "enum": ["number", "text", "boolean", "json", "time"]}
            }
        },
        "utils.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"$ref": "#/definitions/utils.ErrorInfo"},
                "message": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "utils.ErrorInfo": {
            "type": "object",
            "properties": {
                "details": {"type": "string"},
                "message": {"type": "string"},
                "type": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "Bearer": {
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
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Spacebook API",
	Description:      "Reservation backend for shared institutional spaces.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
