// Package docs holds the OpenAPI document served by gin-swagger. Regenerate
// it with `swag init` after changing handler annotations.
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
        "/checklist": {
            "get": {
                "produces": ["application/json"],
                "tags": ["checklists"],
                "summary": "List checklists",
                "parameters": [
                    {"type": "string", "description": "Trip type filter (Todos for all)", "name": "tipo_viagem", "in": "query"},
                    {"type": "string", "description": "Sort order: recent, oldest, name_asc, name_desc", "name": "ordenacao", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.SuccessResponse"}},
                    "400": {"description": "Invalid filter", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["checklists"],
                "summary": "Create a checklist",
                "parameters": [
                    {"description": "Checklist", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.ChecklistCreate"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/types.SuccessResponse"}},
                    "400": {"description": "Invalid payload or duplicate name", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/checklist/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["checklists"],
                "summary": "Get a checklist with its items",
                "parameters": [{"type": "string", "description": "Checklist ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.SuccessResponse"}},
                    "404": {"description": "Checklist not found", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["checklists"],
                "summary": "Update a checklist",
                "parameters": [
                    {"type": "string", "description": "Checklist ID", "name": "id", "in": "path", "required": true},
                    {"description": "Checklist", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.ChecklistUpdate"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.SuccessResponse"}},
                    "400": {"description": "Invalid payload or duplicate name", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "404": {"description": "Checklist not found", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["checklists"],
                "summary": "Delete a checklist and its items",
                "parameters": [{"type": "string", "description": "Checklist ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.SuccessResponse"}},
                    "404": {"description": "Checklist not found", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/checklist-item": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["checklist-items"],
                "summary": "Add an item to a checklist",
                "parameters": [
                    {"description": "Item", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.ChecklistItemCreate"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/types.SuccessResponse"}},
                    "400": {"description": "Invalid payload or item limit reached", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "404": {"description": "Checklist not found", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/checklist-item/{id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["checklist-items"],
                "summary": "Update an item's name and note",
                "parameters": [
                    {"type": "string", "description": "Item ID", "name": "id", "in": "path", "required": true},
                    {"description": "Item", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.ChecklistItemUpdate"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.SuccessResponse"}},
                    "404": {"description": "Item not found", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["checklist-items"],
                "summary": "Delete an item",
                "parameters": [{"type": "string", "description": "Item ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.SuccessResponse"}},
                    "404": {"description": "Item not found", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/checklist-item-status/{id}": {
            "patch": {
                "produces": ["application/json"],
                "tags": ["checklist-items"],
                "summary": "Toggle an item between pendente and verificado",
                "parameters": [{"type": "string", "description": "Item ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.SuccessResponse"}},
                    "404": {"description": "Item not found", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "types.ChecklistCreate": {
            "type": "object",
            "required": ["nome_checklist", "tipo_viagem"],
            "properties": {
                "nome_checklist": {"type": "string", "maxLength": 50, "minLength": 3},
                "tipo_viagem": {"type": "string", "enum": ["Praia", "Negócios", "Internacional", "Camping", "Cruzeiro", "Cidade", "Outro"]},
                "descricao": {"type": "string", "maxLength": 200}
            }
        },
        "types.ChecklistUpdate": {
            "type": "object",
            "required": ["nome_checklist", "tipo_viagem"],
            "properties": {
                "nome_checklist": {"type": "string", "maxLength": 50, "minLength": 3},
                "tipo_viagem": {"type": "string", "enum": ["Praia", "Negócios", "Internacional", "Camping", "Cruzeiro", "Cidade", "Outro"]},
                "descricao": {"type": "string", "maxLength": 200}
            }
        },
        "types.ChecklistItemCreate": {
            "type": "object",
            "required": ["checklist_id", "nome_item"],
            "properties": {
                "checklist_id": {"type": "string", "format": "uuid"},
                "nome_item": {"type": "string", "maxLength": 100, "minLength": 2},
                "observacao": {"type": "string", "maxLength": 200}
            }
        },
        "types.ChecklistItemUpdate": {
            "type": "object",
            "required": ["nome_item"],
            "properties": {
                "nome_item": {"type": "string", "maxLength": 100, "minLength": 2},
                "observacao": {"type": "string", "maxLength": 200}
            }
        },
        "types.SuccessResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {},
                "metadata": {"type": "object", "properties": {"timestamp": {"type": "string"}}}
            }
        },
        "types.ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "error": {
                    "type": "object",
                    "properties": {
                        "code": {"type": "string"},
                        "message": {"type": "string"},
                        "details": {}
                    }
                },
                "timestamp": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1/internal",
	Schemes:          []string{},
	Title:            "Checklist API",
	Description:      "Travel checklists grouped by trip type, with ordered items toggled between pendente and verificado.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
