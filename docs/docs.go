// Package docs registers the WebStore OpenAPI document with swag so that
// http-swagger can serve it. The document is maintained by hand and covers
// the Products API and authentication routes; every documented path must be
// served by the router.
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
        "/api/v1/products": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Query a page of products",
                "parameters": [
                    {"description": "Product filter", "name": "filter", "in": "body", "schema": {"$ref": "#/definitions/repo.ProductFilter"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ProductPage"}},
                    "400": {"description": "Bad Request", "schema": {"type": "array", "items": {"$ref": "#/definitions/handlers.ValidationError"}}},
                    "500": {"description": "Internal error", "schema": {"type": "string"}}
                }
            }
        },
        "/api/v1/products/sections": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "List catalog sections",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.SectionDTO"}}}
                }
            }
        },
        "/api/v1/products/sections/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Get section by ID",
                "parameters": [{"type": "integer", "description": "Section ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SectionDTO"}},
                    "400": {"description": "Invalid ID", "schema": {"type": "string"}},
                    "404": {"description": "Not found", "schema": {"type": "string"}}
                }
            }
        },
        "/api/v1/products/brands": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "List brands",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.BrandDTO"}}}
                }
            }
        },
        "/api/v1/products/brands/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Get brand by ID",
                "parameters": [{"type": "integer", "description": "Brand ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.BrandDTO"}},
                    "400": {"description": "Invalid ID", "schema": {"type": "string"}},
                    "404": {"description": "Not found", "schema": {"type": "string"}}
                }
            }
        },
        "/api/v1/products/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Get product by ID",
                "parameters": [{"type": "integer", "description": "Product ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ProductDTO"}},
                    "400": {"description": "Invalid ID", "schema": {"type": "string"}},
                    "404": {"description": "Not found", "schema": {"type": "string"}}
                }
            }
        },
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Authenticate user and return JWT token",
                "parameters": [
                    {"description": "username and password", "name": "credentials", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CredentialsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.LoginResult"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "string"}}
                }
            }
        },
        "/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register new user and return JWT token",
                "parameters": [
                    {"description": "username and password", "name": "credentials", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CredentialsRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.LoginResult"}},
                    "409": {"description": "User exists", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "repo.ProductFilter": {
            "type": "object",
            "properties": {
                "SectionId": {"type": "integer"},
                "BrandId": {"type": "integer"},
                "PageNumber": {"type": "integer"},
                "PageSize": {"type": "integer"}
            }
        },
        "dto.SectionDTO": {
            "type": "object",
            "properties": {
                "Id": {"type": "integer"},
                "Name": {"type": "string"},
                "Order": {"type": "integer"},
                "ParentId": {"type": "integer"}
            }
        },
        "dto.BrandDTO": {
            "type": "object",
            "properties": {
                "Id": {"type": "integer"},
                "Name": {"type": "string"},
                "Order": {"type": "integer"},
                "ProductsCount": {"type": "integer"}
            }
        },
        "dto.ProductDTO": {
            "type": "object",
            "properties": {
                "Id": {"type": "integer"},
                "Name": {"type": "string"},
                "Order": {"type": "integer"},
                "Section": {"$ref": "#/definitions/dto.SectionDTO"},
                "Brand": {"$ref": "#/definitions/dto.BrandDTO"},
                "ImageUrl": {"type": "string"},
                "Price": {"type": "number"}
            }
        },
        "ProductPage": {
            "type": "object",
            "properties": {
                "Items": {"type": "array", "items": {"$ref": "#/definitions/dto.ProductDTO"}},
                "PageNumber": {"type": "integer"},
                "PageSize": {"type": "integer"},
                "TotalCount": {"type": "integer"}
            }
        },
        "handlers.ValidationError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "description": {"type": "string"}
            }
        },
        "handlers.CredentialsRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handlers.LoginResult": {
            "type": "object",
            "properties": {
                "token": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "WebStore API",
	Description:      "Paged product catalog, cart, orders and employees.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
