package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers the OpenAPI endpoints:
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>peecock-content - Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "peecock-content", "version": "v1.0.0" },
  "components": {
    "securitySchemes": { "bearer": { "type": "http", "scheme": "bearer", "bearerFormat": "JWT" } },
    "schemas": {
      "Error": { "type": "object", "properties": { "error": { "type": "string" }, "details": { "type": "array", "items": { "$ref": "#/components/schemas/FieldError" } } } },
      "FieldError": { "type": "object", "properties": { "field": { "type": "string" }, "message": { "type": "string" } } }
    },
    "parameters": {
      "section": { "name": "section", "in": "path", "required": true, "description": "One of the twelve content sections. lastUpdated and version are not sections: read them from GET /api/content.", "schema": { "type": "string", "enum": ["metadata","company","socialMedia","buyButtons","mainHeadings","productFeatures","testimonials","detailedTestimonials","targetAudience","howToUse","faq","images"] } }
    }
  },
  "paths": {
    "/api/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "status and timestamp" } } } },
    "/api/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } },
    "/api/auth/login": {
      "post": {
        "summary": "Log in with the admin credentials",
        "requestBody": { "content": { "application/json": { "schema": { "type": "object", "required": ["username","password"], "properties": { "username": { "type": "string" }, "password": { "type": "string" } } } } } },
        "responses": { "200": { "description": "token, user and expiresIn" }, "400": { "description": "missing fields" }, "401": { "description": "invalid credentials" }, "429": { "description": "too many attempts" } }
      }
    },
    "/api/auth/verify": { "get": { "summary": "Echo the token identity", "security": [{ "bearer": [] }], "responses": { "200": { "description": "user" }, "401": { "description": "missing token" }, "403": { "description": "invalid or expired token" } } } },
    "/api/auth/logout": { "post": { "summary": "Revoke the presented token", "security": [{ "bearer": [] }], "responses": { "200": { "description": "logged out" } } } },
    "/api/content": {
      "get": { "summary": "Get the full content document", "responses": { "200": { "description": "content document" }, "500": { "description": "failed to read content" } } },
      "put": { "summary": "Replace the full content document", "security": [{ "bearer": [] }], "responses": { "200": { "description": "message and data" }, "400": { "description": "validation failed", "content": { "application/json": { "schema": { "$ref": "#/components/schemas/Error" } } } } } }
    },
    "/api/content/{section}": {
      "parameters": [{ "$ref": "#/components/parameters/section" }],
      "get": { "summary": "Get one section", "responses": { "200": { "description": "section data" }, "404": { "description": "Section not found, including lastUpdated and version" } } },
      "put": { "summary": "Replace one section", "security": [{ "bearer": [] }], "responses": { "200": { "description": "message, section and data" }, "400": { "description": "validation failed", "content": { "application/json": { "schema": { "$ref": "#/components/schemas/Error" } } } }, "404": { "description": "Section not found" } } }
    },
    "/api/content/{section}/validate": {
      "parameters": [{ "$ref": "#/components/parameters/section" }],
      "post": { "summary": "Validate a section payload without saving it", "security": [{ "bearer": [] }], "responses": { "200": { "description": "valid and errors" }, "404": { "description": "Section not found" } } }
    },
    "/api/schema": { "get": { "summary": "Field constraints of every section", "responses": { "200": { "description": "section schemas" } } } },
    "/api/schema/{section}": { "parameters": [{ "$ref": "#/components/parameters/section" }], "get": { "summary": "Field constraints of one section", "responses": { "200": { "description": "section schema" }, "404": { "description": "Section not found" } } } },
    "/api/upload": {
      "post": {
        "summary": "Upload an image or video",
        "security": [{ "bearer": [] }],
        "requestBody": { "content": { "multipart/form-data": { "schema": { "type": "object", "properties": { "file": { "type": "string", "format": "binary" } } } } } },
        "responses": { "200": { "description": "filename, originalName, url, size and mimetype" }, "400": { "description": "missing, disallowed or too large file" }, "500": { "description": "failed to store file" } }
      }
    },
    "/metrics": { "get": { "summary": "Prometheus metrics", "responses": { "200": { "description": "text exposition" } } } }
  }
}`
