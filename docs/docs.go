// Package docs holds the generated OpenAPI definition served on /swagger/*.
// Regenerate with: swag init -g cmd/api/main.go -o docs
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
        "/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new user",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Login",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Current user",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/courses": {
            "get": {
                "tags": ["courses"],
                "summary": "List courses",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["courses"],
                "summary": "Create a course",
                "responses": {"201": {"description": "Created"}, "403": {"description": "Forbidden"}}
            }
        },
        "/courses/{id}/enroll": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["courses"],
                "summary": "Enroll in a course",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/enrollments": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["courses"],
                "summary": "List own enrollments",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/jobs": {
            "get": {
                "tags": ["jobs"],
                "summary": "List jobs",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["jobs"],
                "summary": "Post a job",
                "responses": {"201": {"description": "Created"}, "403": {"description": "Forbidden"}}
            }
        },
        "/jobs/{id}/apply": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["jobs"],
                "summary": "Apply to a job",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/applications": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["jobs"],
                "summary": "List own applications",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/dashboard/stats": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["dashboard"],
                "summary": "Dashboard stats",
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "SkillSetu Marketplace API",
	Description:      "Learning and job marketplace: auth, courses, jobs, enrollments, applications.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
