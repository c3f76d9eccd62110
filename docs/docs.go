// Package docs holds the Swagger 2.0 document served under /v1/swagger.
// It follows the swag annotations in cmd/api and internal/delivery/http/v1;
// regenerate it with `swag init -g cmd/api/main.go` after changing them.
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
        "/profile": {
            "get": {
                "description": "Current mode, form draft with visible errors, or the committed profile",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "profile"
                ],
                "summary": "Get editor state",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/domain.EditorState"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/profile/cancel": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "profile"
                ],
                "summary": "Discard the draft",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/domain.EditorState"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        },
        "/profile/edit": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "profile"
                ],
                "summary": "Edit the saved profile",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/domain.EditorState"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        },
        "/profile/fields/{name}": {
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "profile"
                ],
                "summary": "Change a text field",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Field name",
                        "name": "name",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "New value",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.SetFieldRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/domain.EditorState"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        },
        "/profile/fields/{name}/blur": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "profile"
                ],
                "summary": "Mark a field as touched",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Field name",
                        "name": "name",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/domain.EditorState"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/profile/fields/{name}/file": {
            "post": {
                "description": "Multipart upload in form field \"file\". Omitting the file clears the selection.",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "profile"
                ],
                "summary": "Choose a file for a file field",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Field name (resumeFile or profilePicture)",
                        "name": "name",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "file",
                        "description": "Selected file",
                        "name": "file",
                        "in": "formData"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/domain.EditorState"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "413": {
                        "description": "Request Entity Too Large",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "profile"
                ],
                "summary": "Clear a file field",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Field name (resumeFile or profilePicture)",
                        "name": "name",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/domain.EditorState"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/profile/previews/{id}": {
            "get": {
                "description": "Serves a preview handle owned by the caller's session",
                "produces": [
                    "image/jpeg"
                ],
                "tags": [
                    "profile"
                ],
                "summary": "Profile picture preview",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Preview handle",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        },
        "/profile/resume-mode": {
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "profile"
                ],
                "summary": "Switch between resume file and resume link",
                "parameters": [
                    {
                        "description": "Mode",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.ResumeModeRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/domain.EditorState"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        },
        "/profile/submit": {
            "post": {
                "description": "Commits the draft and switches to the read-only view, or returns field errors",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "profile"
                ],
                "summary": "Submit the form",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/domain.EditorState"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "domain.AppMode": {
            "type": "string",
            "enum": [
                "editing",
                "viewing"
            ],
            "x-enum-varnames": [
                "ModeEditing",
                "ModeViewing"
            ]
        },
        "domain.BioStatus": {
            "type": "object",
            "properties": {
                "count": {
                    "type": "integer"
                },
                "inRange": {
                    "type": "boolean"
                }
            }
        },
        "domain.CommittedProfile": {
            "type": "object",
            "properties": {
                "bio": {
                    "type": "string"
                },
                "codeChef": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "geeksforGeeks": {
                    "type": "string"
                },
                "leetCode": {
                    "type": "string"
                },
                "linkedIn": {
                    "type": "string"
                },
                "portfolioLink": {
                    "type": "string"
                },
                "profilePicture": {
                    "$ref": "#/definitions/domain.FileRef"
                },
                "resumeFile": {
                    "$ref": "#/definitions/domain.FileRef"
                },
                "resumeLink": {
                    "type": "string"
                },
                "resumeMode": {
                    "$ref": "#/definitions/domain.ResumeMode"
                },
                "username": {
                    "type": "string"
                }
            }
        },
        "domain.EditorState": {
            "type": "object",
            "properties": {
                "form": {
                    "$ref": "#/definitions/domain.FormState"
                },
                "mode": {
                    "$ref": "#/definitions/domain.AppMode"
                },
                "view": {
                    "$ref": "#/definitions/domain.ProfileView"
                }
            }
        },
        "domain.FieldState": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                },
                "touched": {
                    "type": "boolean"
                }
            }
        },
        "domain.FileRef": {
            "description": "null when no file is selected",
            "type": "object",
            "properties": {
                "kind": {
                    "type": "string",
                    "enum": [
                        "new",
                        "existing"
                    ]
                },
                "name": {
                    "type": "string"
                },
                "ref": {
                    "type": "string"
                },
                "size": {
                    "type": "integer"
                },
                "type": {
                    "type": "string"
                }
            }
        },
        "domain.FormState": {
            "type": "object",
            "properties": {
                "bio": {
                    "$ref": "#/definitions/domain.BioStatus"
                },
                "draft": {
                    "$ref": "#/definitions/domain.ProfileDraft"
                },
                "editMode": {
                    "type": "boolean"
                },
                "fields": {
                    "type": "object",
                    "additionalProperties": {
                        "$ref": "#/definitions/domain.FieldState"
                    }
                },
                "picturePreview": {
                    "type": "string"
                },
                "valid": {
                    "type": "boolean"
                },
                "visibleErrors": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                }
            }
        },
        "domain.LinkInfo": {
            "type": "object",
            "properties": {
                "field": {
                    "type": "string"
                },
                "platform": {
                    "type": "string"
                },
                "url": {
                    "type": "string"
                },
                "username": {
                    "type": "string"
                }
            }
        },
        "domain.ProfileDraft": {
            "type": "object",
            "properties": {
                "bio": {
                    "type": "string"
                },
                "codeChef": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "geeksforGeeks": {
                    "type": "string"
                },
                "leetCode": {
                    "type": "string"
                },
                "linkedIn": {
                    "type": "string"
                },
                "portfolioLink": {
                    "type": "string"
                },
                "profilePicture": {
                    "$ref": "#/definitions/domain.FileRef"
                },
                "resumeFile": {
                    "$ref": "#/definitions/domain.FileRef"
                },
                "resumeLink": {
                    "type": "string"
                },
                "resumeMode": {
                    "$ref": "#/definitions/domain.ResumeMode"
                },
                "username": {
                    "type": "string"
                }
            }
        },
        "domain.ProfileView": {
            "type": "object",
            "properties": {
                "links": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.LinkInfo"
                    }
                },
                "picturePreview": {
                    "type": "string"
                },
                "profile": {
                    "$ref": "#/definitions/domain.CommittedProfile"
                }
            }
        },
        "domain.ResumeMode": {
            "type": "string",
            "enum": [
                "file",
                "link"
            ],
            "x-enum-varnames": [
                "ResumeModeFile",
                "ResumeModeLink"
            ]
        },
        "response.Response": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {},
                "message": {
                    "type": "string"
                },
                "request_id": {
                    "type": "string"
                },
                "success": {
                    "type": "boolean"
                }
            }
        },
        "v1.ResumeModeRequest": {
            "type": "object",
            "required": [
                "mode"
            ],
            "properties": {
                "mode": {
                    "type": "string",
                    "enum": [
                        "file",
                        "link"
                    ]
                }
            }
        },
        "v1.SetFieldRequest": {
            "type": "object",
            "required": [
                "value"
            ],
            "properties": {
                "value": {
                    "type": "string"
                }
            }
        }
    },
    "securityDefinitions": {
        "CSRFToken": {
            "type": "apiKey",
            "name": "X-CSRF-Token",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Profile Editor API",
	Description:      "Per-session developer profile form with live validation and a read-only view.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
