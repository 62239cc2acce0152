// Package docs holds the API document served by the gateway.
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
        "/api/payments": {
            "post": {
                "security": [
                    {
                        "ApiKey": []
                    }
                ],
                "description": "Validate a card payment, send it to the acquiring bank and store the outcome.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "payments"
                ],
                "summary": "Process a payment",
                "parameters": [
                    {
                        "description": "Card payment details",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.PaymentRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Payment authorized or declined",
                        "schema": {
                            "$ref": "#/definitions/handler.PaymentResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid payment request",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Missing or invalid API key",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "Acquiring bank unavailable",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "504": {
                        "description": "Request timed out",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/payments/{id}": {
            "get": {
                "security": [
                    {
                        "ApiKey": []
                    }
                ],
                "description": "Look up a previously processed payment by its identifier.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "payments"
                ],
                "summary": "Get a payment",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "description": "Payment ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Payment found",
                        "schema": {
                            "$ref": "#/definitions/handler.PaymentResponse"
                        }
                    },
                    "401": {
                        "description": "Missing or invalid API key",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Payment not found"
                    }
                }
            }
        },
        "/-/live": {
            "get": {
                "description": "Report that the process is serving requests.",
                "tags": [
                    "health"
                ],
                "summary": "Liveness probe",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        }
    },
    "definitions": {
        "domain.PaymentRequest": {
            "type": "object",
            "required": [
                "amount",
                "cardNumber",
                "currency",
                "cvv",
                "expiryMonth",
                "expiryYear"
            ],
            "properties": {
                "amount": {
                    "type": "integer",
                    "minimum": 1,
                    "example": 250
                },
                "cardNumber": {
                    "type": "string",
                    "maxLength": 19,
                    "minLength": 14,
                    "example": "4111111111111111"
                },
                "currency": {
                    "type": "string",
                    "example": "GBP"
                },
                "cvv": {
                    "type": "string",
                    "maxLength": 4,
                    "minLength": 3,
                    "example": "321"
                },
                "expiryMonth": {
                    "type": "integer",
                    "maximum": 12,
                    "minimum": 1,
                    "example": 12
                },
                "expiryYear": {
                    "type": "integer",
                    "example": 2030
                }
            }
        },
        "domain.Violation": {
            "type": "object",
            "properties": {
                "field": {
                    "type": "string",
                    "example": "cardNumber"
                },
                "message": {
                    "type": "string",
                    "example": "Card number must be between 14 and 19 digits."
                }
            }
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string",
                    "example": "VALIDATION_FAILED"
                },
                "errors": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Violation"
                    }
                },
                "message": {
                    "type": "string",
                    "example": "One or more validation errors occurred."
                },
                "statusCode": {
                    "type": "integer",
                    "example": 400
                }
            }
        },
        "handler.PaymentResponse": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "integer",
                    "example": 250
                },
                "cardNumberLastFour": {
                    "type": "string",
                    "example": "1111"
                },
                "currency": {
                    "type": "string",
                    "example": "GBP"
                },
                "expiryMonth": {
                    "type": "integer",
                    "example": 12
                },
                "expiryYear": {
                    "type": "integer",
                    "example": 2030
                },
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "example": "3fa85f64-5717-4562-b3fc-2c963f66afa6"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "Authorized",
                        "Declined"
                    ],
                    "example": "Authorized"
                }
            }
        }
    },
    "securityDefinitions": {
        "ApiKey": {
            "description": "Shared secret issued to the merchant.",
            "type": "apiKey",
            "name": "X-Api-Key",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Card Payment Gateway API",
	Description:      "Accepts card payments, forwards them to the acquiring bank and records the outcome.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
