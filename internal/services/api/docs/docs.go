// Package docs holds the OpenAPI document served by swaggerkit
// keep it in step with the swagger annotations on the http handlers
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
    "openapi": "3.0.3",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "paths": {
        "/search/substring": {
            "post": {
                "tags": ["search"],
                "summary": "Locate the first occurrence of a pattern",
                "requestBody": {
                    "required": true,
                    "content": {"application/json": {"schema": {"$ref": "#/components/schemas/SubstringInput"}}}
                },
                "responses": {
                    "200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/SubstringResult"}}}},
                    "422": {"description": "Unprocessable Entity", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
                }
            }
        },
        "/search/subarray": {
            "post": {
                "tags": ["search"],
                "summary": "Find the longest contiguous run with the given sum",
                "requestBody": {
                    "required": true,
                    "content": {"application/json": {"schema": {"$ref": "#/components/schemas/SubarrayInput"}}}
                },
                "responses": {
                    "200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/SubarrayResult"}}}},
                    "422": {"description": "Unprocessable Entity", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
                }
            }
        },
        "/search/first-of": {
            "post": {
                "tags": ["search"],
                "summary": "Locate the leftmost match of any pattern",
                "requestBody": {
                    "required": true,
                    "content": {"application/json": {"schema": {"$ref": "#/components/schemas/FirstOfInput"}}}
                },
                "responses": {
                    "200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/FirstOfResult"}}}}
                }
            }
        },
        "/search/first-word": {
            "post": {
                "tags": ["search"],
                "summary": "Return the text up to the first space",
                "requestBody": {
                    "required": true,
                    "content": {"application/json": {"schema": {"$ref": "#/components/schemas/FirstWordInput"}}}
                },
                "responses": {
                    "200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/FirstWordResult"}}}}
                }
            }
        },
        "/search/runs": {
            "post": {
                "tags": ["search"],
                "summary": "List recent recorded runs",
                "requestBody": {
                    "content": {"application/json": {"schema": {"$ref": "#/components/schemas/RunsInput"}}}
                },
                "responses": {
                    "200": {"description": "OK", "content": {"application/json": {"schema": {"type": "array", "items": {"$ref": "#/components/schemas/Run"}}}}},
                    "503": {"description": "Service Unavailable", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
                }
            }
        },
        "/stats/summary": {
            "post": {
                "tags": ["stats"],
                "summary": "Per kind totals from the analytics store",
                "requestBody": {
                    "content": {"application/json": {"schema": {"$ref": "#/components/schemas/SummaryInput"}}}
                },
                "responses": {
                    "200": {"description": "OK", "content": {"application/json": {"schema": {"type": "array", "items": {"$ref": "#/components/schemas/KindSummary"}}}}},
                    "503": {"description": "Service Unavailable", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
                }
            }
        },
        "/meta/health": {
            "get": {"tags": ["meta"], "summary": "Liveness probe", "responses": {"200": {"description": "OK"}}}
        },
        "/meta/ready": {
            "get": {
                "tags": ["meta"],
                "summary": "Readiness probe, pings enabled stores",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Service Unavailable", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
                }
            }
        },
        "/meta/version": {
            "get": {"tags": ["meta"], "summary": "Build information", "responses": {"200": {"description": "OK"}}}
        },
        "/meta/service": {
            "get": {"tags": ["meta"], "summary": "Service name and uptime", "responses": {"200": {"description": "OK"}}}
        }
    },
    "components": {
        "schemas": {
            "SubstringInput": {
                "type": "object",
                "required": ["text", "pattern"],
                "properties": {
                    "text": {"type": "string"},
                    "pattern": {"type": "string"},
                    "normalize": {"type": "string", "enum": ["none", "nfc", "nfkc", "fold"]}
                }
            },
            "SubstringResult": {
                "type": "object",
                "properties": {
                    "position": {"type": "integer"},
                    "found": {"type": "boolean"},
                    "sentinel": {"type": "integer"},
                    "rune_position": {"type": "integer"},
                    "length": {"type": "integer"},
                    "run_id": {"type": "string", "format": "uuid"}
                }
            },
            "SubarrayInput": {
                "type": "object",
                "required": ["numbers"],
                "properties": {
                    "numbers": {"type": "array", "items": {"type": "integer"}},
                    "sum": {"type": "integer"},
                    "strategy": {"type": "string", "enum": ["scan", "prefix"]}
                }
            },
            "SubarrayResult": {
                "type": "object",
                "properties": {
                    "start": {"type": "integer"},
                    "length": {"type": "integer"},
                    "found": {"type": "boolean"},
                    "sentinel": {"type": "integer"},
                    "slice": {"type": "array", "items": {"type": "integer"}},
                    "run_id": {"type": "string", "format": "uuid"}
                }
            },
            "FirstOfInput": {
                "type": "object",
                "required": ["text", "patterns"],
                "properties": {
                    "text": {"type": "string"},
                    "patterns": {"type": "array", "items": {"type": "string"}}
                }
            },
            "FirstOfResult": {
                "type": "object",
                "properties": {
                    "position": {"type": "integer"},
                    "pattern_index": {"type": "integer"},
                    "pattern": {"type": "string"},
                    "found": {"type": "boolean"},
                    "run_id": {"type": "string", "format": "uuid"}
                }
            },
            "FirstWordInput": {
                "type": "object",
                "required": ["text"],
                "properties": {"text": {"type": "string"}}
            },
            "FirstWordResult": {
                "type": "object",
                "properties": {"word": {"type": "string"}, "length": {"type": "integer"}}
            },
            "RunsInput": {
                "type": "object",
                "properties": {
                    "kind": {"type": "string", "enum": ["substring", "subarray", "first_of"]},
                    "limit": {"type": "integer", "minimum": 1, "maximum": 500}
                }
            },
            "Run": {
                "type": "object",
                "properties": {
                    "id": {"type": "string", "format": "uuid"},
                    "kind": {"type": "string"},
                    "found": {"type": "boolean"},
                    "elapsed_us": {"type": "integer"},
                    "input": {"type": "string"},
                    "result": {"type": "string"},
                    "created_at": {"type": "string", "format": "date-time"}
                }
            },
            "SummaryInput": {
                "type": "object",
                "properties": {"since_hours": {"type": "integer", "minimum": 1, "maximum": 8760}}
            },
            "KindSummary": {
                "type": "object",
                "properties": {
                    "kind": {"type": "string"},
                    "total": {"type": "integer"},
                    "found": {"type": "integer"},
                    "hit_rate": {"type": "number"},
                    "mean_elapsed_us": {"type": "number"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Title:            "needle API",
	Description:      "Substring and subarray-sum search over JSON.",
	InfoInstanceName: "api",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
