// Package docs holds the Swagger document served outside production.
// Regenerate with: swag init -g cmd/finance_backend/main.go -o cmd/docs
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
        "/finance/accounts": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Get the chart of accounts",
                "responses": {"200": {"description": "OK"}, "500": {"description": "Internal Server Error"}}
            }
        },
        "/finance/accounts/{code}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Get an account by code",
                "parameters": [{"type": "string", "name": "code", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["accounts"],
                "summary": "Deactivate an account",
                "parameters": [{"type": "string", "name": "code", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}
            }
        },
        "/finance/journals": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["journals"],
                "summary": "List journal entries for a business reference",
                "parameters": [
                    {"type": "string", "name": "referenceType", "in": "query", "required": true},
                    {"type": "string", "name": "reference", "in": "query", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["journals"],
                "summary": "Post a balanced journal entry",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            }
        },
        "/finance/journals/{journalID}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["journals"],
                "summary": "Get a journal entry with its lines",
                "parameters": [{"type": "string", "name": "journalID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/finance/transactions": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "List financial records",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Record a financial transaction and post its journal",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/finance/transactions/{recordID}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Get a financial record",
                "parameters": [{"type": "string", "name": "recordID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/finance/transactions/{recordID}/repost": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["transactions"],
                "summary": "Retry journal posting for an unlinked record",
                "parameters": [{"type": "string", "name": "recordID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}
            }
        },
        "/finance/services/{serviceID}/income": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["recorders"],
                "summary": "Record service ticket income",
                "parameters": [{"type": "string", "name": "serviceID", "in": "path", "required": true}],
                "responses": {"200": {"description": "Already recorded"}, "201": {"description": "Created"}}
            }
        },
        "/finance/services/{serviceID}/parts": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["recorders"],
                "summary": "Record parts used on a service ticket",
                "parameters": [{"type": "string", "name": "serviceID", "in": "path", "required": true}],
                "responses": {"200": {"description": "Already recorded"}, "201": {"description": "Created"}}
            }
        },
        "/finance/services/{serviceID}/labor": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["recorders"],
                "summary": "Record the labor charge of a service ticket",
                "parameters": [{"type": "string", "name": "serviceID", "in": "path", "required": true}],
                "responses": {"200": {"description": "Already recorded"}, "201": {"description": "Created"}, "204": {"description": "Nothing to record"}}
            }
        },
        "/finance/payrolls": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "tags": ["payroll"],
                "summary": "Create a payroll draft",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/finance/payrolls/{payrollID}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["payroll"],
                "summary": "Get a payroll",
                "parameters": [{"type": "string", "name": "payrollID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/finance/payrolls/{payrollID}/status": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "tags": ["payroll"],
                "summary": "Move a payroll through its lifecycle",
                "parameters": [{"type": "string", "name": "payrollID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}
            }
        },
        "/finance/reports/balance-sheet": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["reports"],
                "summary": "Balance sheet, live or as of a date",
                "parameters": [{"type": "string", "name": "asOf", "in": "query"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/finance/reports/income-statement": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["reports"],
                "summary": "Income statement over a period",
                "parameters": [
                    {"type": "string", "name": "startDate", "in": "query"},
                    {"type": "string", "name": "endDate", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/finance/reports/summary": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["reports"],
                "summary": "Transaction summary over a period",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/finance/reports/reconciliation": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["reports"],
                "summary": "Compare cached balances with journal activity",
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
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
	Title:            "POS Finance API",
	Description:      "Double-entry ledger, transaction recording and financial reports for the POS backend.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
