package router

import (
	"fmt"
	"net/http"
)

func registerSwaggerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})

	mux.HandleFunc("/swagger/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, swaggerHTML, "/swagger/openapi.json")
	})

	mux.HandleFunc("/swagger/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(openAPI))
	})
}

const swaggerHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <title>Bank Records API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = function() {
      window.ui = SwaggerUIBundle({
        url: "%s",
        dom_id: "#swagger-ui"
      });
    };
  </script>
</body>
</html>`

const openAPI = `{
  "openapi": "3.0.3",
  "info": {
    "title": "Bank Records API",
    "version": "1.0.0"
  },
  "paths": {
    "/api/bank/all": {
      "get": {
        "summary": "List all banks",
        "responses": {
          "200": {
            "description": "All bank records",
            "content": {
              "application/json": {
                "schema": {
                  "type": "array",
                  "items": { "$ref": "#/components/schemas/Bank" }
                }
              }
            }
          }
        }
      }
    },
    "/api/bank": {
      "post": {
        "summary": "Create a bank record",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": { "$ref": "#/components/schemas/Bank" }
            }
          }
        },
        "responses": {
          "201": {
            "description": "Created bank record with assigned id",
            "content": {
              "application/json": {
                "schema": { "$ref": "#/components/schemas/Bank" }
              }
            }
          },
          "400": { "description": "Account number already exists" }
        }
      },
      "put": {
        "summary": "Replace a bank record",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": { "$ref": "#/components/schemas/Bank" }
            }
          }
        },
        "responses": {
          "200": {
            "description": "Updated bank record",
            "content": {
              "application/json": {
                "schema": { "$ref": "#/components/schemas/Bank" }
              }
            }
          },
          "400": { "description": "Missing id" },
          "404": { "description": "No record for the account number or id" }
        }
      }
    },
    "/api/bank/{accountNumber}": {
      "get": {
        "summary": "Get a bank record by account number",
        "parameters": [
          {
            "name": "accountNumber",
            "in": "path",
            "required": true,
            "schema": { "type": "string" }
          }
        ],
        "responses": {
          "200": {
            "description": "Bank record",
            "content": {
              "application/json": {
                "schema": { "$ref": "#/components/schemas/Bank" }
              }
            }
          },
          "404": { "description": "No record for the account number" }
        }
      },
      "delete": {
        "summary": "Delete a bank record by account number",
        "parameters": [
          {
            "name": "accountNumber",
            "in": "path",
            "required": true,
            "schema": { "type": "string" }
          }
        ],
        "responses": {
          "204": { "description": "Deleted" },
          "404": { "description": "No record for the account number" }
        }
      }
    }
  },
  "components": {
    "schemas": {
      "Bank": {
        "type": "object",
        "properties": {
          "id": { "type": "integer", "nullable": true },
          "accountNumber": { "type": "string" },
          "transactionFee": { "type": "number" },
          "trustFee": { "type": "number" }
        },
        "required": ["accountNumber", "transactionFee", "trustFee"]
      }
    }
  }
}`
