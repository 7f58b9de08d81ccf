// Package docs registra la especificación OpenAPI servida en /swagger.
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
        "/health": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {"200": {"description": "ok", "schema": {"type": "string"}}}
            }
        },
        "/meta": {
            "get": {
                "description": "Devuelve límites de fecha y edad, opciones de los filtros multi-select y los valores iniciales de cada página.",
                "produces": ["application/json"],
                "tags": ["meta"],
                "summary": "Metadatos del dataset",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/outcomes.Meta"}}}
            }
        },
        "/views": {
            "get": {
                "description": "Lista las vistas built-in (con su página) y las definidas en VIEWS_FILE.",
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Listar vistas",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/outcomes.ViewInfo"}}}
                }
            }
        },
        "/views/{view}": {
            "get": {
                "description": "Aplica los filtros del query string y devuelve tablas, KPIs u opciones según la vista.",
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Calcular una vista",
                "parameters": [
                    {"type": "string", "description": "Nombre de la vista (p.ej. overview-kpis)", "name": "view", "in": "path", "required": true},
                    {"type": "string", "description": "YYYY-MM-DD o RFC3339", "name": "start_date", "in": "query"},
                    {"type": "string", "description": "YYYY-MM-DD o RFC3339", "name": "end_date", "in": "query"},
                    {"type": "integer", "description": "Edad mínima en meses (inclusive)", "name": "age_min", "in": "query"},
                    {"type": "integer", "description": "Edad máxima en meses (inclusive)", "name": "age_max", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "description": "Sexo al egreso (repetible)", "name": "sex", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "description": "Raza (repetible)", "name": "breed", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "description": "Color (repetible)", "name": "color", "in": "query"},
                    {"type": "string", "description": "Tipo de outcome", "name": "outcome_type", "in": "query"},
                    {"type": "boolean", "description": "Solo razas reconocidas por la CFA", "name": "cfa_breed", "in": "query"},
                    {"type": "string", "description": "Filtro del histograma por hora", "name": "weekday", "in": "query"},
                    {"type": "string", "description": "Filtro del histograma por día", "name": "month", "in": "query"},
                    {"type": "string", "description": "Filtro del histograma por mes", "name": "year", "in": "query"},
                    {"type": "string", "description": "date | month_year | year", "name": "period", "in": "query"},
                    {"type": "integer", "description": "Cantidad de rangos de edad (5 a 100)", "name": "bins", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "description": "Categorías de KPI (máx. 3)", "name": "kpi", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/outcomes.Result"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/outcomes.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/outcomes.errorResponse"}}
                }
            }
        },
        "/pages/{page}": {
            "get": {
                "description": "Calcula en paralelo las vistas de overview, subtypes, distributions, age o breed. Acepta los mismos filtros que /views/{view}.",
                "produces": ["application/json"],
                "tags": ["pages"],
                "summary": "Calcular todas las vistas de una página",
                "parameters": [
                    {"type": "string", "description": "overview | subtypes | distributions | age | breed", "name": "page", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/outcomes.pageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/outcomes.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/outcomes.errorResponse"}}
                }
            }
        },
        "/query": {
            "post": {
                "description": "Ejecuta el pipeline filtros → rangos → igualdad → agrupación → porcentaje sobre el dataset completo.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["query"],
                "summary": "Consulta ad-hoc",
                "parameters": [
                    {"description": "Consulta; group_by admite de 1 a 3 columnas", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/outcomes.Query"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/outcomes.queryResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/outcomes.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "outcomes.AgeRange": {
            "type": "object",
            "properties": {"max": {"type": "integer"}, "min": {"type": "integer"}}
        },
        "outcomes.BinSpec": {
            "type": "object",
            "properties": {"count": {"type": "integer"}, "source": {"type": "string"}, "target": {"type": "string"}}
        },
        "outcomes.DateRange": {
            "type": "object",
            "properties": {"end": {"type": "string", "description": "YYYY-MM-DD o RFC3339"}, "start": {"type": "string", "description": "YYYY-MM-DD o RFC3339"}}
        },
        "outcomes.Filters": {
            "type": "object",
            "properties": {
                "age": {"$ref": "#/definitions/outcomes.AgeRange"},
                "breeds": {"type": "array", "items": {"type": "string"}},
                "cfa_breed": {"type": "boolean"},
                "colors": {"type": "array", "items": {"type": "string"}},
                "dates": {"$ref": "#/definitions/outcomes.DateRange"},
                "equals": {"type": "object", "additionalProperties": {"type": "string"}},
                "sexes": {"type": "array", "items": {"type": "string"}}
            }
        },
        "outcomes.KPI": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "count": {"type": "integer"},
                "percentage": {"type": "number"},
                "status": {"type": "string", "enum": ["ok", "not_found", "no_data"]},
                "total": {"type": "integer"}
            }
        },
        "outcomes.Meta": {
            "type": "object",
            "properties": {
                "breeds": {"type": "array", "items": {"type": "string"}},
                "colors": {"type": "array", "items": {"type": "string"}},
                "dataset_id": {"type": "string"},
                "kpi_defaults": {"type": "array", "items": {"type": "string"}},
                "loaded_at": {"type": "string"},
                "max_age_months": {"type": "integer"},
                "max_date": {"type": "string"},
                "min_age_months": {"type": "integer"},
                "min_date": {"type": "string"},
                "outcome_types": {"type": "array", "items": {"type": "string"}},
                "pages": {"type": "array", "items": {"$ref": "#/definitions/outcomes.PageDefaults"}},
                "records": {"type": "integer"},
                "sexes": {"type": "array", "items": {"type": "string"}},
                "source": {"type": "string"}
            }
        },
        "outcomes.PageDefaults": {
            "type": "object",
            "properties": {
                "age_max": {"type": "integer"},
                "age_min": {"type": "integer"},
                "bins": {"type": "integer"},
                "cfa_breed": {"type": "boolean"},
                "end_date": {"type": "string"},
                "outcome_type": {"type": "string"},
                "page": {"type": "string"},
                "start_date": {"type": "string"},
                "views": {"type": "array", "items": {"type": "string"}},
                "window_months": {"type": "integer"}
            }
        },
        "outcomes.Query": {
            "type": "object",
            "properties": {
                "bins": {"$ref": "#/definitions/outcomes.BinSpec"},
                "filters": {"$ref": "#/definitions/outcomes.Filters"},
                "group_by": {"type": "array", "items": {"type": "string"}},
                "percentage": {"type": "boolean"},
                "percentage_within": {"type": "array", "items": {"type": "string"}},
                "post_equals": {"type": "object", "additionalProperties": {"type": "string"}},
                "pre_equals": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "outcomes.Result": {
            "type": "object",
            "properties": {
                "axis_order": {"type": "array", "items": {"type": "string"}},
                "dataset_id": {"type": "string"},
                "kpis": {"type": "array", "items": {"$ref": "#/definitions/outcomes.KPI"}},
                "options": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}},
                "records": {"type": "integer"},
                "tables": {"type": "object", "additionalProperties": {"$ref": "#/definitions/outcomes.Table"}},
                "view": {"type": "string"},
                "warnings": {"type": "array", "items": {"type": "string"}}
            }
        },
        "outcomes.Table": {
            "type": "object",
            "properties": {
                "keys": {"type": "array", "items": {"type": "string"}},
                "rows": {"type": "array", "items": {"type": "object", "additionalProperties": true}}
            }
        },
        "outcomes.ViewInfo": {
            "type": "object",
            "properties": {
                "custom": {"type": "boolean"},
                "description": {"type": "string"},
                "name": {"type": "string"},
                "page": {"type": "string"}
            }
        },
        "outcomes.errorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "outcomes.pageResponse": {
            "type": "object",
            "properties": {
                "page": {"type": "string"},
                "views": {"type": "object", "additionalProperties": {"$ref": "#/definitions/outcomes.Result"}}
            }
        },
        "outcomes.queryResponse": {
            "type": "object",
            "properties": {
                "dataset_id": {"type": "string"},
                "records": {"type": "integer"},
                "table": {"$ref": "#/definitions/outcomes.Table"},
                "warnings": {"type": "array", "items": {"type": "string"}}
            }
        }
    }
}`

// SwaggerInfo contiene la información exportada de la especificación.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Shelter Outcomes API",
	Description:      "Consultas agregadas sobre los egresos (outcomes) de un refugio de animales.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
