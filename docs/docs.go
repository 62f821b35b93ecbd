// Package docs contiene el documento OpenAPI servido en /swagger/*.
// Se regenera desde las anotaciones de los handlers con `go generate ./cmd/api` (swag init).
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
        "/animals": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "animals"
                ],
                "summary": "Listar animales",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filtra por propiedad",
                        "name": "property_id",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filtra por especie",
                        "name": "species",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/animals.animalResponse"
                            }
                        }
                    }
                }
            },
            "post": {
                "description": "Alta de un animal del usuario. property_id es opcional pero debe ser propia.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "animals"
                ],
                "summary": "Registrar animal",
                "parameters": [
                    {
                        "description": "Datos del animal; birth_date YYYY-MM-DD",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/animals.createAnimalRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/animals.animalResponse"
                        }
                    },
                    "400": {
                        "description": "invalid json / reglas de negocio",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "401": {
                        "description": "unauthorized",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/animals/{animalID}": {
            "delete": {
                "tags": [
                    "animals"
                ],
                "summary": "Borrar animal",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID",
                        "name": "animalID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "animals"
                ],
                "summary": "Ver animal",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID",
                        "name": "animalID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/animals.animalResponse"
                        }
                    },
                    "404": {
                        "description": "not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "animals"
                ],
                "summary": "Editar animal",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID",
                        "name": "animalID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Campos a modificar; ausentes no se tocan",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/animals.updateAnimalRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/animals.animalResponse"
                        }
                    },
                    "400": {
                        "description": "invalid json / reglas de negocio",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/breeding/dashboard": {
            "get": {
                "description": "Contadores de hembras en cría, preñadas, lactando (birth en los últimos 60 días) y abiertas. Si la lectura de eventos falla devuelve todo en cero con 200; la falla queda en logs y en dashboard_fetch_failures_total{dashboard=\"breeding\"}.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "breeding"
                ],
                "summary": "Tablero de cría",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/breeding.Summary"
                        }
                    },
                    "401": {
                        "description": "unauthorized",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/breeding/events": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "breeding"
                ],
                "summary": "Listar eventos de cría",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filtra por animal",
                        "name": "animal_id",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Uno o varios tipos separados por coma",
                        "name": "event_type",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Desde (YYYY-MM-DD, inclusive)",
                        "name": "from",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Hasta (YYYY-MM-DD, inclusive)",
                        "name": "to",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/breeding.eventResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "filtro inválido",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "post": {
                "description": "animal_id, partner_animal_id y property_id deben pertenecer al usuario.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "breeding"
                ],
                "summary": "Registrar evento de cría",
                "parameters": [
                    {
                        "description": "Evento; fechas YYYY-MM-DD",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/breeding.createEventRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/breeding.eventResponse"
                        }
                    },
                    "400": {
                        "description": "invalid json / reglas de negocio",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "401": {
                        "description": "unauthorized",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/breeding/events/{eventID}": {
            "delete": {
                "tags": [
                    "breeding"
                ],
                "summary": "Borrar evento de cría",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID",
                        "name": "eventID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "breeding"
                ],
                "summary": "Ver evento de cría",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID",
                        "name": "eventID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/breeding.eventResponse"
                        }
                    },
                    "404": {
                        "description": "not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "patch": {
                "description": "PATCH parcial: campos ausentes no se tocan; \"\" en fechas opcionales las borra.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "breeding"
                ],
                "summary": "Editar evento de cría",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Event ID",
                        "name": "eventID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Campos a modificar",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/breeding.updateEventRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/breeding.eventResponse"
                        }
                    },
                    "400": {
                        "description": "invalid json / reglas de negocio",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/finance/categories": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "finance"
                ],
                "summary": "Listar categorías",
                "parameters": [
                    {
                        "type": "string",
                        "description": "income | expense",
                        "name": "type",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/finance.categoryResponse"
                            }
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "finance"
                ],
                "summary": "Crear categoría",
                "parameters": [
                    {
                        "description": "Categoría",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/finance.categoryRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/finance.categoryResponse"
                        }
                    },
                    "400": {
                        "description": "invalid json / reglas de negocio",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/finance/categories/{categoryID}": {
            "delete": {
                "tags": [
                    "finance"
                ],
                "summary": "Borrar categoría",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID",
                        "name": "categoryID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "finance"
                ],
                "summary": "Editar categoría",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID",
                        "name": "categoryID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Campos a modificar; ausentes no se tocan",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/finance.categoryPatchRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/finance.categoryResponse"
                        }
                    },
                    "400": {
                        "description": "invalid json / reglas de negocio",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/finance/summary": {
            "get": {
                "description": "Ingresos, egresos y balance sobre las transacciones que cumplen los filtros.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "finance"
                ],
                "summary": "Balance",
                "parameters": [
                    {
                        "type": "string",
                        "description": "income | expense",
                        "name": "type",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Categoría",
                        "name": "category_id",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Propiedad",
                        "name": "property_id",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Desde (YYYY-MM-DD, inclusive)",
                        "name": "start_date",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Hasta (YYYY-MM-DD, inclusive)",
                        "name": "end_date",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/finance.Summary"
                        }
                    },
                    "400": {
                        "description": "filtro inválido",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/finance/transactions": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "finance"
                ],
                "summary": "Listar transacciones",
                "parameters": [
                    {
                        "type": "string",
                        "description": "income | expense",
                        "name": "type",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Categoría",
                        "name": "category_id",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Propiedad",
                        "name": "property_id",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Desde (YYYY-MM-DD, inclusive)",
                        "name": "start_date",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Hasta (YYYY-MM-DD, inclusive)",
                        "name": "end_date",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/finance.transactionResponse"
                            }
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "finance"
                ],
                "summary": "Registrar transacción",
                "parameters": [
                    {
                        "description": "Transacción; amount > 0",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/finance.transactionRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/finance.transactionResponse"
                        }
                    },
                    "400": {
                        "description": "invalid json / reglas de negocio",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/finance/transactions/{transactionID}": {
            "delete": {
                "tags": [
                    "finance"
                ],
                "summary": "Borrar transacción",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID",
                        "name": "transactionID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "finance"
                ],
                "summary": "Ver transacción",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID",
                        "name": "transactionID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/finance.transactionResponse"
                        }
                    },
                    "404": {
                        "description": "not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "finance"
                ],
                "summary": "Editar transacción",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID",
                        "name": "transactionID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Campos a modificar; ausentes no se tocan",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/finance.transactionPatchRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/finance.transactionResponse"
                        }
                    },
                    "400": {
                        "description": "invalid json / reglas de negocio",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/infrastructure/overview": {
            "get": {
                "description": "Cantidad y presupuesto por estado, más totales.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "infrastructure"
                ],
                "summary": "Resumen de proyectos",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/infrastructure.Overview"
                        }
                    }
                }
            }
        },
        "/infrastructure/projects": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "infrastructure"
                ],
                "summary": "Listar proyectos",
                "parameters": [
                    {
                        "type": "string",
                        "description": "planned | in_progress | completed",
                        "name": "status",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "greenhouse | barn | fence | water_system | other",
                        "name": "type",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Propiedad",
                        "name": "property_id",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Texto en nombre o descripción",
                        "name": "q",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/infrastructure.projectResponse"
                            }
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "infrastructure"
                ],
                "summary": "Crear proyecto de infraestructura",
                "parameters": [
                    {
                        "description": "Proyecto; status por defecto planned",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/infrastructure.createProjectRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/infrastructure.projectResponse"
                        }
                    },
                    "400": {
                        "description": "invalid json / reglas de negocio",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/infrastructure/projects/{projectID}": {
            "delete": {
                "tags": [
                    "infrastructure"
                ],
                "summary": "Borrar proyecto",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID",
                        "name": "projectID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "infrastructure"
                ],
                "summary": "Ver proyecto",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID",
                        "name": "projectID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/infrastructure.projectResponse"
                        }
                    },
                    "404": {
                        "description": "not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "infrastructure"
                ],
                "summary": "Editar proyecto",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID",
                        "name": "projectID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Campos a modificar; ausentes no se tocan",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/infrastructure.updateProjectRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/infrastructure.projectResponse"
                        }
                    },
                    "400": {
                        "description": "invalid json / reglas de negocio",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/inventory": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "inventory"
                ],
                "summary": "Listar inventario",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filtra por categoría",
                        "name": "category",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filtra por propiedad",
                        "name": "property_id",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/inventory.itemResponse"
                            }
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "inventory"
                ],
                "summary": "Alta de ítem de inventario",
                "parameters": [
                    {
                        "description": "Ítem",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/inventory.createItemRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/inventory.itemResponse"
                        }
                    },
                    "400": {
                        "description": "invalid json / reglas de negocio",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/inventory/low-stock": {
            "get": {
                "description": "current_stock <= reorder_point",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "inventory"
                ],
                "summary": "Ítems a reponer",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/inventory.itemResponse"
                            }
                        }
                    }
                }
            }
        },
        "/inventory/{itemID}": {
            "delete": {
                "tags": [
                    "inventory"
                ],
                "summary": "Borrar ítem",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID",
                        "name": "itemID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "inventory"
                ],
                "summary": "Ver ítem",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID",
                        "name": "itemID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/inventory.itemResponse"
                        }
                    },
                    "404": {
                        "description": "not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "inventory"
                ],
                "summary": "Editar ítem",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID",
                        "name": "itemID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Campos a modificar; ausentes no se tocan",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/inventory.updateItemRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/inventory.itemResponse"
                        }
                    },
                    "400": {
                        "description": "invalid json / reglas de negocio",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/me/profile": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "profile"
                ],
                "summary": "Perfil del usuario autenticado",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/profiles.profileResponse"
                        }
                    },
                    "404": {
                        "description": "profile not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
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
                "summary": "Crear o reemplazar perfil",
                "parameters": [
                    {
                        "description": "Nombre y apellido, 1..50 caracteres",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/profiles.profileRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/profiles.profileResponse"
                        }
                    },
                    "400": {
                        "description": "invalid json / reglas de negocio",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/planning/overview": {
            "get": {
                "description": "Propiedades, tareas pendientes, proyectos de infraestructura y estación actual.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "planning"
                ],
                "summary": "Resumen de planificación",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/planning.Overview"
                        }
                    },
                    "500": {
                        "description": "internal error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/properties": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "properties"
                ],
                "summary": "Listar propiedades del usuario",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/properties.propertyResponse"
                            }
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "properties"
                ],
                "summary": "Crear propiedad",
                "parameters": [
                    {
                        "description": "Datos de la propiedad",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/properties.createPropertyRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/properties.propertyResponse"
                        }
                    },
                    "400": {
                        "description": "invalid json / reglas de negocio",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "401": {
                        "description": "unauthorized",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/properties/{propertyID}": {
            "delete": {
                "tags": [
                    "properties"
                ],
                "summary": "Borrar propiedad",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID",
                        "name": "propertyID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "properties"
                ],
                "summary": "Ver propiedad",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID",
                        "name": "propertyID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/properties.propertyResponse"
                        }
                    },
                    "404": {
                        "description": "not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "properties"
                ],
                "summary": "Editar propiedad",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID",
                        "name": "propertyID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Campos a modificar; ausentes no se tocan",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/properties.updatePropertyRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/properties.propertyResponse"
                        }
                    },
                    "400": {
                        "description": "invalid json / reglas de negocio",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/tasks": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "tasks"
                ],
                "summary": "Listar tareas",
                "parameters": [
                    {
                        "type": "string",
                        "description": "pending | in_progress | completed",
                        "name": "status",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Propiedad",
                        "name": "property_id",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "description": "Solo tareas no completadas",
                        "name": "incomplete",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/tasks.taskResponse"
                            }
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "tasks"
                ],
                "summary": "Crear tarea",
                "parameters": [
                    {
                        "description": "Tarea; status por defecto pending",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/tasks.createTaskRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/tasks.taskResponse"
                        }
                    },
                    "400": {
                        "description": "invalid json / reglas de negocio",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/tasks/{taskID}": {
            "delete": {
                "tags": [
                    "tasks"
                ],
                "summary": "Borrar tarea",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID",
                        "name": "taskID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "tasks"
                ],
                "summary": "Ver tarea",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID",
                        "name": "taskID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/tasks.taskResponse"
                        }
                    },
                    "404": {
                        "description": "not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "tasks"
                ],
                "summary": "Editar tarea",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID",
                        "name": "taskID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Campos a modificar; ausentes no se tocan",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/tasks.updateTaskRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/tasks.taskResponse"
                        }
                    },
                    "400": {
                        "description": "invalid json / reglas de negocio",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "animals.animalResponse": {
            "type": "object",
            "properties": {
                "birth_date": {
                    "type": "string",
                    "format": "date"
                },
                "breed": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "property_id": {
                    "type": "string"
                },
                "sex": {
                    "type": "string"
                },
                "species": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                },
                "user_id": {
                    "type": "string"
                }
            }
        },
        "animals.createAnimalRequest": {
            "type": "object",
            "properties": {
                "birth_date": {
                    "type": "string"
                },
                "breed": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "property_id": {
                    "type": "string"
                },
                "sex": {
                    "type": "string",
                    "enum": [
                        "male",
                        "female",
                        "unknown"
                    ]
                },
                "species": {
                    "type": "string"
                }
            }
        },
        "animals.updateAnimalRequest": {
            "type": "object",
            "properties": {
                "birth_date": {
                    "type": "string"
                },
                "breed": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "property_id": {
                    "type": "string"
                },
                "sex": {
                    "type": "string"
                },
                "species": {
                    "type": "string"
                }
            }
        },
        "breeding.Summary": {
            "type": "object",
            "properties": {
                "breeding_females": {
                    "type": "integer"
                },
                "lactating": {
                    "type": "integer"
                },
                "open": {
                    "type": "integer"
                },
                "pregnant": {
                    "type": "integer"
                }
            }
        },
        "breeding.createEventRequest": {
            "type": "object",
            "properties": {
                "actual_birth_date": {
                    "type": "string"
                },
                "animal_id": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "event_type": {
                    "type": "string",
                    "enum": [
                        "heat_cycle",
                        "breeding",
                        "pregnancy_confirmation",
                        "birth"
                    ]
                },
                "expected_due_date": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "offspring_count": {
                    "type": "integer"
                },
                "partner_animal_id": {
                    "type": "string"
                },
                "partner_name": {
                    "type": "string"
                },
                "property_id": {
                    "type": "string"
                }
            }
        },
        "breeding.eventResponse": {
            "type": "object",
            "properties": {
                "actual_birth_date": {
                    "type": "string",
                    "format": "date"
                },
                "animal_id": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "date": {
                    "type": "string",
                    "format": "date"
                },
                "event_type": {
                    "type": "string"
                },
                "expected_due_date": {
                    "type": "string",
                    "format": "date"
                },
                "id": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "offspring_count": {
                    "type": "integer"
                },
                "partner_animal_id": {
                    "type": "string"
                },
                "partner_name": {
                    "type": "string"
                },
                "property_id": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                },
                "user_id": {
                    "type": "string"
                }
            }
        },
        "breeding.updateEventRequest": {
            "type": "object",
            "properties": {
                "actual_birth_date": {
                    "type": "string"
                },
                "animal_id": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "event_type": {
                    "type": "string"
                },
                "expected_due_date": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "offspring_count": {
                    "type": "integer"
                },
                "partner_animal_id": {
                    "type": "string"
                },
                "partner_name": {
                    "type": "string"
                },
                "property_id": {
                    "type": "string"
                }
            }
        },
        "finance.Summary": {
            "type": "object",
            "properties": {
                "balance": {
                    "type": "number"
                },
                "count": {
                    "type": "integer"
                },
                "expense": {
                    "type": "number"
                },
                "income": {
                    "type": "number"
                }
            }
        },
        "finance.categoryPatchRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                }
            }
        },
        "finance.categoryRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "income",
                        "expense"
                    ]
                }
            }
        },
        "finance.categoryResponse": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "finance.transactionPatchRequest": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number"
                },
                "category_id": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "property_id": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                }
            }
        },
        "finance.transactionRequest": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number"
                },
                "category_id": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "property_id": {
                    "type": "string"
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "income",
                        "expense"
                    ]
                }
            }
        },
        "finance.transactionResponse": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number"
                },
                "category_id": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "date": {
                    "type": "string",
                    "format": "date"
                },
                "description": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "property_id": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                },
                "user_id": {
                    "type": "string"
                }
            }
        },
        "infrastructure.Overview": {
            "type": "object",
            "properties": {
                "completed": {
                    "$ref": "#/definitions/infrastructure.StatusTotals"
                },
                "in_progress": {
                    "$ref": "#/definitions/infrastructure.StatusTotals"
                },
                "planned": {
                    "$ref": "#/definitions/infrastructure.StatusTotals"
                },
                "total": {
                    "type": "integer"
                },
                "total_budget": {
                    "type": "number"
                }
            }
        },
        "infrastructure.StatusTotals": {
            "type": "object",
            "properties": {
                "budget": {
                    "type": "number"
                },
                "count": {
                    "type": "integer"
                }
            }
        },
        "infrastructure.createProjectRequest": {
            "type": "object",
            "properties": {
                "budget": {
                    "type": "number"
                },
                "description": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "property_id": {
                    "type": "string"
                },
                "start_date": {
                    "type": "string"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "planned",
                        "in_progress",
                        "completed"
                    ]
                },
                "target_date": {
                    "type": "string"
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "greenhouse",
                        "barn",
                        "fence",
                        "water_system",
                        "other"
                    ]
                }
            }
        },
        "infrastructure.projectResponse": {
            "type": "object",
            "properties": {
                "budget": {
                    "type": "number"
                },
                "created_at": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "property_id": {
                    "type": "string"
                },
                "start_date": {
                    "type": "string",
                    "format": "date"
                },
                "status": {
                    "type": "string"
                },
                "target_date": {
                    "type": "string",
                    "format": "date"
                },
                "type": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                },
                "user_id": {
                    "type": "string"
                }
            }
        },
        "infrastructure.updateProjectRequest": {
            "type": "object",
            "properties": {
                "budget": {
                    "type": "number"
                },
                "description": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "property_id": {
                    "type": "string"
                },
                "start_date": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "target_date": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                }
            }
        },
        "inventory.createItemRequest": {
            "type": "object",
            "properties": {
                "category": {
                    "type": "string"
                },
                "current_stock": {
                    "type": "number"
                },
                "name": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "property_id": {
                    "type": "string"
                },
                "reorder_point": {
                    "type": "number"
                },
                "supplier": {
                    "type": "string"
                },
                "unit": {
                    "type": "string"
                }
            }
        },
        "inventory.itemResponse": {
            "type": "object",
            "properties": {
                "category": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "current_stock": {
                    "type": "number"
                },
                "id": {
                    "type": "string"
                },
                "low_stock": {
                    "type": "boolean"
                },
                "name": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "property_id": {
                    "type": "string"
                },
                "reorder_point": {
                    "type": "number"
                },
                "supplier": {
                    "type": "string"
                },
                "unit": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                },
                "user_id": {
                    "type": "string"
                }
            }
        },
        "inventory.updateItemRequest": {
            "type": "object",
            "properties": {
                "category": {
                    "type": "string"
                },
                "current_stock": {
                    "type": "number"
                },
                "name": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "property_id": {
                    "type": "string"
                },
                "reorder_point": {
                    "type": "number"
                },
                "supplier": {
                    "type": "string"
                },
                "unit": {
                    "type": "string"
                }
            }
        },
        "planning.Overview": {
            "type": "object",
            "properties": {
                "current_season": {
                    "type": "string"
                },
                "incomplete_tasks": {
                    "type": "integer"
                },
                "projects": {
                    "type": "integer"
                },
                "properties": {
                    "type": "integer"
                }
            }
        },
        "profiles.profileRequest": {
            "type": "object",
            "properties": {
                "first_name": {
                    "type": "string"
                },
                "last_name": {
                    "type": "string"
                }
            }
        },
        "profiles.profileResponse": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "first_name": {
                    "type": "string"
                },
                "last_name": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                },
                "user_id": {
                    "type": "string"
                }
            }
        },
        "properties.createPropertyRequest": {
            "type": "object",
            "properties": {
                "climate_zone": {
                    "type": "string"
                },
                "location": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "size_acres": {
                    "type": "number"
                },
                "soil_type": {
                    "type": "string"
                }
            }
        },
        "properties.propertyResponse": {
            "type": "object",
            "properties": {
                "climate_zone": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "location": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "size_acres": {
                    "type": "number"
                },
                "soil_type": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                },
                "user_id": {
                    "type": "string"
                }
            }
        },
        "properties.updatePropertyRequest": {
            "type": "object",
            "properties": {
                "climate_zone": {
                    "type": "string"
                },
                "location": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "size_acres": {
                    "type": "number"
                },
                "soil_type": {
                    "type": "string"
                }
            }
        },
        "tasks.createTaskRequest": {
            "type": "object",
            "properties": {
                "description": {
                    "type": "string"
                },
                "due_date": {
                    "type": "string"
                },
                "property_id": {
                    "type": "string"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "pending",
                        "in_progress",
                        "completed"
                    ]
                },
                "title": {
                    "type": "string"
                }
            }
        },
        "tasks.taskResponse": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "due_date": {
                    "type": "string",
                    "format": "date"
                },
                "id": {
                    "type": "string"
                },
                "property_id": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                },
                "user_id": {
                    "type": "string"
                }
            }
        },
        "tasks.updateTaskRequest": {
            "type": "object",
            "properties": {
                "description": {
                    "type": "string"
                },
                "due_date": {
                    "type": "string"
                },
                "property_id": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                }
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
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Homestead Architect API",
	Description:      "API de gestión del homestead: propiedades, animales y reproducción.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
