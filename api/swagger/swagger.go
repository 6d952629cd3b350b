package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "PD Tracker Admin API",
        "description": "Staff roster, professional-development records and certificates",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {
            "name": "PDRecords",
            "description": "Professional-development records"
        },
        {
            "name": "Certificates",
            "description": "Printable PD certificates"
        },
        {
            "name": "Staff",
            "description": "Staff roster"
        },
        {
            "name": "Lookups",
            "description": "Reference lists"
        },
        {
            "name": "Health",
            "description": "Probes"
        }
    ],
    "paths": {
        "/health": {
            "get": {
                "tags": [
                    "Health"
                ],
                "summary": "Liveness check",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/ready": {
            "get": {
                "tags": [
                    "Health"
                ],
                "summary": "Readiness check",
                "responses": {
                    "200": {
                        "description": "Ready"
                    },
                    "503": {
                        "description": "Database unavailable"
                    }
                }
            }
        },
        "/api/health": {
            "get": {
                "tags": [
                    "Health"
                ],
                "summary": "Database round trip",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "500": {
                        "description": "Database unavailable"
                    }
                }
            }
        },
        "/api/lookups": {
            "get": {
                "tags": [
                    "Lookups"
                ],
                "summary": "Areas, sectors and sites",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/api/venues": {
            "get": {
                "tags": [
                    "Lookups"
                ],
                "summary": "Known venues",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/api/pdrecords": {
            "get": {
                "tags": [
                    "PDRecords"
                ],
                "summary": "List PD records",
                "parameters": [
                    {
                        "name": "from",
                        "in": "query",
                        "type": "string",
                        "description": "Start date lower bound (YYYY-MM-DD), alias dateFrom"
                    },
                    {
                        "name": "to",
                        "in": "query",
                        "type": "string",
                        "description": "Start date upper bound (YYYY-MM-DD), alias dateTo"
                    },
                    {
                        "name": "staffId",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "areaId",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "venueId",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "accrual",
                        "in": "query",
                        "type": "string",
                        "description": "1/true or 0/false"
                    },
                    {
                        "name": "q",
                        "in": "query",
                        "type": "string",
                        "description": "Title contains"
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "pageSize",
                        "in": "query",
                        "type": "integer",
                        "description": "1-200, default 50"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/PDRecordPage"
                        }
                    },
                    "400": {
                        "description": "Invalid filter",
                        "schema": {
                            "$ref": "#/definitions/Error"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "PDRecords"
                ],
                "summary": "Record one activity for several staff members",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "X-User",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CreateRecordsRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/Error"
                        }
                    }
                }
            }
        },
        "/api/pdrecords/{id}": {
            "patch": {
                "tags": [
                    "PDRecords"
                ],
                "summary": "Partially update a PD record",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer",
                        "description": "PDRecordID"
                    },
                    {
                        "name": "X-User",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/PatchRecordRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/OK"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/Error"
                        }
                    },
                    "404": {
                        "description": "Record not found",
                        "schema": {
                            "$ref": "#/definitions/Error"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "PDRecords"
                ],
                "summary": "Soft-delete a PD record",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer",
                        "description": "PDRecordID"
                    },
                    {
                        "name": "X-User",
                        "in": "header",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/OK"
                        }
                    },
                    "404": {
                        "description": "Record not found",
                        "schema": {
                            "$ref": "#/definitions/Error"
                        }
                    }
                }
            }
        },
        "/api/pdrecords/certificates.pdf": {
            "get": {
                "tags": [
                    "Certificates"
                ],
                "summary": "Render PD certificates as PDF",
                "produces": [
                    "application/pdf"
                ],
                "parameters": [
                    {
                        "name": "from",
                        "in": "query",
                        "type": "string",
                        "description": "Start date lower bound (YYYY-MM-DD), alias dateFrom"
                    },
                    {
                        "name": "to",
                        "in": "query",
                        "type": "string",
                        "description": "Start date upper bound (YYYY-MM-DD), alias dateTo"
                    },
                    {
                        "name": "staffId",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "areaId",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "venueId",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "accrual",
                        "in": "query",
                        "type": "string",
                        "description": "1/true or 0/false"
                    },
                    {
                        "name": "q",
                        "in": "query",
                        "type": "string",
                        "description": "Title contains"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "PDF document"
                    },
                    "404": {
                        "description": "No records found for the selected filters.",
                        "schema": {
                            "$ref": "#/definitions/Error"
                        }
                    }
                }
            }
        },
        "/api/pdrecords/certificates.html": {
            "get": {
                "tags": [
                    "Certificates"
                ],
                "summary": "Preview PD certificates as HTML",
                "produces": [
                    "text/html"
                ],
                "parameters": [
                    {
                        "name": "from",
                        "in": "query",
                        "type": "string",
                        "description": "Start date lower bound (YYYY-MM-DD), alias dateFrom"
                    },
                    {
                        "name": "to",
                        "in": "query",
                        "type": "string",
                        "description": "Start date upper bound (YYYY-MM-DD), alias dateTo"
                    },
                    {
                        "name": "staffId",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "areaId",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "venueId",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "accrual",
                        "in": "query",
                        "type": "string",
                        "description": "1/true or 0/false"
                    },
                    {
                        "name": "q",
                        "in": "query",
                        "type": "string",
                        "description": "Title contains"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "HTML document"
                    },
                    "404": {
                        "description": "No records found for the selected filters.",
                        "schema": {
                            "$ref": "#/definitions/Error"
                        }
                    }
                }
            }
        },
        "/api/pdrecords/export.csv": {
            "get": {
                "tags": [
                    "PDRecords"
                ],
                "summary": "Export filtered PD records as CSV",
                "produces": [
                    "text/csv"
                ],
                "parameters": [
                    {
                        "name": "from",
                        "in": "query",
                        "type": "string",
                        "description": "Start date lower bound (YYYY-MM-DD), alias dateFrom"
                    },
                    {
                        "name": "to",
                        "in": "query",
                        "type": "string",
                        "description": "Start date upper bound (YYYY-MM-DD), alias dateTo"
                    },
                    {
                        "name": "staffId",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "areaId",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "venueId",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "accrual",
                        "in": "query",
                        "type": "string",
                        "description": "1/true or 0/false"
                    },
                    {
                        "name": "q",
                        "in": "query",
                        "type": "string",
                        "description": "Title contains"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "File"
                    }
                }
            }
        },
        "/api/pdrecords/export.xlsx": {
            "get": {
                "tags": [
                    "PDRecords"
                ],
                "summary": "Export filtered PD records as XLSX",
                "produces": [
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "parameters": [
                    {
                        "name": "from",
                        "in": "query",
                        "type": "string",
                        "description": "Start date lower bound (YYYY-MM-DD), alias dateFrom"
                    },
                    {
                        "name": "to",
                        "in": "query",
                        "type": "string",
                        "description": "Start date upper bound (YYYY-MM-DD), alias dateTo"
                    },
                    {
                        "name": "staffId",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "areaId",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "venueId",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "accrual",
                        "in": "query",
                        "type": "string",
                        "description": "1/true or 0/false"
                    },
                    {
                        "name": "q",
                        "in": "query",
                        "type": "string",
                        "description": "Title contains"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "File"
                    }
                }
            }
        },
        "/api/pdrecords/export.pdf": {
            "get": {
                "tags": [
                    "PDRecords"
                ],
                "summary": "Export filtered PD records as PDF",
                "produces": [
                    "application/pdf"
                ],
                "parameters": [
                    {
                        "name": "from",
                        "in": "query",
                        "type": "string",
                        "description": "Start date lower bound (YYYY-MM-DD), alias dateFrom"
                    },
                    {
                        "name": "to",
                        "in": "query",
                        "type": "string",
                        "description": "Start date upper bound (YYYY-MM-DD), alias dateTo"
                    },
                    {
                        "name": "staffId",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "areaId",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "venueId",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "accrual",
                        "in": "query",
                        "type": "string",
                        "description": "1/true or 0/false"
                    },
                    {
                        "name": "q",
                        "in": "query",
                        "type": "string",
                        "description": "Title contains"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "File"
                    }
                }
            }
        },
        "/api/staff": {
            "get": {
                "tags": [
                    "Staff"
                ],
                "summary": "List staff",
                "parameters": [
                    {
                        "name": "includeArchived",
                        "in": "query",
                        "type": "boolean"
                    },
                    {
                        "name": "search",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "name": "campus",
                        "in": "query",
                        "type": "string",
                        "description": "Comma separated"
                    },
                    {
                        "name": "position",
                        "in": "query",
                        "type": "string",
                        "description": "Comma separated"
                    },
                    {
                        "name": "sector",
                        "in": "query",
                        "type": "string",
                        "description": "Comma separated"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            },
            "post": {
                "tags": [
                    "Staff"
                ],
                "summary": "Add a staff member",
                "parameters": [
                    {
                        "name": "X-Actor",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/StaffRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/Error"
                        }
                    },
                    "409": {
                        "description": "Name already in use",
                        "schema": {
                            "$ref": "#/definitions/Error"
                        }
                    }
                }
            }
        },
        "/api/staff/{id}": {
            "put": {
                "tags": [
                    "Staff"
                ],
                "summary": "Edit a staff member",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer",
                        "description": "StaffID"
                    },
                    {
                        "name": "X-Actor",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/StaffRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/Error"
                        }
                    },
                    "404": {
                        "description": "Staff member not found",
                        "schema": {
                            "$ref": "#/definitions/Error"
                        }
                    },
                    "409": {
                        "description": "Name already in use",
                        "schema": {
                            "$ref": "#/definitions/Error"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Staff"
                ],
                "summary": "Archive a staff member",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer",
                        "description": "StaffID"
                    },
                    {
                        "name": "X-Actor",
                        "in": "header",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Staff member not found",
                        "schema": {
                            "$ref": "#/definitions/Error"
                        }
                    }
                }
            }
        },
        "/api/staff/{id}/restore": {
            "patch": {
                "tags": [
                    "Staff"
                ],
                "summary": "Restore an archived staff member",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer",
                        "description": "StaffID"
                    },
                    {
                        "name": "X-Actor",
                        "in": "header",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/OK"
                        }
                    },
                    "404": {
                        "description": "Archived staff member not found",
                        "schema": {
                            "$ref": "#/definitions/Error"
                        }
                    },
                    "409": {
                        "description": "Name already in use",
                        "schema": {
                            "$ref": "#/definitions/Error"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "Error": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                },
                "code": {
                    "type": "string"
                }
            }
        },
        "OK": {
            "type": "object",
            "properties": {
                "ok": {
                    "type": "boolean"
                }
            }
        },
        "PDRecord": {
            "type": "object",
            "properties": {
                "PDRecordID": {
                    "type": "integer"
                },
                "MeetingId": {
                    "type": "string"
                },
                "StaffID": {
                    "type": "integer",
                    "x-nullable": true
                },
                "StaffNameSnapshot": {
                    "type": "string"
                },
                "StaffNameCurrent": {
                    "type": "string"
                },
                "StartDate": {
                    "type": "string"
                },
                "EndDate": {
                    "type": "string"
                },
                "AreaID": {
                    "type": "integer",
                    "x-nullable": true
                },
                "AreaName": {
                    "type": "string"
                },
                "Title": {
                    "type": "string"
                },
                "VenueID": {
                    "type": "integer",
                    "x-nullable": true
                },
                "VenueOther": {
                    "type": "string"
                },
                "VenueDisplay": {
                    "type": "string"
                },
                "Hours": {
                    "type": "number"
                },
                "CRT": {
                    "type": "number"
                },
                "Enrol": {
                    "type": "number"
                },
                "Other": {
                    "type": "number"
                },
                "Total": {
                    "type": "number"
                },
                "IsAccrual": {
                    "type": "boolean"
                },
                "AccrualHours": {
                    "type": "number"
                },
                "ModifiedAt": {
                    "type": "string"
                },
                "ModifiedBy": {
                    "type": "string"
                }
            }
        },
        "PDRecordPage": {
            "type": "object",
            "properties": {
                "page": {
                    "type": "integer"
                },
                "pageSize": {
                    "type": "integer"
                },
                "total": {
                    "type": "integer"
                },
                "rows": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/PDRecord"
                    }
                }
            }
        },
        "PatchRecordRequest": {
            "type": "object",
            "description": "Omitted keys are untouched; null clears where allowed",
            "properties": {
                "StartDate": {
                    "type": "string"
                },
                "EndDate": {
                    "type": "string"
                },
                "AreaID": {
                    "type": "integer"
                },
                "Title": {
                    "type": "string"
                },
                "VenueID": {
                    "type": "integer",
                    "x-nullable": true
                },
                "VenueOther": {
                    "type": "string"
                },
                "Hours": {
                    "type": "number"
                },
                "CRT": {
                    "type": "number"
                },
                "Enrol": {
                    "type": "number"
                },
                "Other": {
                    "type": "number"
                },
                "IsAccrual": {
                    "type": "boolean"
                },
                "AccrualHours": {
                    "type": "number"
                }
            }
        },
        "CreateRecordsRequest": {
            "type": "object",
            "required": [
                "startDate",
                "areaId",
                "title",
                "hours",
                "staffIds"
            ],
            "properties": {
                "meetingId": {
                    "type": "string"
                },
                "startDate": {
                    "type": "string"
                },
                "endDate": {
                    "type": "string"
                },
                "areaId": {
                    "type": "integer"
                },
                "title": {
                    "type": "string"
                },
                "venueId": {
                    "type": "integer"
                },
                "venueOther": {
                    "type": "string"
                },
                "hours": {
                    "type": "number"
                },
                "crt": {
                    "type": "number"
                },
                "enrol": {
                    "type": "number"
                },
                "other": {
                    "type": "number"
                },
                "isAccrual": {
                    "type": "boolean"
                },
                "accrualHours": {
                    "type": "number"
                },
                "staffIds": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                }
            }
        },
        "StaffRequest": {
            "type": "object",
            "required": [
                "name"
            ],
            "properties": {
                "name": {
                    "type": "string"
                },
                "campus1": {
                    "type": "string"
                },
                "campus2": {
                    "type": "string"
                },
                "position": {
                    "type": "string"
                },
                "sector": {
                    "type": "string"
                },
                "tonumber": {
                    "type": "integer"
                }
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
