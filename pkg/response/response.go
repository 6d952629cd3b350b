package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/09608249-WELS/pdtracker-admin/pkg/errors"
)

// ErrorBody is the error contract shared by every endpoint.
type ErrorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// OK is the body of mutation endpoints that return no data.
type OK struct {
	OK bool `json:"ok"`
}

// JSON sends a success payload with caching disabled.
func JSON(c *gin.Context, status int, payload interface{}) {
	noStore(c)
	c.JSON(status, payload)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusCreated, payload)
}

// Success responds with {"ok":true}.
func Success(c *gin.Context) {
	JSON(c, http.StatusOK, OK{OK: true})
}

// Error converts err to {"error": message}. Server-side failures are attached
// to the gin context for the request logger; callers only see the message.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	if appErr.Status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	noStore(c)
	c.AbortWithStatusJSON(appErr.Status, ErrorBody{Error: appErr.Message, Code: appErr.Code})
}

// Binary streams a generated document.
func Binary(c *gin.Context, contentType, disposition string, data []byte) {
	noStore(c)
	if disposition != "" {
		c.Header("Content-Disposition", disposition)
	}
	c.Data(http.StatusOK, contentType, data)
}

func noStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
}
