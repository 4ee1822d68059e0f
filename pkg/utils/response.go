package utils

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the only shape a failed request ever receives.
type ErrorBody struct {
	Error string `json:"error"`
}

func ErrorResponse(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorBody{Error: message})
}

// RawJSONResponse writes an upstream body through untouched.
func RawJSONResponse(c *gin.Context, code int, body []byte) {
	c.Data(code, "application/json; charset=utf-8", body)
}

func SuccessResponse(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}
