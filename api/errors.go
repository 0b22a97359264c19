package api

import (
	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	errorInternalServer     = errorResponse{1000, "internal server error"}
	errorInvalidParameters  = errorResponse{1001, "invalid parameters"}
	errorUnknownMetric      = errorResponse{1002, "unknown metric"}
	errorInvalidYearRange   = errorResponse{1003, "invalid year range"}
	errorCountryListMissing = errorResponse{1004, "no comparison countries given"}
)

// abortWithEncoding writes a coded error body and records the underlying
// errors on the gin context for the logging middleware.
func abortWithEncoding(c *gin.Context, code int, resp errorResponse, errs ...error) {
	for _, err := range errs {
		c.Error(err)
	}
	c.AbortWithStatusJSON(code, gin.H{"error": resp})
}
