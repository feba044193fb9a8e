package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-tweetlab/errs"
)

const (
	requestIDKey    = "requestId"
	requestIDHeader = "X-Request-ID"
)

// errBadRequest marks malformed request bodies and query parameters.
var errBadRequest = errors.New("bad request")

// RequestID tags every request with a uuid, reusing the caller's
// X-Request-ID when it sends one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func requestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// statusFor maps the error kinds to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errs.IsConfiguration(err), errs.IsParse(err):
		return http.StatusBadRequest
	case errs.IsExternal(err):
		return http.StatusBadGateway
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	zap.S().Warnf("Request %s failed with %d: %v", requestID(c), status, err)
	c.JSON(status, gin.H{"error": err.Error(), "requestId": requestID(c)})
}
