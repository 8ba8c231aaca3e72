package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zechsoft/new-trust-sub003/internal/assistant"
	lr "github.com/zechsoft/new-trust-sub003/internal/listresource"
	"github.com/zechsoft/new-trust-sub003/internal/upload"
	"github.com/zechsoft/new-trust-sub003/internal/upstream"
)

// statusOf maps domain errors onto HTTP status codes.
func statusOf(err error) int {
	var (
		ve     *lr.ValidationError
		ue     *upload.Error
		apiErr *upstream.APIError
	)
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.As(err, &ue):
		return ue.Code
	case errors.Is(err, lr.ErrMissingID), errors.Is(err, lr.ErrInvalidStatus), errors.Is(err, assistant.ErrEmptyMessage):
		return http.StatusBadRequest
	case errors.Is(err, lr.ErrNotFound), errors.Is(err, assistant.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, lr.ErrNotConfirmed):
		return http.StatusPreconditionRequired
	case errors.Is(err, lr.ErrReadOnly):
		return http.StatusMethodNotAllowed
	case errors.Is(err, lr.ErrStale), errors.Is(err, lr.ErrClosed), errors.Is(err, lr.ErrDraftClosed):
		return http.StatusConflict
	case errors.As(err, &apiErr):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusOf(err)
	body := gin.H{"error": err.Error()}

	var ve *lr.ValidationError
	if errors.As(err, &ve) {
		body["field"] = ve.Field
	}
	var ue *upload.Error
	if errors.As(err, &ue) {
		body["error"] = ue.Message
	}
	if status == http.StatusInternalServerError {
		body["error"] = "Internal server error"
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, body)
}
