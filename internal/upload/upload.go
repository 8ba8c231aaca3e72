package upload

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/zechsoft/new-trust-sub003/internal/upstream"
)

type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

const (
	MaxImageSize = 5 << 20
	MaxVideoSize = 50 << 20
)

// Limit returns the size ceiling in bytes for kind.
func (k Kind) Limit() int64 {
	if k == KindVideo {
		return MaxVideoSize
	}
	return MaxImageSize
}

func (k Kind) prefix() string {
	return string(k) + "/"
}

// Error is a failed upload with a message fit for an admin toast.
type Error struct {
	Code    int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

const (
	MsgTooLarge     = "File is too large"
	MsgUnsupported  = "Unsupported file type"
	MsgInvalid      = "Invalid upload request"
	MsgNotAllowed   = "You are not allowed to upload files"
	MsgTimedOut     = "Upload timed out, please try again"
	MsgGenericError = "Upload failed, please try again"
	MsgEmpty        = "No file selected"
)

// Validate checks data before it is sent anywhere. The detected MIME type
// wins over the declared one unless detection only finds a generic type.
// It returns the MIME type to send along with the file.
func Validate(kind Kind, data []byte, declared string) (string, error) {
	if len(data) == 0 {
		return "", &Error{Code: http.StatusBadRequest, Message: MsgEmpty}
	}
	if int64(len(data)) > kind.Limit() {
		return "", &Error{
			Code:    http.StatusRequestEntityTooLarge,
			Message: fmt.Sprintf("%s (max %d MB)", MsgTooLarge, kind.Limit()>>20),
		}
	}

	mimeType := mimetype.Detect(data).String()
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = mimeType[:i]
	}
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = strings.ToLower(strings.TrimSpace(declared))
	}
	if !strings.HasPrefix(mimeType, kind.prefix()) {
		return "", &Error{
			Code:    http.StatusUnsupportedMediaType,
			Message: fmt.Sprintf("%s: expected %s*, got %q", MsgUnsupported, kind.prefix(), mimeType),
		}
	}
	return mimeType, nil
}

// FromError maps any upload failure to an *Error with a user-facing message.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var ue *Error
	if errors.As(err, &ue) {
		return ue
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Code: http.StatusGatewayTimeout, Message: MsgTimedOut, Err: err}
	}
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		return &Error{Code: apiErr.StatusCode, Message: messageForStatus(apiErr.StatusCode), Err: err}
	}
	return &Error{Code: http.StatusBadGateway, Message: MsgGenericError, Err: err}
}

func messageForStatus(code int) string {
	switch code {
	case http.StatusRequestEntityTooLarge:
		return MsgTooLarge
	case http.StatusUnsupportedMediaType:
		return MsgUnsupported
	case http.StatusBadRequest:
		return MsgInvalid
	case http.StatusUnauthorized, http.StatusForbidden:
		return MsgNotAllowed
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return MsgTimedOut
	default:
		return MsgGenericError
	}
}
