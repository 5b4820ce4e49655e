package services

import (
	"errors"
	"fmt"

	"github.com/Acontplus-S-A-S/mikunaWeb/internal/client/client"
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/common"
)

// User-facing failure messages.
const (
	MsgTimeout         = "request timed out"
	MsgConnection      = "server connection error"
	MsgMalformed       = "malformed server response"
	MsgNoData          = "no categories found"
	MsgUnrecognized    = "unrecognized response code"
	MsgRetrieved       = "categories retrieved"
	MsgInvalidRequest  = "invalid page request"
	msgHTTPStatusFront = "server responded with status"
)

// ClassifyError turns an envelope-client failure into the message carried
// by a failed PageResult. Callers above the Page Fetcher only ever see this
// text, never the error itself.
func ClassifyError(err error) string {
	var statusErr *client.HTTPStatusError

	switch {
	case err == nil:
		return ""
	case errors.Is(err, client.ErrTimeout):
		return MsgTimeout
	case errors.As(err, &statusErr):
		return fmt.Sprintf("%s %d", msgHTTPStatusFront, statusErr.StatusCode)
	case errors.Is(err, client.ErrMalformedResponse):
		return MsgMalformed
	case errors.Is(err, client.ErrNoData):
		return MsgNoData
	case errors.Is(err, common.ErrorInvalidPage), errors.Is(err, common.ErrorInvalidPerPage):
		return MsgInvalidRequest
	default:
		return MsgConnection
	}
}
