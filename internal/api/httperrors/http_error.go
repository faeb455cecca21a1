package httperrors

import (
	"fmt"
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github/chapool/mobile-wallet/internal/util"
)

// Public error types returned in the "type" field of an error response.
const (
	PublicHTTPErrorTypeGeneric            = "generic"
	PublicHTTPErrorTypeSESSIONNOTFOUND    = "SESSION_NOT_FOUND"
	PublicHTTPErrorTypeSUBMITNOTALLOWED   = "SUBMIT_NOT_ALLOWED"
	PublicHTTPErrorTypeFLOWCLOSED         = "FLOW_CLOSED"
	PublicHTTPErrorTypeINVALIDBODY        = "INVALID_BODY"
	PublicHTTPErrorTypeUNKNOWNNETWORK     = "UNKNOWN_NETWORK"
	PublicHTTPErrorTypeUNSUPPORTEDNETWORK = "UNSUPPORTED_NETWORK"
	PublicHTTPErrorTypeBACKENDUNAVAILABLE = "BACKEND_UNAVAILABLE"
)

// HTTPError is the JSON body of every error response.
type HTTPError struct {
	Code     *int64  `json:"status"`
	Type     *string `json:"type"`
	Title    *string `json:"title"`
	Detail   string  `json:"detail,omitempty"`
	Internal error   `json:"-"`
}

func NewHTTPError(code int, errorType string, title string) *HTTPError {
	return &HTTPError{
		Code:  swag.Int64(int64(code)),
		Type:  swag.String(errorType),
		Title: swag.String(title),
	}
}

func NewHTTPErrorWithDetail(code int, errorType string, title string, detail string) *HTTPError {
	e := NewHTTPError(code, errorType, title)
	e.Detail = detail
	return e
}

func (e *HTTPError) Error() string {
	var b string
	if e.Detail != "" {
		b = fmt.Sprintf("HTTPError %d (%s): %s - %s", swag.Int64Value(e.Code), swag.StringValue(e.Type), swag.StringValue(e.Title), e.Detail)
	} else {
		b = fmt.Sprintf("HTTPError %d (%s): %s", swag.Int64Value(e.Code), swag.StringValue(e.Type), swag.StringValue(e.Title))
	}
	if e.Internal != nil {
		b = fmt.Sprintf("%s, %v", b, e.Internal)
	}
	return b
}

// HTTPErrorHandler renders HTTPError, echo.HTTPError and any other error as JSON.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	body := NewHTTPError(code, PublicHTTPErrorTypeGeneric, http.StatusText(code))

	var httpError *HTTPError
	var echoError *echo.HTTPError
	switch {
	case errors.As(err, &httpError):
		code = int(swag.Int64Value(httpError.Code))
		body = httpError
	case errors.As(err, &echoError):
		code = echoError.Code
		body = NewHTTPError(code, PublicHTTPErrorTypeGeneric, http.StatusText(code))
		if msg, ok := echoError.Message.(string); ok && msg != http.StatusText(code) {
			body.Detail = msg
		}
	}

	log := util.LogFromContext(c.Request().Context())
	if code >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", code).Msg("Request failed")
	} else {
		log.Debug().Err(err).Int("status", code).Msg("Request rejected")
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, body)
	}
	if err != nil {
		log.Warn().Err(err).Msg("Failed to write error response")
	}
}
