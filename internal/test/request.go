package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github/chapool/mobile-wallet/internal/api"
)

// PerformRequest serves one request through the server's echo instance.
// A non-nil body is sent as JSON.
func PerformRequest(t *testing.T, s *api.Server, method string, path string, body any, headers http.Header) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		for _, vv := range v {
			req.Header.Add(k, vv)
		}
	}

	res := httptest.NewRecorder()
	s.Echo.ServeHTTP(res, req)

	return res
}

// ParseResponse decodes the JSON body of res into v.
func ParseResponse(t *testing.T, res *httptest.ResponseRecorder, v any) {
	t.Helper()

	if err := json.NewDecoder(res.Body).Decode(v); err != nil {
		t.Fatalf("failed to decode response %q: %v", res.Body.String(), err)
	}
}
