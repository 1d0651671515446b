package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"orchids/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "handlers-test-secret-0123456789"

type testAPI struct {
	t        *testing.T
	router   *gin.Engine
	verifier *auth.HMACVerifier
}

func newTestAPI(t *testing.T, store Store) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	verifier, err := auth.NewHMACVerifier(testSecret, "")
	require.NoError(t, err)

	r := gin.New()
	Register(r, store, verifier, zap.NewNop())

	return &testAPI{t: t, router: r, verifier: verifier}
}

func (a *testAPI) token(userID string) string {
	a.t.Helper()

	token, err := a.verifier.Generate(userID, time.Minute)
	require.NoError(a.t, err)
	return token
}

// do sends a request as userID; an empty userID sends no Authorization header.
// body may be nil, a string of raw JSON, or a value to marshal.
func (a *testAPI) do(method, path, userID string, body any) *httptest.ResponseRecorder {
	a.t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		payload, err := json.Marshal(b)
		require.NoError(a.t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+a.token(userID))
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// doWithHeader sends a bodyless request with a raw Authorization header.
func (a *testAPI) doWithHeader(method, path, authorization string) *httptest.ResponseRecorder {
	a.t.Helper()

	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", authorization)

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[map[string]string](t, w)["error"]
}
