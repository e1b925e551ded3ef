package middleware // import "github.com/staticweb/staticd/api/server/middleware"

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"gotest.tools/v3/assert"
)

func TestDebugRequestMiddlewareDelegates(t *testing.T) {
	called := false
	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, vars map[string]string) error {
		called = true
		return nil
	}

	wrapped := DebugRequestMiddleware{}.WrapHandler(handler)
	req := httptest.NewRequest(http.MethodGet, "/index.html", nil)
	err := wrapped(context.Background(), httptest.NewRecorder(), req, nil)
	assert.NilError(t, err)
	assert.Check(t, called)
}
