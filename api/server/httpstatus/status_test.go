package httpstatus // import "github.com/staticweb/staticd/api/server/httpstatus"

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"gotest.tools/v3/assert"

	"github.com/staticweb/staticd/errdefs"
)

func TestFromError(t *testing.T) {
	base := errors.New("boom")
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"not found", errdefs.NotFound(base), http.StatusNotFound},
		{"invalid parameter", errdefs.InvalidParameter(base), http.StatusInternalServerError},
		{"system", errdefs.System(base), http.StatusInternalServerError},
		{"untagged", base, http.StatusInternalServerError},
		{"wrapped not found", errors.Wrap(errdefs.NotFound(base), "opening"), http.StatusNotFound},
		{"nil", nil, http.StatusInternalServerError},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, FromError(tc.err), tc.expected)
		})
	}
}
