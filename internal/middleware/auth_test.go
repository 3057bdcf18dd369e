package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otychat/server/internal/auth"
)

func TestRequireAdmin(t *testing.T) {
	a, err := auth.New(&auth.Config{Secret: "s", AdminCode: "c"})
	require.NoError(t, err)
	token, err := a.GenerateAdminToken("console")
	require.NoError(t, err)

	var seen *auth.AdminClaims
	h := RequireAdmin(a)(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetAdminClaims(r)
		w.WriteHeader(http.StatusNoContent)
	})

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"malformed", "Token " + token, http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
		{"valid", "Bearer " + token, http.StatusNoContent},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/admin/spawn", nil)
			if c.header != "" {
				req.Header.Set("Authorization", c.header)
			}
			rec := httptest.NewRecorder()
			h(rec, req)
			assert.Equal(t, c.status, rec.Code)
		})
	}

	require.NotNil(t, seen)
	assert.Equal(t, "console", seen.Subject)
}
