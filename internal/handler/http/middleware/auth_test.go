package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithToken(t *testing.T, ja *jwtauth.JWTAuth, claims map[string]interface{}) *http.Request {
	t.Helper()
	token, _, err := ja.Encode(claims)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return req.WithContext(jwtauth.NewContext(req.Context(), token, nil))
}

func passThrough() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthRequired(t *testing.T) {
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	handler := AuthRequired(ja)(passThrough())

	t.Run("accepts a company-scoped access token", func(t *testing.T) {
		req := requestWithToken(t, ja, map[string]interface{}{
			"user_id":    "user-1",
			"company_id": "company-1",
			"type":       "access",
		})
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("rejects a refresh token on an API route", func(t *testing.T) {
		req := requestWithToken(t, ja, map[string]interface{}{
			"user_id":    "user-1",
			"company_id": "company-1",
			"type":       "refresh",
		})
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects an access token without company scope", func(t *testing.T) {
		req := requestWithToken(t, ja, map[string]interface{}{
			"user_id": "user-1",
			"type":    "access",
		})
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAdminOnly(t *testing.T) {
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	handler := AdminOnly(passThrough())

	t.Run("forbids a non-admin token", func(t *testing.T) {
		req := requestWithToken(t, ja, map[string]interface{}{"is_admin": false})
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("passes an admin token", func(t *testing.T) {
		req := requestWithToken(t, ja, map[string]interface{}{"is_admin": true})
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
