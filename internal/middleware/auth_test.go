package middleware

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftship/parcel-backend/internal/services"
)

type stubVerifier struct {
	claims *services.Claims
	err    error
}

func (v *stubVerifier) Verify(ctx context.Context, token string) (*services.Claims, error) {
	return v.claims, v.err
}

func newAuthRouter(verifier services.TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(verifier), func(c *gin.Context) {
		c.JSON(200, gin.H{"email": c.GetString(ContextEmailKey)})
	})
	return r
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	r := newAuthRouter(&stubVerifier{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, 401, w.Code)
	assert.Contains(t, w.Body.String(), "unauthorized access")
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	r := newAuthRouter(&stubVerifier{})

	for _, header := range []string{"Bearer", "token-without-scheme", "Basic abc123"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", header)
		r.ServeHTTP(w, req)

		assert.Equal(t, 401, w.Code, "header %q", header)
	}
}

func TestRequireAuth_RejectedToken(t *testing.T) {
	r := newAuthRouter(&stubVerifier{err: errors.New("token expired")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	r.ServeHTTP(w, req)

	require.Equal(t, 403, w.Code)
	assert.Contains(t, w.Body.String(), "forbidden access")
}

func TestRequireAuth_ValidToken(t *testing.T) {
	r := newAuthRouter(&stubVerifier{claims: &services.Claims{Subject: "uid-1", Email: "a@x.com"}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), `"email":"a@x.com"`)
}
