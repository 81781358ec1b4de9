package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClaims struct {
	subject string
}

func (c *fakeClaims) GetSubject() (string, error) { return c.subject, nil }

type fakeValidator struct {
	subject string
	err     error
}

func (v *fakeValidator) ValidateToken(tokenString string) (SubjectGetter, error) {
	if v.err != nil {
		return nil, v.err
	}
	return &fakeClaims{subject: v.subject}, nil
}

func protectedHandler(t *testing.T, wantSubject string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, err := GetSubject(r)
		require.NoError(t, err)
		assert.Equal(t, wantSubject, subject)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddlewareAcceptsBearerToken(t *testing.T) {
	mw := AuthMiddleware(&fakeValidator{subject: "api-client"})
	handler := mw(protectedHandler(t, "api-client"))

	req := httptest.NewRequest("GET", "/api/knowledge-base/summary", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddlewareCaseInsensitiveBearer(t *testing.T) {
	mw := AuthMiddleware(&fakeValidator{subject: "api-client"})
	handler := mw(protectedHandler(t, "api-client"))

	req := httptest.NewRequest("GET", "/api/analyses", nil)
	req.Header.Set("Authorization", "bearer some-token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	mw := AuthMiddleware(&fakeValidator{subject: "api-client"})
	handler := mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/analyses", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareRejectsMalformedHeader(t *testing.T) {
	mw := AuthMiddleware(&fakeValidator{subject: "api-client"})
	handler := mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	for _, header := range []string{"some-token", "Basic abc", "Bearer"} {
		req := httptest.NewRequest("GET", "/api/analyses", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestAuthMiddlewareRejectsInvalidToken(t *testing.T) {
	mw := AuthMiddleware(&fakeValidator{err: errors.New("token expired")})
	handler := mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest("GET", "/api/analyses", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetSubjectWithoutAuth(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/analyses", nil)
	_, err := GetSubject(req)
	assert.Error(t, err)
}
