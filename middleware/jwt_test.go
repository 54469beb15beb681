package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Signs a token directly with the given key, bypassing GenerateToken.
func signToken(t *testing.T, key string) string {
	t.Helper()
	claims := Claims{
		UserID: "11111111-1111-1111-1111-111111111111",
		Name:   "Maija Mallikas",
		Email:  "maija@example.com",
		Role:   "surveyor",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}
	return signed
}

func callMiddleware(token string) (*httptest.ResponseRecorder, *Claims) {
	var got *Claims
	handler := JWTMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetClaims(r)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/surveys", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, got
}

// The signing key must be read from the environment at call time, not
// captured at package init: a secret loaded from .env after startup has to
// verify tokens signed with the same value.
func TestJWTMiddlewareUsesSecretSetAfterInit(t *testing.T) {
	t.Setenv("JWT_SECRET", "late-bound-secret")

	rec, claims := callMiddleware(signToken(t, "late-bound-secret"))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}
	if claims == nil {
		t.Fatal("claims missing from request context")
	}
	if claims.Role != "surveyor" || claims.Email != "maija@example.com" {
		t.Errorf("unexpected claims %+v", claims)
	}
}

func TestJWTMiddlewareRejects(t *testing.T) {
	t.Setenv("JWT_SECRET", "correct-secret")

	tests := []struct {
		name  string
		token string
	}{
		{"missing header", ""},
		{"garbage token", "not-a-jwt"},
		{"wrong key", signToken(t, "some-other-secret")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, claims := callMiddleware(tt.token)
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, expected 401", rec.Code)
			}
			if claims != nil {
				t.Errorf("claims leaked through: %+v", claims)
			}
		})
	}
}

func TestGenerateTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "round-trip-secret")

	token, err := GenerateToken("22222222-2222-2222-2222-222222222222", "admin", "Admin", "admin@example.com")
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}
	rec, claims := callMiddleware(token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}
	if claims == nil || claims.Role != "admin" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}
