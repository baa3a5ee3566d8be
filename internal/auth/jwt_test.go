package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initTestSecret(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	Init()
}

func TestInitPanicsWithoutSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	assert.Panics(t, Init)
}

func TestGenerateAndValidateJWT(t *testing.T) {
	initTestSecret(t)

	token, err := GenerateJWT("device-123", "device", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "device-123", claims.UserID)
	assert.Equal(t, "device", claims.Role)
}

func TestValidateJWTRejections(t *testing.T) {
	initTestSecret(t)

	t.Run("Garbage", func(t *testing.T) {
		_, err := ValidateJWT("not-a-token")
		assert.Error(t, err)
	})

	t.Run("Expired", func(t *testing.T) {
		token, err := GenerateJWT("device-123", "device", -time.Minute)
		require.NoError(t, err)

		_, err = ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		token, err := GenerateJWT("device-123", "device", time.Hour)
		require.NoError(t, err)

		jwtSecret = []byte("rotated-secret")
		defer func() { jwtSecret = []byte("test-secret") }()

		_, err = ValidateJWT(token)
		assert.Error(t, err)
	})
}

func TestAuthMiddleware(t *testing.T) {
	initTestSecret(t)

	protected := AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := GetUserClaimsFromContext(r.Context())
		require.NoError(t, err)
		w.Write([]byte(claims.UserID))
	}))

	t.Run("MissingHeader", func(t *testing.T) {
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("MalformedHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Token abc")
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("ValidToken", func(t *testing.T) {
		token, err := GenerateJWT("device-123", "device", time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "device-123", rec.Body.String())
	})
}

func TestGetUserClaimsFromContextWithoutClaims(t *testing.T) {
	_, err := GetUserClaimsFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.ErrorIs(t, err, ErrNoClaims)
}

func TestRegister(t *testing.T) {
	initTestSecret(t)

	h := NewHandler()
	rec := httptest.NewRecorder()
	h.Register(rec, httptest.NewRequest(http.MethodPost, "/auth/register", nil))

	require.Equal(t, http.StatusCreated, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body["device_id"])
	require.NotEmpty(t, body["token"])

	claims, err := ValidateJWT(body["token"])
	require.NoError(t, err)
	assert.Equal(t, body["device_id"], claims.UserID)
	assert.Equal(t, "device", claims.Role)
}
