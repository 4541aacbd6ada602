package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/piresc/cabdispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret-key-for-jwt-signing",
		Expiration: 60,
		Issuer:     "cabdispatch-test",
	}
}

func signClaims(t *testing.T, claims jwt.Claims, method jwt.SigningMethod, key interface{}) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestGenerateAndVerify(t *testing.T) {
	cfg := getTestConfig()

	token, expiresAt, err := GenerateToken("driver-1", "driver", cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.InDelta(t, time.Now().Add(time.Hour).Unix(), expiresAt, 5)

	identity, err := NewHMACVerifier(cfg).Verify(token)
	require.NoError(t, err)
	assert.Equal(t, models.Identity{UserID: "driver-1", Role: "driver"}, identity)
}

func TestVerify_Rejections(t *testing.T) {
	cfg := getTestConfig()
	secret := []byte(cfg.Secret)
	future := jwt.NewNumericDate(time.Now().Add(time.Hour))

	tests := []struct {
		name    string
		token   func(t *testing.T) string
		wantErr error
	}{
		{
			name:    "garbage",
			token:   func(t *testing.T) string { return "not-a-jwt" },
			wantErr: ErrInvalidToken,
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				tok, _, err := GenerateToken("u1", "customer", models.JWTConfig{Secret: "other", Expiration: 5, Issuer: cfg.Issuer})
				require.NoError(t, err)
				return tok
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				return signClaims(t, Claims{UserID: "u1", Role: "customer", RegisteredClaims: jwt.RegisteredClaims{
					Issuer:    cfg.Issuer,
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
				}}, jwt.SigningMethodHS256, secret)
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "wrong issuer",
			token: func(t *testing.T) string {
				return signClaims(t, Claims{UserID: "u1", Role: "customer", RegisteredClaims: jwt.RegisteredClaims{
					Issuer: "someone-else", ExpiresAt: future,
				}}, jwt.SigningMethodHS256, secret)
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "unexpected algorithm",
			token: func(t *testing.T) string {
				return signClaims(t, Claims{UserID: "u1", Role: "customer", RegisteredClaims: jwt.RegisteredClaims{
					Issuer: cfg.Issuer, ExpiresAt: future,
				}}, jwt.SigningMethodHS512, secret)
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "missing role",
			token: func(t *testing.T) string {
				return signClaims(t, Claims{UserID: "u1", RegisteredClaims: jwt.RegisteredClaims{
					Issuer: cfg.Issuer, ExpiresAt: future,
				}}, jwt.SigningMethodHS256, secret)
			},
			wantErr: ErrMissingClaims,
		},
	}

	verifier := NewHMACVerifier(cfg)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := verifier.Verify(tt.token(t))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestVerify_SubjectFallback(t *testing.T) {
	cfg := getTestConfig()
	token := signClaims(t, Claims{Role: "admin", RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "admin-9",
		Issuer:    cfg.Issuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}}, jwt.SigningMethodHS256, []byte(cfg.Secret))

	identity, err := NewHMACVerifier(cfg).Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-9", identity.UserID)
	assert.Equal(t, "admin", identity.Role)
}
