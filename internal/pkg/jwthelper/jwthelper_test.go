package jwthelper

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = []byte("test-signing-key-0123456789")

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(testKey, "johndoe", 30*time.Minute)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	subject, err := ParseToken(testKey, token)
	require.NoError(t, err)
	assert.Equal(t, "johndoe", subject)
}

func TestParseToken_Rejects(t *testing.T) {
	expired, err := GenerateToken(testKey, "johndoe", -time.Minute)
	require.NoError(t, err)

	otherKey, err := GenerateToken([]byte("another-signing-key-987654"), "johndoe", time.Minute)
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}).SignedString(testKey)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "johndoe",
	}).SignedString(testKey)
	require.NoError(t, err)

	wrongAlg, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "johndoe",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}).SignedString(testKey)
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "johndoe",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "expired", token: expired, wantErr: ErrInvalidToken},
		{name: "signed with another key", token: otherKey, wantErr: ErrInvalidToken},
		{name: "missing subject", token: noSubject, wantErr: ErrMissingSubject},
		{name: "missing expiry", token: noExpiry, wantErr: ErrInvalidToken},
		{name: "wrong algorithm", token: wrongAlg, wantErr: ErrInvalidToken},
		{name: "alg none", token: unsigned, wantErr: ErrInvalidToken},
		{name: "malformed", token: "not-a-jwt", wantErr: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseToken(testKey, tt.token)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
