package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hrostami/taskkeeper/internal/common"
)

// Claims is the access-token payload. RegisteredClaims contributes the
// standard sub and exp fields; UserID and Role are custom claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"id"`
	Role   string `json:"role,omitempty"`
}

// GenerateToken mints an HS256-signed access token. The subject is the
// username, exp is an absolute timestamp validityDuration from now, and
// role may be empty.
func GenerateToken(username string, userID int64, role string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID: userID,
		Role:   role,
	})

	return token.SignedString(secretKey)
}

// ParseToken verifies tokenString against secretKey and returns its claims.
// Failures map to the sentinel errors in common so callers can tell an
// expired token from a forged or corrupted one:
//
//	common.ErrTokenExpired          exp is in the past
//	common.ErrTokenSignatureInvalid signature does not verify
//	common.ErrTokenMalformed        not a parseable token
//	common.ErrMissingClaims         valid signature but no subject or user id
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, common.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, common.ErrTokenSignatureInvalid
		default:
			return nil, common.ErrTokenMalformed
		}
	}

	if !token.Valid {
		return nil, common.ErrTokenMalformed
	}

	if claims.Subject == "" || claims.UserID == 0 {
		return nil, common.ErrMissingClaims
	}

	return claims, nil
}
