package tokenAuth

import (
	"errors"
	"time"
)

var (
	// ErrExpiredToken is returned when the verified token is past its expiration.
	ErrExpiredToken = errors.New("token has expired")
	// ErrInvalidToken is returned when the token cannot be decrypted or parsed.
	ErrInvalidToken = errors.New("token is invalid")
)

// Maker manages the creation and verification of access tokens.
type Maker interface {
	CreateToken(userID, email string, duration time.Duration) (string, error)
	VerifyToken(token string) (*Payload, error)
}
