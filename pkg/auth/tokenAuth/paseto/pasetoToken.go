package pasetoToken

import (
	"fmt"
	"time"

	"github.com/aead/chacha20poly1305"
	"github.com/o1egl/paseto"
	"github.com/plateful/recipe-box/pkg/auth/tokenAuth"
)

// PasetoMaker is a PASETO v2 local token maker.
type PasetoMaker struct {
	paseto       *paseto.V2
	symmetricKey []byte
}

// NewPasetoMaker creates a Maker backed by the given symmetric key
func NewPasetoMaker(symmetricKey string) (tokenAuth.Maker, error) {
	if len(symmetricKey) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("invalid key size: must be exactly %d characters", chacha20poly1305.KeySize)
	}

	maker := &PasetoMaker{
		paseto:       paseto.NewV2(),
		symmetricKey: []byte(symmetricKey),
	}
	return maker, nil
}

// CreateToken creates an encrypted token for the given identity and duration
func (maker *PasetoMaker) CreateToken(userID, email string, duration time.Duration) (string, error) {
	payload, err := tokenAuth.NewPayload(userID, email, duration)
	if err != nil {
		return "", err
	}

	return maker.paseto.Encrypt(maker.symmetricKey, payload, nil)
}

// VerifyToken decrypts the token and validates its payload
func (maker *PasetoMaker) VerifyToken(token string) (*tokenAuth.Payload, error) {
	payload := &tokenAuth.Payload{}

	err := maker.paseto.Decrypt(token, maker.symmetricKey, payload, nil)
	if err != nil {
		return nil, tokenAuth.ErrInvalidToken
	}

	err = payload.Valid()
	if err != nil {
		return nil, err
	}

	return payload, nil
}
