package authModel

import "time"

type (
	SessionResponse struct {
		UserID      string    `json:"user_id"`
		Email       string    `json:"email"`
		AccessToken string    `json:"access_token"`
		ExpiresAt   time.Time `json:"expires_at"`
	}
)
