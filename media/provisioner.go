// Package media provisions access to conversation rooms. The matchmaking
// core hands the resulting token to clients without interpreting it; the
// media transport on the other side validates it.
package media

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type roomClaims struct {
	RoomID string `json:"room_id"`
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// Provisioner issues short-lived signed room access tokens.
type Provisioner struct {
	secret   []byte
	duration time.Duration
}

func NewProvisioner(secret string, duration time.Duration) *Provisioner {
	return &Provisioner{secret: []byte(secret), duration: duration}
}

// IssueRoomAccess returns an opaque access token scoped to one user and one
// room.
func (p *Provisioner) IssueRoomAccess(roomID, userID string) (string, error) {
	now := time.Now()
	claims := &roomClaims{
		RoomID: roomID,
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(p.duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "match-lab-media",
			Subject:   userID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}
