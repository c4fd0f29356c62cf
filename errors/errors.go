package errors

import "fmt"

var (
	ErrWorkerPanic        = fmt.Errorf("worker panic")
	ErrRaceLost           = fmt.Errorf("queue entry vanished between snapshot and commit")
	ErrEntryNotFound      = fmt.Errorf("no queue entry for user")
	ErrMatchNotFound      = fmt.Errorf("match not found")
	ErrNotParticipant     = fmt.Errorf("user is not a participant of this match")
	ErrTerminalMatch      = fmt.Errorf("match is already in a terminal status")
	ErrInvalidTransition  = fmt.Errorf("invalid match status transition")
	ErrInvalidMessage     = fmt.Errorf("malformed client message")
	ErrUnauthenticated    = fmt.Errorf("authentication required")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrInvalidPassword    = fmt.Errorf("password does not meet complexity rules")
	ErrUserAlreadyExists  = fmt.Errorf("user already exists")
	ErrTokenGeneration    = fmt.Errorf("token generation failed")
	ErrConnectionClosed   = fmt.Errorf("connection already closed")
	ErrEmptyHashtags      = fmt.Errorf("no hashtags could be derived from input")
)
