package models

import "github.com/google/uuid"

type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize in JSON
}

// SessionUser is the minimal identity returned by a successful
// credential check. It deliberately carries no password material.
type SessionUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

// Session is the login result handed back to the client.
type Session struct {
	User  SessionUser `json:"user"`
	Token string      `json:"token"`
}
