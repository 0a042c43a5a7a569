package models

import "github.com/golang-jwt/jwt/v5"

// User represents a registered identity held by the auth service.
// Identities are immutable after registration: there are no update or
// delete endpoints in this system.
type User struct {
	Username     string   `json:"username"`
	PasswordHash string   `json:"-"`
	Roles        []string `json:"roles"`
	Email        string   `json:"email,omitempty"`
}

// DefaultRoles is assigned to every newly registered user.
var DefaultRoles = []string{"user"}

// Claims defines the structure of the JWT claims shared between the
// auth service and every resource service. The embedded RegisteredClaims
// carries "sub" and "exp"; any change to this schema must be rolled out
// to all services at once.
type Claims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// Profile is a directory entry served by the user service. It is
// separate from User: the directory knows nothing about credentials.
type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
