// Package models defines the persisted row types shared by repositories
// and services.
package models

// User is an account row. PasswordHash is the only credential material
// ever stored; the plaintext password is discarded after hashing.
type User struct {
	ID           int64
	Username     string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	Role         string
	IsActive     bool
}
