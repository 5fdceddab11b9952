package entity

import "time"

// User is an account holder. Email is unique across users.
// PasswordHash is a bcrypt hash; handlers never render it.
type User struct {
	ID           int64     `json:"id" yaml:"id"`
	Name         string    `json:"name" yaml:"name"`
	Email        string    `json:"email" yaml:"email"`
	PasswordHash string    `json:"passwordHash,omitempty" yaml:"-"`
	Role         string    `json:"role" yaml:"role"`
	Bio          string    `json:"bio" yaml:"bio"`
	Avatar       string    `json:"avatar" yaml:"avatar"`
	Phone        string    `json:"phone" yaml:"phone"`
	Location     string    `json:"location" yaml:"location"`
	Website      string    `json:"website" yaml:"website"`
	Skills       []string  `json:"skills" yaml:"skills"`
	CreatedAt    time.Time `json:"createdAt" yaml:"createdAt"`
}
