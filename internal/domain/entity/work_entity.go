package entity

import "time"

// PersonRef is a denormalized snapshot of a talent or user, copied at write time.
type PersonRef struct {
	ID     int64  `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Avatar string `json:"avatar" yaml:"avatar"`
}

// Work is a showcase item. It has no update path.
type Work struct {
	ID          int64     `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	ImageURL    string    `json:"imageUrl" yaml:"imageUrl"`
	Category    string    `json:"category" yaml:"category"`
	Tags        []string  `json:"tags" yaml:"tags"`
	Creator     PersonRef `json:"creator" yaml:"creator"`
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt"`
}
