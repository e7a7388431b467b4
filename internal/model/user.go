package model

import "time"

// User mirrors the identity issued by the auth provider into the local
// database so projects can reference an owner. The ID is the provider's
// opaque identifier, assigned at sign-up, and the row is never mutated
// afterwards.
type User struct {
	ID        string    `json:"id" gorm:"type:char(36);primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	CreatedAt time.Time `json:"created_at"`
}
