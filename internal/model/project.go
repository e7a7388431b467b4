package model

import "time"

// Project is a showcased portfolio entry. Position and Rotation carry
// the 3D scene transform as opaque JSON; the server stores and serves
// them without interpreting the coordinates.
type Project struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Title        string     `json:"title" gorm:"size:255;not null"`
	Description  string     `json:"description" gorm:"type:text;not null"`
	Image        string     `json:"image" gorm:"size:2048;not null"`
	Link         string     `json:"link,omitempty" gorm:"size:2048"`
	Technologies StringList `json:"technologies"`
	Position     JSONText   `json:"position"`
	Rotation     JSONText   `json:"rotation"`
	UserID       string     `json:"user_id" gorm:"type:char(36);index;not null"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
