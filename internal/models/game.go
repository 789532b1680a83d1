package models

import "time"

// Game is a sellable product family. IsActive gates public visibility
// without deleting the row.
type Game struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null;size:255" json:"name"`
	Slug        string    `gorm:"not null;size:255;uniqueIndex" json:"slug"`
	Description *string   `gorm:"type:text" json:"description"`
	IsActive    bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// GameWithCards is the shape the public catalog page consumes for a single
// selected game: the game plus its active cards ordered by ascending price.
type GameWithCards struct {
	Game
	Cards []GameCard `json:"cards"`
}
