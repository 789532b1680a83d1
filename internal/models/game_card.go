package models

import "time"

// GameCard is a priced denomination belonging to exactly one game.
// Price is in whole EGP; Points is a free-text amount label ("100", "310+31").
type GameCard struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	GameID    uint      `gorm:"not null;index" json:"gameId"`
	Points    string    `gorm:"not null;size:100" json:"points"`
	Bonus     *string   `gorm:"size:255" json:"bonus"`
	Price     int       `gorm:"not null" json:"price"`
	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}
