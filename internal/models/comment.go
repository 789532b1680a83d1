package models

import "time"

// Comment is a customer review. It is created unapproved and becomes
// publicly visible only after an admin approves it; approval is one-way.
type Comment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"not null;size:255" json:"name"`
	Rating     int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment    string    `gorm:"type:text;not null" json:"comment"`
	IsApproved bool      `gorm:"not null;default:false" json:"isApproved"`
	CreatedAt  time.Time `json:"createdAt"`
}
