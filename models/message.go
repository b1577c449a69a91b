package models

import "time"

// Message is a contact-form submission. It has no relation to any other
// entity and is only ever inserted and listed.
type Message struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email"`
	Body      string    `json:"message" gorm:"column:message;not null"`
	CreatedAt time.Time `json:"created_at"`
}
