package models

import "time"

type Order struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	CustomerName string      `json:"customer_name" gorm:"not null"`
	Phone        string      `json:"phone" gorm:"not null"`
	Address      string      `json:"address"`
	Notes        string      `json:"notes"`
	Total        float64     `json:"total" gorm:"not null"`
	Items        []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt    time.Time   `json:"created_at"`
}

// OrderItem snapshots the menu item's name and unit price at purchase time,
// so later catalog edits never alter a placed order.
type OrderItem struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	OrderID  uint    `json:"order_id" gorm:"not null"`
	ItemName string  `json:"item_name" gorm:"not null"`
	Quantity int     `json:"quantity" gorm:"not null"`
	Price    float64 `json:"price" gorm:"not null"`
}
