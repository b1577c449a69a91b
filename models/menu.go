package models

type MenuItem struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	Name          string  `json:"name" gorm:"not null"`
	Description   string  `json:"description"`
	Price         float64 `json:"price" gorm:"not null"`
	Category      string  `json:"category"`
	ImageFilename string  `json:"image_filename"`
}
