package models

import "time"

// Product represents an inventory record. SKU is stored upper-cased and
// is unique across all products; AddCount starts at 1 on creation and is
// never set by clients.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string    `json:"name" gorm:"type:varchar(100);index" validate:"required,max=100"`
	Type        string    `json:"type" gorm:"type:varchar(50);index" validate:"required,max=50"`
	SKU         string    `json:"sku" gorm:"uniqueIndex;type:varchar(20)" validate:"required,max=20"`
	Description string    `json:"description" gorm:"type:varchar(500)" validate:"required,max=500"`
	Quantity    int       `json:"quantity" validate:"gte=0"`
	Price       float64   `json:"price" validate:"gte=0"`
	ImageURL    string    `json:"image_url,omitempty" validate:"omitempty,url,startswith=http"`
	AddCount    int       `json:"add_count" gorm:"index" validate:"gte=1"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
