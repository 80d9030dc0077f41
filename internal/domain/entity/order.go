package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Order represents a purchase placed through the storefront
type Order struct {
	ID           uuid.UUID                        `gorm:"type:uuid;primary_key" json:"id"`
	Time         int64                            `gorm:"column:placed_at;not null;index" json:"time"` // epoch milliseconds
	TotalPrice   int                              `gorm:"not null;default:0" json:"total_price"`
	ShippingInfo datatypes.JSONType[ShippingInfo] `gorm:"type:jsonb" json:"shipping_info"`
	CreatedAt    time.Time                        `json:"created_at"`
	UpdatedAt    time.Time                        `json:"updated_at"`

	// Relationships
	Items []LineItem `gorm:"foreignKey:OrderID" json:"products"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// PlacedAt returns the order timestamp as a time.Time
func (o *Order) PlacedAt() time.Time {
	return time.UnixMilli(o.Time)
}

// LineItem is one cart entry of an order. Quantity and TotalPrice arrive as
// text from the storefront and are not guaranteed to be numeric.
type LineItem struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	OrderID      uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	ProductID    string    `gorm:"size:255" json:"product_id"`
	ProductName  string    `gorm:"size:255" json:"product_name"`
	ProductImage string    `gorm:"size:512" json:"product_image"`
	Size         string    `gorm:"size:50" json:"size"`
	Color        string    `gorm:"size:50" json:"color"`
	Quantity     string    `gorm:"size:50" json:"quantity"`
	TotalPrice   string    `gorm:"size:50" json:"total_price"`
	Category     string    `gorm:"size:255;index" json:"category"`
}

// BeforeCreate generates a UUID before creating a new line item
func (li *LineItem) BeforeCreate(tx *gorm.DB) error {
	if li.ID == uuid.Nil {
		li.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the LineItem model
func (LineItem) TableName() string {
	return "order_items"
}

// ShippingInfo is the delivery address captured at checkout
type ShippingInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	PinCode   string `json:"pin_code"`
}
