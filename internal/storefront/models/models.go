package models

import (
	"regexp"
	"strconv"
	"time"
)

// Laptop is a catalog row. Price is kept as the display string entered by
// the admin ("$999"); cart math extracts the numeric value on demand.
type Laptop struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"not null"                 json:"name"`
	Brand    string `gorm:"not null"                 json:"brand"`
	Price    string `gorm:"not null"                 json:"price"`
	ImageURL string `gorm:"column:image_url"         json:"image_url"`
}

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"unique;not null"          json:"username"`
	Email        string `gorm:"unique;not null"          json:"email"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	City         string `json:"city"`
	PostalCode   string `json:"postal_code"`
}

// Admin is a separate principal from User, used only for the admin
// form login.
type Admin struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"unique;not null"          json:"username"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	Email        string `gorm:"not null"                 json:"email"`
}

type Order struct {
	ID         uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName   string      `gorm:"not null"                 json:"full_name"`
	Phone      string      `gorm:"not null"                 json:"phone"`
	Address    string      `gorm:"not null"                 json:"address"`
	City       string      `gorm:"not null"                 json:"city"`
	PostalCode string      `gorm:"not null"                 json:"postal_code"`
	Total      float64     `gorm:"not null"                 json:"total"`
	Status     string      `gorm:"not null"                 json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
	UserID     *uint       `gorm:"index"                    json:"user_id,omitempty"`
	Items      []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"items"`
}

// OrderItem is a snapshot of a cart line at checkout time, decoupled from
// the live Laptop row.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint    `gorm:"index;not null"           json:"order_id"`
	LaptopID  uint    `gorm:"not null"                 json:"laptop_id"`
	Name      string  `gorm:"not null"                 json:"name"`
	Brand     string  `gorm:"not null"                 json:"brand"`
	UnitPrice float64 `gorm:"not null"                 json:"unit_price"`
	Quantity  int     `gorm:"not null"                 json:"quantity"`
}

const OrderStatusNew = "NEW"

// CartItem lives only in session state and is never persisted.
type CartItem struct {
	LaptopID uint   `json:"laptop_id"`
	Name     string `json:"name"`
	Brand    string `json:"brand"`
	Price    string `json:"price"`
	ImageURL string `json:"image_url"`
	Quantity int    `json:"quantity"`
}

var nonNumeric = regexp.MustCompile(`[^0-9.\-]`)

// NumericPrice strips currency symbols and separators from the display
// price and parses the remainder. Unparsable input yields 0.
func (ci *CartItem) NumericPrice() float64 {
	cleaned := nonNumeric.ReplaceAllString(ci.Price, "")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

func (ci *CartItem) Total() float64 {
	return ci.NumericPrice() * float64(ci.Quantity)
}
