package models

import "time"

// Laptop is the API catalog row. The schema is independent from the
// storefront's laptops table and the two share no identity.
type Laptop struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Brand        string  `gorm:"not null"                 json:"brand"`
	Model        string  `gorm:"not null"                 json:"model"`
	Processor    string  `gorm:"not null"                 json:"processor"`
	RAM          string  `gorm:"column:ram;not null"      json:"ram"`
	Storage      string  `gorm:"not null"                 json:"storage"`
	GraphicsCard string  `gorm:"not null"                 json:"graphics_card"`
	Price        float64 `gorm:"not null"                 json:"price"`
	Stock        int     `gorm:"not null"                 json:"stock"`
	Description  string  `gorm:"size:1000"                json:"description"`
}

type User struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string  `gorm:"unique;not null"          json:"username"`
	Email        string  `gorm:"unique;not null"          json:"email"`
	PasswordHash string  `gorm:"not null"                 json:"-"`
	Enabled      bool    `gorm:"not null"                 json:"enabled"`
	CreatedAt    string  `gorm:"column:created_at"        json:"created_at"`
	Tokens       []Token `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// Token records one issued bearer token. Rows are never deleted, only
// flagged revoked; the flag moves false to true exactly once.
type Token struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TokenValue string    `gorm:"not null"                 json:"token_value"`
	UserID     uint      `gorm:"index;not null"           json:"user_id"`
	IssuedAt   time.Time `gorm:"not null"                 json:"issued_at"`
	ExpiresAt  time.Time `gorm:"not null"                 json:"expires_at"`
	Revoked    bool      `gorm:"default:false"            json:"revoked"`
	TokenType  string    `gorm:"not null"                 json:"token_type"`
}
