package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Customer struct {
	ID           string    `gorm:"primaryKey;size:36"        bson:"id"            json:"id"`
	Name         string    `gorm:"not null"                  bson:"name"          json:"name"`
	Email        string    `gorm:"uniqueIndex;not null"      bson:"email"         json:"email"`
	Phone        string    `gorm:"uniqueIndex;not null"      bson:"phone"         json:"phone"`
	PasswordHash string    `gorm:"not null"                  bson:"password_hash" json:"-"`
	IsActive     bool      `gorm:"not null"                  bson:"is_active"     json:"is_active"`
	CreatedAt    time.Time `                                 bson:"created_at"    json:"created_at"`
}

func (Customer) TableName() string { return "users" }

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

type Admin struct {
	ID           string    `gorm:"primaryKey;size:36"   bson:"id"            json:"id"`
	Name         string    `gorm:"not null"             bson:"name"          json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" bson:"email"         json:"email"`
	PasswordHash string    `gorm:"not null"             bson:"password_hash" json:"-"`
	Role         string    `gorm:"not null"             bson:"role"          json:"role"`
	IsActive     bool      `gorm:"not null"             bson:"is_active"     json:"is_active"`
	CreatedAt    time.Time `                            bson:"created_at"    json:"created_at"`
}

func (Admin) TableName() string { return "admins" }

func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

type PasswordResetToken struct {
	ID        string    `gorm:"primaryKey;size:36"   bson:"id"         json:"id"`
	UserID    string    `gorm:"index;not null"       bson:"user_id"    json:"user_id"`
	Email     string    `gorm:"index;not null"       bson:"email"      json:"email"`
	Token     string    `gorm:"uniqueIndex;not null" bson:"token"      json:"-"`
	ExpiresAt time.Time `gorm:"not null"             bson:"expires_at" json:"expires_at"`
	Used      bool      `gorm:"not null"             bson:"used"       json:"used"`
	CreatedAt time.Time `                            bson:"created_at" json:"created_at"`
}

func (PasswordResetToken) TableName() string { return "password_reset_tokens" }

type Address struct {
	ID        string    `gorm:"primaryKey;size:36" bson:"id"         json:"id"`
	UserID    string    `gorm:"index;not null"     bson:"user_id"    json:"user_id"`
	Name      string    `                          bson:"name"       json:"name"`
	Email     string    `                          bson:"email"      json:"email"`
	Phone     string    `                          bson:"phone"      json:"phone"`
	Address   string    `                          bson:"address"    json:"address"`
	City      string    `                          bson:"city"       json:"city"`
	State     string    `                          bson:"state"      json:"state"`
	Pincode   string    `                          bson:"pincode"    json:"pincode"`
	IsPrimary bool      `gorm:"not null"           bson:"is_primary" json:"is_primary"`
	CreatedAt time.Time `                          bson:"created_at" json:"created_at"`
}

func (Address) TableName() string { return "addresses" }
