package models

import "time"

type Category struct {
	ID        string    `gorm:"primaryKey;size:36"   bson:"id"         json:"id"         yaml:"id"`
	Name      string    `gorm:"not null"             bson:"name"       json:"name"       yaml:"name"`
	Slug      string    `gorm:"uniqueIndex;not null" bson:"slug"       json:"slug"       yaml:"slug"`
	Image     string    `                            bson:"image"      json:"image"      yaml:"image"`
	SortOrder int       `gorm:"not null"             bson:"sort_order" json:"sort_order" yaml:"sort_order"`
	IsActive  bool      `gorm:"index;not null"       bson:"is_active"  json:"is_active"  yaml:"-"`
	CreatedAt time.Time `                            bson:"created_at" json:"created_at" yaml:"-"`
}

func (Category) TableName() string { return "categories" }

type Product struct {
	ID            string    `gorm:"primaryKey;size:36"          bson:"id"             json:"id"             yaml:"id"`
	Name          string    `gorm:"not null"                    bson:"name"           json:"name"           yaml:"name"`
	Category      string    `gorm:"index;not null"              bson:"category"       json:"category"       yaml:"category"`
	Weight        string    `                                   bson:"weight"         json:"weight"         yaml:"weight"`
	Price         float64   `gorm:"not null"                    bson:"price"          json:"price"          yaml:"price"`
	OriginalPrice float64   `                                   bson:"original_price" json:"original_price" yaml:"original_price"`
	Image         string    `                                   bson:"image"          json:"image"          yaml:"image"`
	IsBestseller  bool      `gorm:"index;not null"              bson:"is_bestseller"  json:"is_bestseller"  yaml:"is_bestseller"`
	Description   string    `                                   bson:"description"    json:"description"    yaml:"description"`
	Stock         int       `gorm:"not null;check:stock >= 0"   bson:"stock"          json:"stock"          yaml:"stock"`
	IsActive      bool      `gorm:"index;not null"              bson:"is_active"      json:"is_active"      yaml:"-"`
	CreatedAt     time.Time `                                   bson:"created_at"     json:"created_at"     yaml:"-"`
}

func (Product) TableName() string { return "products" }

type Banner struct {
	ID          string    `gorm:"primaryKey;size:36" bson:"id"          json:"id"          yaml:"id"`
	Title       string    `gorm:"not null"           bson:"title"       json:"title"       yaml:"title"`
	Subtitle    string    `                          bson:"subtitle"    json:"subtitle"    yaml:"subtitle"`
	Description string    `                          bson:"description" json:"description" yaml:"description"`
	BgColor     string    `                          bson:"bg_color"    json:"bg_color"    yaml:"bg_color"`
	Image       string    `                          bson:"image"       json:"image"       yaml:"image"`
	ButtonText  string    `                          bson:"button_text" json:"button_text" yaml:"button_text"`
	ButtonLink  string    `                          bson:"button_link" json:"button_link" yaml:"button_link"`
	SortOrder   int       `gorm:"not null"           bson:"order"       json:"order"       yaml:"order"`
	IsActive    bool      `gorm:"index;not null"     bson:"is_active"   json:"is_active"   yaml:"-"`
	CreatedAt   time.Time `                          bson:"created_at"  json:"created_at"  yaml:"-"`
}

func (Banner) TableName() string { return "banners" }
