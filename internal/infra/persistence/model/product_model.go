package model

import "time"

// ProductModel mirrors the 'products' table. The barcode unique index is the
// arbiter when two requests race to cache the same unknown product.
type ProductModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Barcode    string `gorm:"type:varchar(13);uniqueIndex;not null"`
	Name       string `gorm:"type:varchar(255);not null"`
	Nutriscore string `gorm:"type:varchar(3)"`
	Ecoscore   string `gorm:"type:varchar(3)"`
	Category   string `gorm:"type:varchar(100)"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
