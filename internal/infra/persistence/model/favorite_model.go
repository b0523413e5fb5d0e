package model

import "time"

// FavoriteModel mirrors the 'user_favorites' join table. The composite primary
// key keeps a (user, product) pair unique; CreatedAt preserves insertion order
// for favorite listings.
type FavoriteModel struct {
	UserID    int64 `gorm:"primaryKey;autoIncrement:false"`
	ProductID int64 `gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "user_favorites"
}
