package handler

import (
	"time"

	"ecoscan/internal/domain/entity"
)

func existingUser(id int64, username string) *entity.User {
	return &entity.User{
		ID:        id,
		Username:  username,
		Email:     username + "@example.com",
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func existingProduct(id int64, barcode string) *entity.Product {
	return &entity.Product{
		ID:         id,
		Barcode:    barcode,
		Name:       "Pan Integral",
		Nutriscore: "a",
		Ecoscore:   "b",
		Category:   "Breads",
	}
}
