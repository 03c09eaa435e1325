package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category descreve uma categoria de produtos.
type Category struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func NewCategory(name, description string) *Category {
	return &Category{
		Name:        name,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
}
