package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product descreve um produto do catálogo.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Price       float64            `bson:"price"`
	Quantity    int                `bson:"quantity"`
	Category    string             `bson:"category,omitempty"`
	Description string             `bson:"description,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   *time.Time         `bson:"updated_at,omitempty"`
}

func NewProduct(name string, price float64, quantity int, category, description string) *Product {
	return &Product{
		Name:        name,
		Price:       price,
		Quantity:    quantity,
		Category:    category,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
}

// ProductPatch carrega apenas os campos explicitamente enviados em uma
// atualização parcial. Campo nil nunca sobrescreve o valor armazenado.
type ProductPatch struct {
	Name        *string
	Price       *float64
	Quantity    *int
	Category    *string
	Description *string
}

// IsEmpty informa se nenhum campo foi enviado.
func (p *ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Price == nil && p.Quantity == nil &&
		p.Category == nil && p.Description == nil
}
