package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sale descreve uma venda registrada via upload em lote.
// Vendas são imutáveis depois de inseridas.
type Sale struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ProductID string             `bson:"product_id"`
	Quantity  int                `bson:"quantity"`
	SaleDate  time.Time          `bson:"sale_date"` // sempre meia-noite UTC
	UnitPrice float64            `bson:"unit_price"`
	CreatedAt time.Time          `bson:"created_at"`
}

func NewSale(productID string, quantity int, saleDate time.Time, unitPrice float64) *Sale {
	return &Sale{
		ProductID: productID,
		Quantity:  quantity,
		SaleDate:  saleDate,
		UnitPrice: unitPrice,
		CreatedAt: time.Now().UTC(),
	}
}
