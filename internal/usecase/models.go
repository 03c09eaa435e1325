package usecase

import (
	"time"

	"github.com/shopspring/decimal"
)

// PRODUCT USECASE

// CreateProductReq — payload validado do cadastro de produto. Campos
// obrigatórios numéricos chegam como ponteiro para distinguir ausência de zero.
type CreateProductReq struct {
	Name        string
	Price       *decimal.Decimal
	Quantity    *int
	Category    string
	Description string
}

// UpdateProductReq — atualização parcial: todo campo é opcional e apenas os
// enviados são aplicados.
type UpdateProductReq struct {
	Name        *string
	Price       *decimal.Decimal
	Quantity    *int
	Category    *string
	Description *string
}

// ProductInfo — DTO de saída de produto.
type ProductInfo struct {
	ID          string
	Name        string
	Price       float64
	Quantity    int
	Category    string
	Description string
}

// SALE USECASE

// IngestSalesReq — arquivo recebido no upload de vendas.
type IngestSalesReq struct {
	FileName string
	Data     []byte
}

// IngestSalesRes — resultado do lote: quantas vendas entraram e os erros
// por linha, na ordem do arquivo.
type IngestSalesRes struct {
	InsertedCount int
	Errors        []string
}

// SalesIngestedEvent — evento publicado após um lote ser inserido.
type SalesIngestedEvent struct {
	UploadID      string    `json:"upload_id"`
	FileName      string    `json:"file_name"`
	InsertedCount int       `json:"inserted_count"`
	RejectedCount int       `json:"rejected_count"`
	TotalAmount   string    `json:"total_amount"`
	IngestedAt    time.Time `json:"ingested_at"`
}

// AUTH USECASE

type LoginReq struct {
	Username string
	Password string
}

type LoginRes struct {
	Token     string
	Subject   string
	ExpiresIn int64 // segundos até a expiração
}

// CATEGORY USECASE

type CreateCategoryReq struct {
	Name        string
	Description string
}

type CategoryInfo struct {
	ID          string
	Name        string
	Description string
}

// MAPPERS

func NewCreateProductReq(name string, price *decimal.Decimal, quantity *int, category, description string) *CreateProductReq {
	return &CreateProductReq{
		Name:        name,
		Price:       price,
		Quantity:    quantity,
		Category:    category,
		Description: description,
	}
}

func NewIngestSalesReq(fileName string, data []byte) *IngestSalesReq {
	return &IngestSalesReq{
		FileName: fileName,
		Data:     data,
	}
}

func NewLoginReq(username, password string) *LoginReq {
	return &LoginReq{
		Username: username,
		Password: password,
	}
}

func NewCreateCategoryReq(name, description string) *CreateCategoryReq {
	return &CreateCategoryReq{
		Name:        name,
		Description: description,
	}
}
