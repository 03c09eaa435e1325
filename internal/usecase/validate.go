package usecase

import (
	"strconv"
	"strings"
	"time"

	"github.com/stylesync/go-backend/internal/domain"
	"github.com/stylesync/go-backend/pkg/e"
	"github.com/shopspring/decimal"
)

// Aliases de entrada das colunas do CSV de vendas. A primeira linha do
// arquivo precisa usar exatamente estes nomes.
const (
	saleFieldProductID = "product_id"
	saleFieldQuantity  = "quantity"
	saleFieldSaleDate  = "sale_date"
	saleFieldUnitPrice = "unit_price"
)

const saleDateLayout = "2006-01-02"

// validateProduct verifica o payload completo de produto e constrói a
// entidade. A validação é pura: nunca toca o banco.
func validateProduct(req *CreateProductReq) (*domain.Product, error) {
	verr := &e.ValidationError{}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		verr.Add("name", "campo obrigatório")
	}

	var price float64
	switch {
	case req.Price == nil:
		verr.Add("price", "campo obrigatório")
	case req.Price.IsNegative():
		verr.Add("price", "deve ser maior ou igual a zero")
	default:
		price = req.Price.InexactFloat64()
	}

	var quantity int
	switch {
	case req.Quantity == nil:
		verr.Add("quantity", "campo obrigatório")
	case *req.Quantity < 0:
		verr.Add("quantity", "deve ser maior ou igual a zero")
	default:
		quantity = *req.Quantity
	}

	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	return domain.NewProduct(name, price, quantity, strings.TrimSpace(req.Category), strings.TrimSpace(req.Description)), nil
}

// validateProductPatch verifica apenas os campos enviados. Campo ausente não
// gera problema nem entra no patch resultante.
func validateProductPatch(req *UpdateProductReq) (*domain.ProductPatch, error) {
	verr := &e.ValidationError{}
	patch := &domain.ProductPatch{}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			verr.Add("name", "não pode ser vazio")
		} else {
			patch.Name = &name
		}
	}

	if req.Price != nil {
		if req.Price.IsNegative() {
			verr.Add("price", "deve ser maior ou igual a zero")
		} else {
			price := req.Price.InexactFloat64()
			patch.Price = &price
		}
	}

	if req.Quantity != nil {
		if *req.Quantity < 0 {
			verr.Add("quantity", "deve ser maior ou igual a zero")
		} else {
			patch.Quantity = req.Quantity
		}
	}

	if req.Category != nil {
		category := strings.TrimSpace(*req.Category)
		patch.Category = &category
	}

	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		patch.Description = &description
	}

	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	return patch, nil
}

// validateCredentials verifica a presença dos dois campos do login.
func validateCredentials(req *LoginReq) (*domain.Credentials, error) {
	verr := &e.ValidationError{}

	if strings.TrimSpace(req.Username) == "" {
		verr.Add("username", "campo obrigatório")
	}
	if req.Password == "" {
		verr.Add("password", "campo obrigatório")
	}

	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	return &domain.Credentials{Username: req.Username, Password: req.Password}, nil
}

// validateSaleRow valida uma linha do CSV já mapeada por alias de coluna e
// constrói a venda com a data normalizada para meia-noite UTC.
func validateSaleRow(row map[string]string) (*domain.Sale, error) {
	verr := &e.ValidationError{}

	productID := strings.TrimSpace(row[saleFieldProductID])
	if productID == "" {
		verr.Add(saleFieldProductID, "campo obrigatório")
	}

	var quantity int
	rawQuantity := strings.TrimSpace(row[saleFieldQuantity])
	if rawQuantity == "" {
		verr.Add(saleFieldQuantity, "campo obrigatório")
	} else {
		q, err := strconv.Atoi(rawQuantity)
		switch {
		case err != nil:
			verr.Add(saleFieldQuantity, "deve ser um número inteiro")
		case q <= 0:
			verr.Add(saleFieldQuantity, "deve ser maior que zero")
		default:
			quantity = q
		}
	}

	var saleDate time.Time
	rawDate := strings.TrimSpace(row[saleFieldSaleDate])
	if rawDate == "" {
		verr.Add(saleFieldSaleDate, "campo obrigatório")
	} else {
		d, err := time.ParseInLocation(saleDateLayout, rawDate, time.UTC)
		if err != nil {
			verr.Add(saleFieldSaleDate, "data inválida, use o formato AAAA-MM-DD")
		} else {
			saleDate = d // já é meia-noite UTC pelo layout
		}
	}

	var unitPrice float64
	rawPrice := strings.TrimSpace(row[saleFieldUnitPrice])
	if rawPrice == "" {
		verr.Add(saleFieldUnitPrice, "campo obrigatório")
	} else {
		p, err := decimal.NewFromString(rawPrice)
		switch {
		case err != nil:
			verr.Add(saleFieldUnitPrice, "preço inválido")
		case p.IsNegative():
			verr.Add(saleFieldUnitPrice, "deve ser maior ou igual a zero")
		default:
			unitPrice = p.InexactFloat64()
		}
	}

	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	return domain.NewSale(productID, quantity, saleDate, unitPrice), nil
}

// validateCategory verifica o payload de categoria.
func validateCategory(req *CreateCategoryReq) (*domain.Category, error) {
	verr := &e.ValidationError{}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		verr.Add("name", "campo obrigatório")
	}

	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	return domain.NewCategory(name, strings.TrimSpace(req.Description)), nil
}
