package usecase

import (
	"context"

	"github.com/stylesync/go-backend/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error)
	Insert(ctx context.Context, product *domain.Product) (primitive.ObjectID, error)
	// Update aplica apenas os campos presentes no patch e devolve o número
	// de documentos que casaram com o filtro.
	Update(ctx context.Context, id primitive.ObjectID, patch *domain.ProductPatch) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type SaleRepository interface {
	// InsertMany insere todas as vendas em uma única chamada e devolve
	// quantas foram inseridas.
	InsertMany(ctx context.Context, sales []domain.Sale) (int, error)
}

type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
	Insert(ctx context.Context, category *domain.Category) (primitive.ObjectID, error)
}

// CacheRepository guarda leituras de produto em cache. Falhas de cache são
// tratadas como miss pelos chamadores, nunca como erro da requisição.
type CacheRepository interface {
	GetProductList(ctx context.Context) ([]domain.Product, error)
	SetProductList(ctx context.Context, products []domain.Product) error
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	SetProduct(ctx context.Context, product *domain.Product) error
	InvalidateProducts(ctx context.Context, ids ...string) error
}
