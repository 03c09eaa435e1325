package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductUC interface {
	ListProducts(ctx context.Context) ([]ProductInfo, error)
	GetProduct(ctx context.Context, id primitive.ObjectID) (*ProductInfo, error)
	CreateProduct(ctx context.Context, req *CreateProductReq) (string, error)
	UpdateProduct(ctx context.Context, id primitive.ObjectID, req *UpdateProductReq) (*ProductInfo, error)
	DeleteProduct(ctx context.Context, id primitive.ObjectID) error
}

type SaleUC interface {
	IngestSales(ctx context.Context, req *IngestSalesReq) (*IngestSalesRes, error)
}

type AuthUC interface {
	Login(ctx context.Context, req *LoginReq) (*LoginRes, error)
	VerifyToken(raw string) (string, error)
}

type CategoryUC interface {
	ListCategories(ctx context.Context) ([]CategoryInfo, error)
	CreateCategory(ctx context.Context, req *CreateCategoryReq) (string, error)
}
