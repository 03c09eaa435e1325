package usecase

import (
	"context"

	"github.com/stylesync/go-backend/internal/domain"
	"github.com/stylesync/go-backend/pkg/e"
	"github.com/stylesync/go-backend/pkg/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductUseCase implementa o CRUD de produtos sobre o repositório de
// documentos, com cache de leitura sobre Redis.
type ProductUseCase struct {
	productRepo ProductRepository
	cacheRepo   CacheRepository
	logger      logger.Logger
}

func NewProductUC(productRepo ProductRepository, cacheRepo CacheRepository, logger logger.Logger) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
	}
}

// ListProducts devolve todos os produtos do catálogo.
func (p *ProductUseCase) ListProducts(ctx context.Context) ([]ProductInfo, error) {
	const op = "ProductUseCase.ListProducts"

	if cached, err := p.cacheRepo.GetProductList(ctx); err == nil && cached != nil {
		return toProductInfos(cached), nil
	} else if err != nil {
		p.logger.Warnf("cache de produtos indisponível: %v", e.Wrap(op, err))
	}

	products, err := p.productRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := p.cacheRepo.SetProductList(ctx, products); err != nil {
		p.logger.Warnf("falha ao preencher cache de produtos: %v", e.Wrap(op, err))
	}

	return toProductInfos(products), nil
}

// GetProduct devolve um produto pelo identificador.
func (p *ProductUseCase) GetProduct(ctx context.Context, id primitive.ObjectID) (*ProductInfo, error) {
	const op = "ProductUseCase.GetProduct"

	if cached, err := p.cacheRepo.GetProduct(ctx, id.Hex()); err == nil && cached != nil {
		info := toProductInfo(cached)
		return &info, nil
	} else if err != nil {
		p.logger.Warnf("cache de produtos indisponível: %v", e.Wrap(op, err))
	}

	product, err := p.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := p.cacheRepo.SetProduct(ctx, product); err != nil {
		p.logger.Warnf("falha ao cachear produto %s: %v", id.Hex(), e.Wrap(op, err))
	}

	info := toProductInfo(product)
	return &info, nil
}

// CreateProduct valida e insere um novo produto, devolvendo o identificador
// gerado pelo banco.
func (p *ProductUseCase) CreateProduct(ctx context.Context, req *CreateProductReq) (string, error) {
	const op = "ProductUseCase.CreateProduct"

	product, err := validateProduct(req)
	if err != nil {
		return "", err
	}

	id, err := p.productRepo.Insert(ctx, product)
	if err != nil {
		return "", e.Wrap(op, err)
	}

	p.invalidate(ctx, op)

	return id.Hex(), nil
}

// UpdateProduct aplica uma atualização parcial: somente os campos enviados
// sobrescrevem os valores armazenados. Devolve o produto já mesclado.
func (p *ProductUseCase) UpdateProduct(ctx context.Context, id primitive.ObjectID, req *UpdateProductReq) (*ProductInfo, error) {
	const op = "ProductUseCase.UpdateProduct"

	patch, err := validateProductPatch(req)
	if err != nil {
		return nil, err
	}

	// Patch vazio não altera nada, mas ainda precisa responder 404 para
	// produto inexistente.
	if !patch.IsEmpty() {
		matched, err := p.productRepo.Update(ctx, id, patch)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		if matched == 0 {
			return nil, e.Wrap(op, e.ErrNotFound)
		}

		p.invalidate(ctx, op, id.Hex())
	}

	product, err := p.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	info := toProductInfo(product)
	return &info, nil
}

// DeleteProduct remove o produto definitivamente.
func (p *ProductUseCase) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	const op = "ProductUseCase.DeleteProduct"

	deleted, err := p.productRepo.Delete(ctx, id)
	if err != nil {
		return e.Wrap(op, err)
	}
	if deleted == 0 {
		return e.Wrap(op, e.ErrNotFound)
	}

	p.invalidate(ctx, op, id.Hex())

	return nil
}

func (p *ProductUseCase) invalidate(ctx context.Context, op string, ids ...string) {
	if err := p.cacheRepo.InvalidateProducts(ctx, ids...); err != nil {
		p.logger.Warnf("falha ao invalidar cache de produtos: %v", e.Wrap(op, err))
	}
}

func toProductInfo(product *domain.Product) ProductInfo {
	return ProductInfo{
		ID:          product.ID.Hex(),
		Name:        product.Name,
		Price:       product.Price,
		Quantity:    product.Quantity,
		Category:    product.Category,
		Description: product.Description,
	}
}

func toProductInfos(products []domain.Product) []ProductInfo {
	infos := make([]ProductInfo, 0, len(products))
	for i := range products {
		infos = append(infos, toProductInfo(&products[i]))
	}
	return infos
}
