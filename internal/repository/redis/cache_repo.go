package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	config "github.com/stylesync/go-backend/internal/cfg"
	"github.com/stylesync/go-backend/internal/domain"
	"github.com/stylesync/go-backend/pkg/clients"
	"github.com/stylesync/go-backend/pkg/e"
	"github.com/stylesync/go-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const productListKey = "products:all"

// productModel é a forma serializada de um produto dentro do Redis.
type productModel struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Price       float64    `json:"price"`
	Quantity    int        `json:"quantity"`
	Category    string     `json:"category,omitempty"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// CacheRepo guarda leituras de produto no Redis com TTL. Toda falha aqui é
// logada e tratada como cache miss pelos usecases.
type CacheRepo struct {
	client *clients.RedisClient
	cfg    *config.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, cfg *config.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// GetProductList devolve a listagem cacheada, ou (nil, nil) em caso de miss.
func (c *CacheRepo) GetProductList(ctx context.Context) ([]domain.Product, error) {
	data, err := c.client.Client.Get(ctx, productListKey).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return nil, nil
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var models []productModel
	if err := json.Unmarshal(data, &models); err != nil {
		// Entrada corrompida: remove e trata como miss.
		if delErr := c.client.Client.Del(ctx, productListKey).Err(); delErr != nil {
			c.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), delErr))
		}
		return nil, nil
	}

	products := make([]domain.Product, 0, len(models))
	for i := range models {
		product, err := toEntity(&models[i])
		if err != nil {
			return nil, nil
		}
		products = append(products, *product)
	}

	return products, nil
}

// SetProductList cacheia a listagem inteira com o TTL configurado.
func (c *CacheRepo) SetProductList(ctx context.Context, products []domain.Product) error {
	models := make([]productModel, 0, len(products))
	for i := range products {
		models = append(models, toModel(&products[i]))
	}

	data, err := json.Marshal(models)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := c.client.Client.Set(ctx, productListKey, data, c.cfg.ProductTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// GetProduct devolve o produto cacheado, ou (nil, nil) em caso de miss.
func (c *CacheRepo) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	data, err := c.client.Client.Get(ctx, c.productKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return nil, nil
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var model productModel
	if err := json.Unmarshal(data, &model); err != nil {
		if delErr := c.client.Client.Del(ctx, c.productKey(id)).Err(); delErr != nil {
			c.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), delErr))
		}
		return nil, nil
	}

	if model.ID != id {
		c.logger.Warnf("Cache ID mismatch: key_id: %s, model_id: %s", id, model.ID)
		return nil, nil
	}

	return toEntity(&model)
}

func (c *CacheRepo) SetProduct(ctx context.Context, product *domain.Product) error {
	model := toModel(product)

	data, err := json.Marshal(model)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := c.client.Client.Set(ctx, c.productKey(model.ID), data, c.cfg.ProductTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// InvalidateProducts remove a listagem e as chaves individuais informadas.
func (c *CacheRepo) InvalidateProducts(ctx context.Context, ids ...string) error {
	keys := make([]string, 0, len(ids)+1)
	keys = append(keys, productListKey)
	for _, id := range ids {
		keys = append(keys, c.productKey(id))
	}

	if err := c.client.Client.Del(ctx, keys...).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (c *CacheRepo) productKey(id string) string {
	return fmt.Sprintf("product:%s", id)
}

func toModel(product *domain.Product) productModel {
	return productModel{
		ID:          product.ID.Hex(),
		Name:        product.Name,
		Price:       product.Price,
		Quantity:    product.Quantity,
		Category:    product.Category,
		Description: product.Description,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

func toEntity(model *productModel) (*domain.Product, error) {
	id, err := primitive.ObjectIDFromHex(model.ID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &domain.Product{
		ID:          id,
		Name:        model.Name,
		Price:       model.Price,
		Quantity:    model.Quantity,
		Category:    model.Category,
		Description: model.Description,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}, nil
}
