package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/stylesync/go-backend/internal/domain"
	"github.com/stylesync/go-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const productsCollection = "products"

// ProductRepo implementa o repositório de produtos sobre MongoDB.
type ProductRepo struct {
	coll *mongo.Collection
}

func NewProductRepo(db *mongo.Database) *ProductRepo {
	return &ProductRepo{
		coll: db.Collection(productsCollection),
	}
}

func (p *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	cursor, err := p.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer cursor.Close(ctx)

	products := make([]domain.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return products, nil
}

func (p *ProductRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error) {
	var product domain.Product
	err := p.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, e.Wrap(id.Hex(), e.ErrNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &product, nil
}

func (p *ProductRepo) Insert(ctx context.Context, product *domain.Product) (primitive.ObjectID, error) {
	res, err := p.coll.InsertOne(ctx, product)
	if err != nil {
		return primitive.NilObjectID, e.Wrap(whereami.WhereAmI(), err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, e.Wrap(whereami.WhereAmI(), e.ErrInternalServerError)
	}

	return id, nil
}

// Update monta o $set apenas com os campos presentes no patch, preservando
// tudo que não foi enviado. Devolve quantos documentos casaram com o filtro.
func (p *ProductRepo) Update(ctx context.Context, id primitive.ObjectID, patch *domain.ProductPatch) (int64, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Quantity != nil {
		set["quantity"] = *patch.Quantity
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}

	res, err := p.coll.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return res.MatchedCount, nil
}

func (p *ProductRepo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := p.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return res.DeletedCount, nil
}
