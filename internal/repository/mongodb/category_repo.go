package mongodb

import (
	"context"

	"github.com/stylesync/go-backend/internal/domain"
	"github.com/stylesync/go-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const categoriesCollection = "categories"

// CategoryRepo implementa o repositório de categorias sobre MongoDB.
type CategoryRepo struct {
	coll *mongo.Collection
}

func NewCategoryRepo(db *mongo.Database) *CategoryRepo {
	return &CategoryRepo{
		coll: db.Collection(categoriesCollection),
	}
}

func (c *CategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	cursor, err := c.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer cursor.Close(ctx)

	categories := make([]domain.Category, 0)
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return categories, nil
}

func (c *CategoryRepo) Insert(ctx context.Context, category *domain.Category) (primitive.ObjectID, error) {
	res, err := c.coll.InsertOne(ctx, category)
	if err != nil {
		return primitive.NilObjectID, e.Wrap(whereami.WhereAmI(), err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, e.Wrap(whereami.WhereAmI(), e.ErrInternalServerError)
	}

	return id, nil
}
