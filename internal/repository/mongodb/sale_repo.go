package mongodb

import (
	"context"

	"github.com/stylesync/go-backend/internal/domain"
	"github.com/stylesync/go-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"go.mongodb.org/mongo-driver/mongo"
)

const salesCollection = "sales"

// SaleRepo implementa o repositório de vendas sobre MongoDB.
type SaleRepo struct {
	coll *mongo.Collection
}

func NewSaleRepo(db *mongo.Database) *SaleRepo {
	return &SaleRepo{
		coll: db.Collection(salesCollection),
	}
}

// InsertMany insere o lote inteiro em uma única chamada. Sem transação: se o
// banco commitar parcialmente, não há rollback. Limitação assumida do
// pipeline de ingestão.
func (s *SaleRepo) InsertMany(ctx context.Context, sales []domain.Sale) (int, error) {
	docs := make([]interface{}, 0, len(sales))
	for i := range sales {
		docs = append(docs, sales[i])
	}

	res, err := s.coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return len(res.InsertedIDs), nil
}
