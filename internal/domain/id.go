package domain

import (
	"github.com/stylesync/go-backend/pkg/e"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseID converte o identificador externo (hex de 24 caracteres) no
// ObjectID nativo do banco. Entrada malformada devolve e.ErrInvalidID,
// distinguível de "não encontrado" na camada de transporte.
func ParseID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, e.Wrap(raw, e.ErrInvalidID)
	}

	return id, nil
}
