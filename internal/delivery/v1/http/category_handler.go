package http

import (
	"net/http"

	"github.com/stylesync/go-backend/internal/usecase"
	"github.com/stylesync/go-backend/pkg/logger"
)

type CategoryHandler struct {
	categoryUsecase usecase.CategoryUC
	logger          logger.Logger
}

func NewCategoryHandler(categoryUsecase usecase.CategoryUC, logger logger.Logger) *CategoryHandler {
	return &CategoryHandler{categoryUsecase: categoryUsecase, logger: logger}
}

type categoryPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type categoryResponse struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (c *CategoryHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	infos, err := c.categoryUsecase.ListCategories(r.Context())
	if err != nil {
		c.logger.Errorf(err, "falha ao listar categorias")
		WriteError(w, err)
		return
	}

	responses := make([]categoryResponse, 0, len(infos))
	for _, info := range infos {
		responses = append(responses, categoryResponse{
			ID:          info.ID,
			Name:        info.Name,
			Description: info.Description,
		})
	}

	WriteSuccess(w, http.StatusOK, responses)
}

func (c *CategoryHandler) createCategory(w http.ResponseWriter, r *http.Request) {
	var payload categoryPayload
	if err := decodeJSON(r, &payload); err != nil {
		WriteError(w, err)
		return
	}

	id, err := c.categoryUsecase.CreateCategory(r.Context(), usecase.NewCreateCategoryReq(payload.Name, payload.Description))
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"_id": id,
	})
}
