package http

import (
	"net/http"

	"github.com/stylesync/go-backend/internal/domain"
	"github.com/stylesync/go-backend/internal/usecase"
	"github.com/stylesync/go-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, logger: logger}
}

// productPayload é o corpo JSON do cadastro de produto. Os numéricos chegam
// como ponteiro para diferençar campo ausente de zero.
type productPayload struct {
	Name        string           `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	Quantity    *int             `json:"quantity"`
	Category    string           `json:"category"`
	Description string           `json:"description"`
}

// productPatchPayload é o corpo JSON da atualização parcial: só o que veio
// no corpo é aplicado.
type productPatchPayload struct {
	Name        *string          `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	Quantity    *int             `json:"quantity"`
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
}

// productResponse é o formato de saída; o identificador sai com o alias
// "_id" e campos opcionais vazios são omitidos.
type productResponse struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Category    string  `json:"category,omitempty"`
	Description string  `json:"description,omitempty"`
}

func toProductResponse(info *usecase.ProductInfo) productResponse {
	return productResponse{
		ID:          info.ID,
		Name:        info.Name,
		Price:       info.Price,
		Quantity:    info.Quantity,
		Category:    info.Category,
		Description: info.Description,
	}
}

func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	infos, err := p.productUsecase.ListProducts(r.Context())
	if err != nil {
		p.logger.Errorf(err, "falha ao listar produtos")
		WriteError(w, err)
		return
	}

	responses := make([]productResponse, 0, len(infos))
	for i := range infos {
		responses = append(responses, toProductResponse(&infos[i]))
	}

	WriteSuccess(w, http.StatusOK, responses)
}

func (p *ProductHandler) getProductByID(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, err)
		return
	}

	info, err := p.productUsecase.GetProduct(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(info))
}

func (p *ProductHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var payload productPayload
	if err := decodeJSON(r, &payload); err != nil {
		WriteError(w, err)
		return
	}

	id, err := p.productUsecase.CreateProduct(r.Context(), usecase.NewCreateProductReq(
		payload.Name, payload.Price, payload.Quantity, payload.Category, payload.Description,
	))
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"_id": id,
	})
}

func (p *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, err)
		return
	}

	var payload productPatchPayload
	if err := decodeJSON(r, &payload); err != nil {
		WriteError(w, err)
		return
	}

	info, err := p.productUsecase.UpdateProduct(r.Context(), id, &usecase.UpdateProductReq{
		Name:        payload.Name,
		Price:       payload.Price,
		Quantity:    payload.Quantity,
		Category:    payload.Category,
		Description: payload.Description,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(info))
}

// deleteProduct responde 204 sem corpo quando a remoção acontece.
func (p *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := p.productUsecase.DeleteProduct(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusNoContent, nil)
}
