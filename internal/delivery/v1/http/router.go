package http

import (
	"net/http"

	config "github.com/stylesync/go-backend/internal/cfg"
	"github.com/stylesync/go-backend/internal/usecase"
	"github.com/stylesync/go-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

// Init registra as rotas públicas e as protegidas pelo gate de
// autenticação.
func (r *Router) Init(
	authUC usecase.AuthUC,
	prUC usecase.ProductUC,
	saleUC usecase.SaleUC,
	catUC usecase.CategoryUC,
	uploadCfg *config.UploadCfg,
) {
	r.router.Use(middleware.RequestID)
	r.router.Use(middleware.Recoverer)
	r.router.Use(RequestLogger(r.logger))

	authHandler := NewAuthHandler(authUC, r.logger)
	prHandler := NewProductHandler(prUC, r.logger)
	saleHandler := NewSaleHandler(saleUC, uploadCfg, r.logger)
	catHandler := NewCategoryHandler(catUC, r.logger)

	requireAuth := RequireAuth(authUC, r.logger)

	r.router.Get("/", welcome)
	r.router.Post("/login", authHandler.login)

	registerProductRoutes(r.router, prHandler, requireAuth)
	registerSaleRoutes(r.router, saleHandler, requireAuth)
	registerCategoryRoutes(r.router, catHandler, requireAuth)
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler, requireAuth func(http.Handler) http.Handler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", prHandler.listProducts)
		pr.With(requireAuth).Post("/", prHandler.createProduct)
	})

	router.Route("/product/{id}", func(pr chi.Router) {
		pr.Get("/", prHandler.getProductByID)
		pr.With(requireAuth).Put("/", prHandler.updateProduct)
		pr.With(requireAuth).Delete("/", prHandler.deleteProduct)
	})
}

func registerSaleRoutes(router chi.Router, saleHandler *SaleHandler, requireAuth func(http.Handler) http.Handler) {
	router.Route("/sales", func(sl chi.Router) {
		sl.With(requireAuth).Post("/upload", saleHandler.uploadSales)
	})
}

func registerCategoryRoutes(router chi.Router, catHandler *CategoryHandler, requireAuth func(http.Handler) http.Handler) {
	router.Route("/categories", func(ct chi.Router) {
		ct.Get("/", catHandler.listCategories)
		ct.With(requireAuth).Post("/", catHandler.createCategory)
	})
}

func welcome(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"message": "Bem vindo ao StyleSync!",
	})
}
