package http

import (
	"net/http"

	config "github.com/stylesync/go-backend/internal/cfg"
	"github.com/stylesync/go-backend/internal/usecase"
	"github.com/stylesync/go-backend/pkg/e"
	"github.com/stylesync/go-backend/pkg/logger"
)

type SaleHandler struct {
	saleUsecase usecase.SaleUC
	cfg         *config.UploadCfg
	logger      logger.Logger
}

func NewSaleHandler(saleUsecase usecase.SaleUC, cfg *config.UploadCfg, logger logger.Logger) *SaleHandler {
	return &SaleHandler{saleUsecase: saleUsecase, cfg: cfg, logger: logger}
}

// uploadSales recebe o CSV de vendas no campo multipart "file" e devolve o
// resumo do lote. Erros por linha fazem parte da resposta 200, não do status.
func (s *SaleHandler) uploadSales(w http.ResponseWriter, r *http.Request) {
	const maxMemory = 32 << 20

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxFileSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		s.logger.Warnf("%d upload recusado: %v", http.StatusBadRequest, err)
		WriteError(w, err)
		return
	}

	_, fh, err := r.FormFile("file")
	if err != nil {
		s.logger.Warnf("%d upload sem arquivo: %v", http.StatusBadRequest, err)
		WriteError(w, e.ErrMissingFile)
		return
	}

	data, err := readFile(fh, s.cfg.MaxFileSize)
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := s.saleUsecase.IngestSales(r.Context(), usecase.NewIngestSalesReq(fh.Filename, data))
	if err != nil {
		s.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	// A lista de erros nunca sai como null no JSON.
	rowErrors := res.Errors
	if rowErrors == nil {
		rowErrors = []string{}
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"inserted_count": res.InsertedCount,
		"errors":         rowErrors,
	})
}
