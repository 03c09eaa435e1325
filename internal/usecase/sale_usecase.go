package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/stylesync/go-backend/internal/domain"
	"github.com/stylesync/go-backend/pkg/e"
	"github.com/stylesync/go-backend/pkg/logger"
	"github.com/stylesync/go-backend/pkg/money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleUseCase implementa a ingestão em lote de vendas a partir de um CSV.
// Cada linha é validada de forma independente: uma linha ruim nunca derruba
// o lote, apenas vira uma mensagem de erro na resposta.
type SaleUseCase struct {
	saleRepo SaleRepository
	archive  FileArchive
	producer EventProducer
	logger   logger.Logger
}

func NewSaleUC(saleRepo SaleRepository, archive FileArchive, producer EventProducer, logger logger.Logger) *SaleUseCase {
	return &SaleUseCase{
		saleRepo: saleRepo,
		archive:  archive,
		producer: producer,
		logger:   logger,
	}
}

// IngestSales processa o arquivo inteiro em uma passada: cabeçalho na
// primeira linha, uma venda por linha seguinte, um único InsertMany no final.
// Erros por linha entram na resposta na ordem do arquivo ("Linha N: ...").
func (s *SaleUseCase) IngestSales(ctx context.Context, req *IngestSalesReq) (*IngestSalesRes, error) {
	const op = "SaleUseCase.IngestSales"

	if strings.TrimSpace(req.FileName) == "" {
		return nil, e.Wrap(op, e.ErrMissingFile)
	}
	if !strings.EqualFold(filepath.Ext(req.FileName), ".csv") {
		return nil, e.Wrap(op, e.ErrNotCSV)
	}

	sales, rowErrors := s.parseRows(req.Data)

	inserted := 0
	if len(sales) > 0 {
		n, err := s.saleRepo.InsertMany(ctx, sales)
		if err != nil {
			// Falha do banco é fatal para o lote inteiro, diferente dos
			// erros por linha.
			return nil, e.Wrap(op, err)
		}
		inserted = n
	}

	s.afterIngest(ctx, req, sales, inserted, len(rowErrors))

	return &IngestSalesRes{
		InsertedCount: inserted,
		Errors:        rowErrors,
	}, nil
}

// parseRows lê o CSV linha a linha. A numeração das mensagens é 1-based
// sobre as linhas de dados, excluindo o cabeçalho.
func (s *SaleUseCase) parseRows(data []byte) ([]domain.Sale, []string) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		// Arquivo sem nenhuma linha: zero vendas, zero erros.
		return nil, nil
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var (
		sales     []domain.Sale
		rowErrors []string
	)

	for rowNum := 1; ; rowNum++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("Linha %d: linha malformada: %v", rowNum, err))
			continue
		}

		row := make(map[string]string, len(columns))
		for name, idx := range columns {
			if idx < len(record) {
				row[name] = record[idx]
			}
		}

		sale, err := validateSaleRow(row)
		if err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("Linha %d: %s", rowNum, err.Error()))
			continue
		}

		sales = append(sales, *sale)
	}

	return sales, rowErrors
}

// afterIngest executa os efeitos de borda do lote: arquivamento do CSV bruto,
// evento de ingestão e log do total. Nenhum deles falha a requisição.
func (s *SaleUseCase) afterIngest(ctx context.Context, req *IngestSalesReq, sales []domain.Sale, inserted, rejected int) {
	uploadID := uuid.NewString()
	now := time.Now().UTC()

	objectKey := fmt.Sprintf("%s/%s.csv", now.Format("2006/01/02"), uploadID)
	if _, err := s.archive.StoreCSV(ctx, objectKey, req.Data); err != nil {
		s.logger.Warnf("falha ao arquivar CSV %s: %v", req.FileName, err)
	}

	total := decimal.Zero
	for i := range sales {
		line := decimal.NewFromFloat(sales[i].UnitPrice).Mul(decimal.NewFromInt(int64(sales[i].Quantity)))
		total = total.Add(line)
	}

	event := &SalesIngestedEvent{
		UploadID:      uploadID,
		FileName:      req.FileName,
		InsertedCount: inserted,
		RejectedCount: rejected,
		TotalAmount:   money.Format(total),
		IngestedAt:    now,
	}
	if err := s.producer.PublishSalesIngested(ctx, event); err != nil {
		s.logger.Warnf("falha ao publicar evento de ingestão: %v", err)
	}

	s.logger.Infof("lote de vendas processado: arquivo=%s inseridas=%d rejeitadas=%d total=R$ %s",
		req.FileName, inserted, rejected, money.Format(total))
}
