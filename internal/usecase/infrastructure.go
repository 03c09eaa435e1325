package usecase

import "context"

// FileArchive guarda o arquivo bruto de um upload para auditoria.
type FileArchive interface {
	StoreCSV(ctx context.Context, objectKey string, data []byte) (string, error)
}

// EventProducer publica eventos de ingestão de vendas para consumidores
// externos (relatórios, analytics).
type EventProducer interface {
	PublishSalesIngested(ctx context.Context, event *SalesIngestedEvent) error
}
