package minio

import (
	"bytes"
	"context"

	config "github.com/stylesync/go-backend/internal/cfg"
	"github.com/stylesync/go-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

const csvContentType = "text/csv"

// UploadRepo arquiva os CSVs brutos de venda no MinIO para auditoria.
type UploadRepo struct {
	mc  *minio.Client
	cfg *config.MinIOCfg
}

func NewUploadRepo(mc *minio.Client, cfg *config.MinIOCfg) *UploadRepo {
	return &UploadRepo{
		mc:  mc,
		cfg: cfg,
	}
}

// StoreCSV grava o arquivo no bucket de uploads e devolve a chave do objeto.
func (u *UploadRepo) StoreCSV(ctx context.Context, objectKey string, data []byte) (string, error) {
	reader := bytes.NewReader(data)

	info, err := u.mc.PutObject(ctx, u.cfg.BucketName, objectKey, reader, int64(len(data)), minio.PutObjectOptions{
		ContentType: csvContentType,
	})
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return info.Key, nil
}
