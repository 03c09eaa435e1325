package cfg

import (
	"strings"
	"testing"
	"time"

	"github.com/stylesync/go-backend/pkg/logger"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "segredo")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("KAFKA_TOPIC", "sales.ingested")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MONGO_URI", "")
	t.Setenv("MONGO_DATABASE", "")
	t.Setenv("TOKEN_TTL", "")
	t.Setenv("OPERATOR_USER", "")

	cfg, err := Load(logger.NewNopLogger())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Mongo.URI != "mongodb://localhost:27017" {
		t.Errorf("Mongo.URI = %q", cfg.Mongo.URI)
	}
	if cfg.Mongo.Database != "stylesync" {
		t.Errorf("Mongo.Database = %q", cfg.Mongo.Database)
	}
	if cfg.Auth.TokenTTL != 30*time.Minute {
		t.Errorf("Auth.TokenTTL = %v", cfg.Auth.TokenTTL)
	}
	if cfg.Auth.OperatorUser != "admin" {
		t.Errorf("Auth.OperatorUser = %q", cfg.Auth.OperatorUser)
	}
	if len(cfg.Kafka.Brokers) != 2 {
		t.Errorf("Kafka.Brokers = %v", cfg.Kafka.Brokers)
	}
	if cfg.Upload.MaxFileSize != 20<<20 {
		t.Errorf("Upload.MaxFileSize = %d", cfg.Upload.MaxFileSize)
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("MONGO_DATABASE", "stylesync_test")
	t.Setenv("TOKEN_TTL", "1h")
	t.Setenv("OPERATOR_USER", "gerente")

	cfg, err := Load(logger.NewNopLogger())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Mongo.Database != "stylesync_test" {
		t.Errorf("Mongo.Database = %q", cfg.Mongo.Database)
	}
	if cfg.Auth.TokenTTL != time.Hour {
		t.Errorf("Auth.TokenTTL = %v", cfg.Auth.TokenTTL)
	}
	if cfg.Auth.OperatorUser != "gerente" {
		t.Errorf("Auth.OperatorUser = %q", cfg.Auth.OperatorUser)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	tests := []struct {
		name  string
		unset string
	}{
		{name: "sem JWT_SECRET", unset: "JWT_SECRET"},
		{name: "sem KAFKA_BROKERS", unset: "KAFKA_BROKERS"},
		{name: "sem KAFKA_TOPIC", unset: "KAFKA_TOPIC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.unset, "")

			if _, err := Load(logger.NewNopLogger()); err == nil {
				t.Fatalf("Load succeeded without %s", tt.unset)
			}
		})
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TOKEN_TTL", "trinta minutos")

	_, err := Load(logger.NewNopLogger())
	if err == nil {
		t.Fatal("Load succeeded with malformed TOKEN_TTL")
	}
	if !strings.Contains(err.Error(), "duration") {
		t.Errorf("err = %v, want a duration parse error", err)
	}
}
