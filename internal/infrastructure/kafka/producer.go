package kafka

import (
	"context"
	"encoding/json"
	"time"

	config "github.com/stylesync/go-backend/internal/cfg"
	"github.com/stylesync/go-backend/internal/usecase"
	"github.com/stylesync/go-backend/pkg/e"
	"github.com/stylesync/go-backend/pkg/jitter"
	"github.com/stylesync/go-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/segmentio/kafka-go"
)

const (
	publishMaxRetries = 3
	backoffBase       = 200 * time.Millisecond
	backoffMax        = 2 * time.Second
)

// Producer publica eventos de ingestão de vendas no Kafka.
type Producer struct {
	writer *kafka.Writer
	logger logger.Logger
	cfg    *config.KafkaCfg
}

func NewProducer(logger logger.Logger, cfg *config.KafkaCfg) (*Producer, error) {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchSize:    10,
		BatchTimeout: 500 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Warnf("Kafka producer error: %s", err.Error())
			}
		},
	}

	return &Producer{
		writer: writer,
		logger: logger,
		cfg:    cfg,
	}, nil
}

// PublishSalesIngested serializa o evento e escreve no tópico, com algumas
// tentativas espaçadas por backoff exponencial com jitter.
func (p *Producer) PublishSalesIngested(ctx context.Context, event *usecase.SalesIngestedEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	msg := kafka.Message{
		Key:   []byte(event.UploadID),
		Value: value,
	}

	var lastErr error
	for attempt := 0; attempt < publishMaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return e.Wrap(whereami.WhereAmI(), ctx.Err())
			case <-time.After(jitter.ExponentialBackoff(backoffBase, backoffMax, attempt-1, jitter.DefaultJitter)):
			}
		}

		if lastErr = p.writer.WriteMessages(ctx, msg); lastErr == nil {
			return nil
		}
	}

	return e.Wrap(whereami.WhereAmI(), lastErr)
}

// EnsureTopic garante a existência do tópico na subida da aplicação.
func (p *Producer) EnsureTopic(timeout time.Duration) error {
	conn, err := kafka.Dial(p.cfg.NetworkMode, p.cfg.Brokers[0])
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer conn.Close()

	partitions, err := conn.ReadPartitions(p.cfg.Topic)
	if err == nil && len(partitions) > 0 {
		return nil
	}

	done := make(chan error, 1)
	go func() {
		done <- conn.CreateTopics(kafka.TopicConfig{
			Topic:             p.cfg.Topic,
			NumPartitions:     p.cfg.Partitions,
			ReplicationFactor: p.cfg.ReplicationFactor,
		})
	}()

	select {
	case err := <-done:
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
		return nil
	case <-time.After(timeout):
		return e.Wrap(whereami.WhereAmI(), context.DeadlineExceeded)
	}
}

// Close encerra o writer, liberando mensagens pendentes.
func (p *Producer) Close() error {
	return p.writer.Close()
}
