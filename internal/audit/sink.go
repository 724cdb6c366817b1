package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cortesec-admin/internal/messaging/kafka/producer"
	"cortesec-admin/internal/shared/contextutil"

	"go.uber.org/zap"
)

const LogFrontendPath = "/api/auditoria/log-frontend/"

type batchPayload struct {
	Logs []Event `json:"logs"`
}

// Poster is the backend client call used by HTTPSink.
type Poster interface {
	Post(ctx context.Context, path string, body, out any) error
}

// HTTPSink posts batches to the backend audit endpoint.
type HTTPSink struct {
	client Poster
	token  string
}

// NewHTTPSink builds the backend sink. token, when set, authenticates the
// console itself since batches are sent outside any user request.
func NewHTTPSink(client Poster, token string) *HTTPSink {
	return &HTTPSink{client: client, token: token}
}

func (s *HTTPSink) Send(ctx context.Context, batch []Event) error {
	if s.token != "" {
		ctx = contextutil.WithAccessToken(ctx, s.token)
	}
	return s.client.Post(ctx, LogFrontendPath, batchPayload{Logs: batch}, nil)
}

// Publisher is satisfied by *producer.Publisher.
type Publisher interface {
	Publish(ctx context.Context, env producer.Envelope) error
}

// KafkaSink publishes one message per batch keyed by the tenant of the
// first event.
type KafkaSink struct {
	publisher Publisher
	source    string
}

func NewKafkaSink(publisher Publisher, source string) *KafkaSink {
	return &KafkaSink{publisher: publisher, source: source}
}

func (s *KafkaSink) Send(ctx context.Context, batch []Event) error {
	payload, err := json.Marshal(batchPayload{Logs: batch})
	if err != nil {
		return fmt.Errorf("encode audit batch: %w", err)
	}

	key := ""
	if len(batch) > 0 {
		key = batch[0].Tenant
	}

	return s.publisher.Publish(ctx, producer.Envelope{
		Key:       key,
		EventType: "audit.frontend.batch",
		Source:    s.source,
		Payload:   payload,
	})
}

// LogSink writes batches to the structured log. Used when no backend audit
// destination is configured.
type LogSink struct {
	logger *zap.Logger
}

func NewLogSink(logger ...*zap.Logger) *LogSink {
	l := zap.L().Named("audit")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit")
	}
	return &LogSink{logger: l}
}

func (s *LogSink) Send(_ context.Context, batch []Event) error {
	for _, e := range batch {
		s.logger.Info("audit event",
			zap.String("id", e.ID),
			zap.String("timestamp", e.Timestamp.Format(time.RFC3339)),
			zap.String("tipo", string(e.Tipo)),
			zap.String("accion", e.Accion),
			zap.String("usuario", e.Usuario),
			zap.Any("detalle", e.Detalle),
		)
	}
	return nil
}
