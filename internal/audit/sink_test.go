package audit_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cortesec-admin/internal/audit"
	"cortesec-admin/internal/messaging/kafka/producer"
	"cortesec-admin/internal/shared/backend"

	"github.com/stretchr/testify/assert"
)

func TestHTTPSink_Send(t *testing.T) {
	var got struct {
		Logs []audit.Event `json:"logs"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, audit.LogFrontendPath, r.URL.Path)
		assert.Equal(t, "Bearer svc-token", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client, err := backend.NewClient(srv.URL, time.Second)
	assert.NoError(t, err)

	sink := audit.NewHTTPSink(client, "svc-token")
	err = sink.Send(context.Background(), []audit.Event{
		{ID: "a", Tipo: audit.EventNavigation, Accion: "ver roles"},
		{ID: "b", Tipo: audit.EventExport, Accion: "exportar"},
	})

	assert.NoError(t, err)
	if assert.Len(t, got.Logs, 2) {
		assert.Equal(t, audit.EventExport, got.Logs[1].Tipo)
	}
}

func TestHTTPSink_BackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client, err := backend.NewClient(srv.URL, time.Second)
	assert.NoError(t, err)

	err = audit.NewHTTPSink(client, "").Send(context.Background(), []audit.Event{{ID: "a"}})
	assert.Error(t, err)
}

type fakePublisher struct {
	envs []producer.Envelope
}

func (p *fakePublisher) Publish(_ context.Context, env producer.Envelope) error {
	p.envs = append(p.envs, env)
	return nil
}

func TestKafkaSink_Send(t *testing.T) {
	pub := &fakePublisher{}
	sink := audit.NewKafkaSink(pub, "cortesec-admin")

	err := sink.Send(context.Background(), []audit.Event{
		{ID: "a", Tenant: "t-1", Tipo: audit.EventSearch},
		{ID: "b", Tenant: "t-1", Tipo: audit.EventFilter},
	})

	assert.NoError(t, err)
	if assert.Len(t, pub.envs, 1) {
		env := pub.envs[0]
		assert.Equal(t, "t-1", env.Key)
		assert.Equal(t, "cortesec-admin", env.Source)

		var payload struct {
			Logs []audit.Event `json:"logs"`
		}
		assert.NoError(t, json.Unmarshal(env.Payload, &payload))
		assert.Len(t, payload.Logs, 2)
	}
}
