package ragclient

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

func TestNoopTracer(t *testing.T) {
	tracer := &NoopTracer{}
	ctx, span := tracer.StartSpan(context.Background(), "ragclient.Search")

	assert.NotNil(t, ctx)
	_, ok := span.(*NoopSpan)
	assert.True(t, ok)

	span.SetTag("http.status_code", "200")
	span.Finish()
}

func TestOpenTelemetryTracer(t *testing.T) {
	tp := noop.NewTracerProvider()
	tracer := NewOpenTelemetryTracer(tp.Tracer("test"))

	ctx, span := tracer.StartSpan(context.Background(), "ragclient.Search")

	assert.NotNil(t, ctx)
	_, ok := span.(*OpenTelemetrySpan)
	assert.True(t, ok)

	span.SetTag("error_code", "SYSTEM_TIMEOUT")
	span.Finish()
}

// recordingTracer captures span names and tags for assertions.
type recordingTracer struct {
	mu    sync.Mutex
	spans []*recordingSpan
}

type recordingSpan struct {
	name     string
	tags     map[string]string
	finished bool
}

func (t *recordingTracer) StartSpan(ctx context.Context, operationName string) (context.Context, Span) {
	t.mu.Lock()
	defer t.mu.Unlock()
	span := &recordingSpan{name: operationName, tags: map[string]string{}}
	t.spans = append(t.spans, span)
	return ctx, span
}

func (s *recordingSpan) Finish() { s.finished = true }
func (s *recordingSpan) SetTag(key string, value interface{}) {
	if str, ok := value.(string); ok {
		s.tags[key] = str
	} else {
		s.tags[key] = "true"
	}
}

func TestClientTagsFailedSpans(t *testing.T) {
	tracer := &recordingTracer{}
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error_code":"AUTH_TOKEN_EXPIRED","message":"x","trace_id":"trace-7"}`))
	}), WithTracer(tracer))

	_, err := client.Search(context.Background(), SearchRequest{Query: "q"})
	require.Error(t, err)

	require.Len(t, tracer.spans, 1)
	span := tracer.spans[0]
	assert.Equal(t, "ragclient.Search", span.name)
	assert.True(t, span.finished)
	assert.Equal(t, "AUTH_TOKEN_EXPIRED", span.tags["error_code"])
	assert.Equal(t, "trace-7", span.tags["correlation_id"])
	assert.Equal(t, "401", span.tags["http.status_code"])
}
