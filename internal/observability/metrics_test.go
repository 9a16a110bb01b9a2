package observability

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danmuck/ocppcodec/internal/protocol"
	"github.com/danmuck/ocppcodec/internal/protocol/envelope"
	"github.com/danmuck/ocppcodec/internal/testutil/testlog"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
)

func TestRegisterMetricsAndRecordersAreSafe(t *testing.T) {
	testlog.Start(t)
	RegisterMetrics()
	RegisterMetrics()

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/health", "200"))
	RecordHTTPRequest("GET", "/health", 200, 12*time.Millisecond)
	if got := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/health", "200")); got != before+1 {
		t.Fatalf("expected counter %v, got %v", before+1, got)
	}
}

func TestCodecObserverCountsResults(t *testing.T) {
	testlog.Start(t)
	c := envelope.New(protocol.V16)
	c.Observer = CodecObserver{}

	ok := codecFrames.WithLabelValues("decode", "ocpp1.6", "Call", "Heartbeat", "ok")
	unknown := codecFrames.WithLabelValues("decode", "ocpp1.6", "unknown", "unknown", "error")
	unknownErrs := codecErrors.WithLabelValues("decode", "ocpp1.6", "UnknownAction")
	malformedErrs := codecErrors.WithLabelValues("decode", "ocpp1.6", "MalformedEnvelope")
	okBefore, unknownBefore := testutil.ToFloat64(ok), testutil.ToFloat64(unknown)
	unknownErrsBefore, malformedBefore := testutil.ToFloat64(unknownErrs), testutil.ToFloat64(malformedErrs)

	if _, err := c.Decode([]byte(`[2,"1","Heartbeat",{}]`), ""); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, err := c.Decode([]byte(`[2,"2","Teleport",{}]`), ""); !errors.Is(err, protocol.ErrUnknownAction) {
		t.Fatalf("expected unknown action, got %v", err)
	}
	if _, err := c.Decode([]byte(`[9]`), ""); !errors.Is(err, protocol.ErrMalformedEnvelope) {
		t.Fatalf("expected malformed envelope, got %v", err)
	}

	if got := testutil.ToFloat64(ok); got != okBefore+1 {
		t.Fatalf("ok frames: got %v want %v", got, okBefore+1)
	}
	if got := testutil.ToFloat64(unknown); got != unknownBefore+1 {
		t.Fatalf("unknown action frames: got %v want %v", got, unknownBefore+1)
	}
	if got := testutil.ToFloat64(unknownErrs); got != unknownErrsBefore+1 {
		t.Fatalf("unknown action errors: got %v want %v", got, unknownErrsBefore+1)
	}
	if got := testutil.ToFloat64(malformedErrs); got != malformedBefore+1 {
		t.Fatalf("malformed errors: got %v want %v", got, malformedBefore+1)
	}
}

func TestCodecObserverBoundsActionLabel(t *testing.T) {
	testlog.Start(t)
	c := envelope.New(protocol.V16)
	c.Observer = CodecObserver{}
	c.Limits.MaxFrameBytes = 64

	unknown := codecFrames.WithLabelValues("decode", "ocpp1.6", "unknown", "unknown", "error")
	before := testutil.ToFloat64(unknown)
	series := testutil.CollectAndCount(codecFrames)

	const n = 50
	for i := 0; i < n; i++ {
		if _, err := c.Decode([]byte("not json"), fmt.Sprintf("junk-%d", i)); !errors.Is(err, protocol.ErrMalformedEnvelope) {
			t.Fatalf("expected malformed envelope, got %v", err)
		}
	}
	oversized := []byte(`[2,"1","Heartbeat",{"pad":"` + strings.Repeat("x", 64) + `"}]`)
	if _, err := c.Decode(oversized, "junk-oversized"); !errors.Is(err, envelope.ErrFrameTooLarge) {
		t.Fatalf("expected frame too large, got %v", err)
	}

	if got := testutil.ToFloat64(unknown); got != before+n+1 {
		t.Fatalf("unknown action frames: got %v want %v", got, before+n+1)
	}
	if got := testutil.CollectAndCount(codecFrames); got != series {
		t.Fatalf("caller actions created series: %d -> %d", series, got)
	}
	if got := actionLabel(protocol.V16, "Heartbeat"); got != "Heartbeat" {
		t.Fatalf("catalog action relabelled to %q", got)
	}
	if got := actionLabel(protocol.V20, "DiagnosticsStatusNotification"); got != "unknown" {
		t.Fatalf("1.6-only action under 2.0 labelled %q", got)
	}
}

func TestErrorClassFallbacks(t *testing.T) {
	testlog.Start(t)
	if got := errorClass(envelope.ErrFrameTooLarge); got != "FrameTooLarge" {
		t.Fatalf("got %q", got)
	}
	if got := errorClass(errors.New("boom")); got != "Other" {
		t.Fatalf("got %q", got)
	}
}

func TestMiddlewareLogsAndCounts(t *testing.T) {
	testlog.Start(t)
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	r := gin.New()
	r.Use(RequestLogger(logger), RequestMetricsMiddleware())
	r.GET("/v1/:version/actions", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	counter := httpRequests.WithLabelValues("GET", "/v1/:version/actions", "418")
	before := testutil.ToFloat64(counter)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/ocpp1.6/actions", nil))
	if rr.Code != http.StatusTeapot {
		t.Fatalf("status=%d", rr.Code)
	}
	if got := testutil.ToFloat64(counter); got != before+1 {
		t.Fatalf("expected route counter %v, got %v", before+1, got)
	}
	line := buf.String()
	if !strings.Contains(line, `"level":"warn"`) || !strings.Contains(line, `"path":"/v1/:version/actions"`) {
		t.Fatalf("unexpected log line %s", line)
	}
}
