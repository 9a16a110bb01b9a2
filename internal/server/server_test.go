package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danmuck/ocppcodec/internal/config"
	"github.com/danmuck/ocppcodec/internal/testutil/testlog"
	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
)

func newTestServer(t *testing.T, mutate func(*config.Config)) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg)
	}
	return New(cfg, zerolog.Nop())
}

func do(t *testing.T, s *Server, method, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rr := httptest.NewRecorder()
	s.HTTPRouter().ServeHTTP(rr, req)

	var out map[string]any
	if rr.Body.Len() > 0 && strings.HasPrefix(rr.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode %s %s response: %v body=%s", method, path, err, rr.Body.String())
		}
	}
	return rr.Code, out
}

func TestHealthAndMetrics(t *testing.T) {
	testlog.Start(t)
	s := newTestServer(t, nil)

	code, body := do(t, s, http.MethodGet, "/health", "")
	if code != http.StatusOK || body["status"] != "ok" || body["protocol"] != "ocpp1.6" {
		t.Fatalf("health: %d %v", code, body)
	}

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	s.HTTPRouter().ServeHTTP(rr, req)
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "ocppcodec_http_requests_total") {
		t.Fatalf("metrics: %d", rr.Code)
	}

	s = newTestServer(t, func(c *config.Config) { c.MetricsEnabled = false })
	if code, _ := do(t, s, http.MethodGet, "/metrics", ""); code != http.StatusNotFound {
		t.Fatalf("expected /metrics disabled, got %d", code)
	}
}

func TestListAndDescribeActions(t *testing.T) {
	testlog.Start(t)
	s := newTestServer(t, nil)

	code, body := do(t, s, http.MethodGet, "/v1/2.0/actions", "")
	if code != http.StatusOK || body["version"] != "ocpp2.0" {
		t.Fatalf("actions: %d %v", code, body)
	}
	actions, _ := body["actions"].([]any)
	if len(actions) != 13 || actions[0] != "Authorize" {
		t.Fatalf("unexpected action list %v", actions)
	}

	code, body = do(t, s, http.MethodGet, "/v1/ocpp1.6/actions/Heartbeat", "")
	if code != http.StatusOK {
		t.Fatalf("describe: %d %v", code, body)
	}
	want := []any{map[string]any{"key": "currentTime", "kind": "timestamp", "required": true}}
	if diff := cmp.Diff(want, body["response"]); diff != "" {
		t.Fatalf("response fields mismatch (-want +got):\n%s", diff)
	}

	if code, _ := do(t, s, http.MethodGet, "/v1/ocpp1.6/actions/Teleport", ""); code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown action, got %d", code)
	}
	if code, _ := do(t, s, http.MethodGet, "/v1/ocpp3/actions", ""); code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown version, got %d", code)
	}
}

func TestDecodeNormalisesFrame(t *testing.T) {
	testlog.Start(t)
	s := newTestServer(t, nil)

	frame := `[3, "19223201", {"currentTime": "2013-02-01T21:53:32.486+01:00", "interval": 300.0, "status": "Accepted", "extra": 1}]`
	code, body := do(t, s, http.MethodPost, "/v1/ocpp2.0/decode?action=BootNotification", frame)
	if code != http.StatusOK {
		t.Fatalf("decode: %d %v", code, body)
	}
	if body["message_type"] != "CallResult" || body["unique_id"] != "19223201" {
		t.Fatalf("unexpected header %v", body)
	}
	want := []any{3.0, "19223201", map[string]any{
		"currentTime": "2013-02-01T20:53:32.486000+00:00",
		"interval":    300.0,
		"status":      "Accepted",
	}}
	if diff := cmp.Diff(want, body["frame"]); diff != "" {
		t.Fatalf("normalised frame mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeFailureCarriesErrorReply(t *testing.T) {
	testlog.Start(t)
	s := newTestServer(t, nil)

	frame := `[2, "abc", "StatusNotification", {"connectorId": 1, "errorCode": "NoError", "status": "Sleeping"}]`
	code, body := do(t, s, http.MethodPost, "/v1/ocpp1.6/decode", frame)
	if code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d %v", code, body)
	}
	if body["class"] != "InvalidEnumValue" || body["path"] != "status" {
		t.Fatalf("unexpected failure body %v", body)
	}
	reply, _ := body["reply"].([]any)
	if len(reply) != 5 || reply[1] != "abc" || reply[2] != "PropertyConstraintViolation" {
		t.Fatalf("unexpected reply %v", body["reply"])
	}

	code, body = do(t, s, http.MethodPost, "/v1/ocpp2.0/decode", `[9, "x"]`)
	if code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
	reply, _ = body["reply"].([]any)
	if len(reply) != 5 || reply[1] != "-1" || reply[2] != "MessageTypeNotSupported" {
		t.Fatalf("unexpected reply %v", body["reply"])
	}
}

func TestDecodeRejectsOversizedBody(t *testing.T) {
	testlog.Start(t)
	s := newTestServer(t, func(c *config.Config) { c.MaxFrameBytes = 16 })
	code, _ := do(t, s, http.MethodPost, "/v1/ocpp1.6/decode", `[2,"1","Heartbeat",{}]`)
	if code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", code)
	}
}

func TestCorsAllowsConfiguredOrigin(t *testing.T) {
	testlog.Start(t)
	s := newTestServer(t, func(c *config.Config) { c.CorsOrigins = []string{"https://ops.example.com/"} })

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://ops.example.com")
	rr := httptest.NewRecorder()
	s.HTTPRouter().ServeHTTP(rr, req)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://ops.example.com" {
		t.Fatalf("unexpected allow origin %q", got)
	}
}
