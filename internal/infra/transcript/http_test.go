package transcript_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"zari/internal/infra/transcript"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHTTPSource_ReceiveTranscript(t *testing.T) {
	source := transcript.NewHTTPSource(":0", "", discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := source.Start(ctx); err != nil {
		t.Fatalf("starting source: %v", err)
	}
	defer source.Stop()

	go func() {
		time.Sleep(100 * time.Millisecond)
		source.Inject("turn on the kitchen lights")
	}()

	received, err := source.NextTranscript(ctx)
	if err != nil {
		t.Fatalf("receiving transcript: %v", err)
	}

	if received != "turn on the kitchen lights" {
		t.Errorf("transcript = %q, want %q", received, "turn on the kitchen lights")
	}
}

func TestHTTPSource_CommandEndpoint(t *testing.T) {
	source := transcript.NewHTTPSource(":0", "", discardLogger())
	handler := source.Handler()

	req := httptest.NewRequest(http.MethodPost, "/command", strings.NewReader("open the garage"))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Errorf("status code: got %d, want %d", rec.Code, http.StatusAccepted)
	}
}

func TestHTTPSource_CommandEndpointRejectsEmptyBody(t *testing.T) {
	source := transcript.NewHTTPSource(":0", "", discardLogger())
	handler := source.Handler()

	req := httptest.NewRequest(http.MethodPost, "/command", strings.NewReader("   "))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status code: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHTTPSource_CommandEndpointWithToken(t *testing.T) {
	authToken := "test-secret-token-123"
	source := transcript.NewHTTPSource(":0", authToken, discardLogger())
	handler := source.Handler()

	tests := []struct {
		name       string
		token      string
		method     string
		wantStatus int
	}{
		{
			name:       "valid token in header",
			token:      authToken,
			method:     "header",
			wantStatus: http.StatusAccepted,
		},
		{
			name:       "valid token in query",
			token:      authToken,
			method:     "query",
			wantStatus: http.StatusAccepted,
		},
		{
			name:       "invalid token",
			token:      "wrong-token",
			method:     "header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing token",
			token:      "",
			method:     "header",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := strings.NewReader("turn on the lights")
			var req *http.Request

			if tt.method == "query" {
				req = httptest.NewRequest(http.MethodPost, "/command?token="+tt.token, body)
			} else {
				req = httptest.NewRequest(http.MethodPost, "/command", body)
				if tt.token != "" {
					req.Header.Set("X-Auth-Token", tt.token)
				}
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status code: got %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestHTTPSource_HealthEndpoint(t *testing.T) {
	source := transcript.NewHTTPSource(":0", "", discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := source.Start(ctx); err != nil {
		t.Fatalf("starting source: %v", err)
	}
	defer source.Stop()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	source.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status code: got %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("health body = %q, want status ok", rec.Body.String())
	}
}

func TestRateLimiter_Allow(t *testing.T) {
	rl := transcript.NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !rl.Allow("1.2.3.4") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.Allow("1.2.3.4") {
		t.Error("request over the limit should be rejected")
	}
	if !rl.Allow("5.6.7.8") {
		t.Error("other IPs have their own bucket")
	}
}
