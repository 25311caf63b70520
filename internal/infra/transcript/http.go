// Package transcript provides sources of plain-text transcripts for the
// assistant pipeline. Sources carry text only; audio capture and speech
// recognition happen upstream, outside this system.
package transcript

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"
)

// HTTPSource receives transcripts over HTTP: the upstream recognizer POSTs
// the recognized text and this source queues it for the pipeline.
type HTTPSource struct {
	addr        string
	server      *http.Server
	textChan    chan string
	logger      *slog.Logger
	mu          sync.Mutex
	running     bool
	mux         *http.ServeMux
	closeOnce   sync.Once
	rateLimiter *RateLimiter
	authToken   string
}

func NewHTTPSource(addr string, authToken string, logger *slog.Logger) *HTTPSource {
	h := &HTTPSource{
		addr:        addr,
		textChan:    make(chan string, 10),
		logger:      logger,
		mux:         http.NewServeMux(),
		rateLimiter: NewRateLimiter(30, time.Minute), // 30 requests per minute per IP
		authToken:   authToken,
	}
	h.mux.HandleFunc("POST /command", h.rateLimiter.Middleware(h.handleCommand))
	// No rate limiting on health check
	h.mux.HandleFunc("GET /health", h.handleHealth)
	return h
}

func (h *HTTPSource) Name() string {
	return "http"
}

func (h *HTTPSource) Start(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.running {
		return nil
	}

	h.server = &http.Server{
		Addr:         h.addr,
		Handler:      h.mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		h.logger.Info("HTTP transcript server starting", "addr", h.addr)
		if err := h.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			h.logger.Error("HTTP server error", "error", err)
		}
	}()

	h.running = true
	return nil
}

func (h *HTTPSource) Stop() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.running {
		return nil
	}

	if h.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := h.server.Shutdown(ctx); err != nil {
			h.logger.Warn("graceful shutdown failed, forcing close", "error", err)
			if err := h.server.Close(); err != nil {
				return fmt.Errorf("closing server: %w", err)
			}
		}
	}

	h.closeOnce.Do(func() {
		close(h.textChan)
	})
	h.running = false
	return nil
}

func (h *HTTPSource) NextTranscript(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case text, ok := <-h.textChan:
		if !ok {
			return "", fmt.Errorf("transcript channel closed")
		}
		return text, nil
	}
}

func (h *HTTPSource) Handler() http.Handler {
	return h.mux
}

// Inject queues a transcript directly, bypassing HTTP. Test hook.
func (h *HTTPSource) Inject(text string) {
	select {
	case h.textChan <- text:
	default:
	}
}

func (h *HTTPSource) handleCommand(w http.ResponseWriter, r *http.Request) {
	if h.authToken != "" {
		token := r.Header.Get("X-Auth-Token")
		if token == "" {
			token = r.URL.Query().Get("token")
		}
		if token != h.authToken {
			h.logger.Warn("unauthorized command request", "remote_addr", r.RemoteAddr)
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, 4096))
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	text := strings.TrimSpace(string(data))
	if text == "" {
		http.Error(w, "empty transcript", http.StatusBadRequest)
		return
	}

	select {
	case h.textChan <- text:
		h.logger.Info("received transcript via HTTP", "text", text)
		w.WriteHeader(http.StatusAccepted)
		fmt.Fprintf(w, `{"status":"received","chars":%d}`, len(text))
	default:
		http.Error(w, "queue full, try again", http.StatusServiceUnavailable)
	}
}

func (h *HTTPSource) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	running := h.running
	queueSize := len(h.textChan)
	h.mu.Unlock()

	status := "ok"
	statusCode := http.StatusOK

	if !running {
		status = "not_ready"
		statusCode = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	fmt.Fprintf(w, `{"status":"%s","running":%t,"queue_size":%d}`, status, running, queueSize)
}
