package tests

import (
	"context"
	"io"
	"log/slog"
	"net"
	"sync"
	"testing"
	"time"

	"zari/internal/application"
	"zari/internal/infra/bridge"
	"zari/internal/infra/sim"
	"zari/internal/infra/transcript"
	"zari/internal/nlu"
)

type scriptedSource struct {
	transcripts []string
	index       int
}

func (s *scriptedSource) Start(_ context.Context) error { return nil }
func (s *scriptedSource) Stop() error                   { return nil }
func (s *scriptedSource) Name() string                  { return "scripted" }

func (s *scriptedSource) NextTranscript(ctx context.Context) (string, error) {
	if s.index >= len(s.transcripts) {
		<-ctx.Done()
		return "", ctx.Err()
	}
	text := s.transcripts[s.index]
	s.index++
	return text, nil
}

type fakeSerial struct {
	mu    sync.Mutex
	lines []string
}

func (f *fakeSerial) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lines = append(f.lines, string(p))
	return len(p), nil
}

func (f *fakeSerial) Lines() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.lines))
	copy(out, f.lines)
	return out
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition never became true")
}

func TestIntegration_SimulatorPipeline(t *testing.T) {
	logger := discardLogger()

	source := &scriptedSource{
		transcripts: []string{
			"turn on the kitchen lights",
			"enciende el ventilador de la cocina",
			"set thermostat to 68",
			"open the garage",
			"what time is it", // unknown, must be skipped
		},
	}

	store := sim.NewStore()
	parser := nlu.NewParser(nlu.DefaultLexicon())
	executor := sim.NewExecutor(store, logger)

	assistant := application.NewAssistant(source, parser, executor, &application.NoopNotifier{}, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		_ = assistant.Run(ctx)
	}()

	waitFor(t, 5*time.Second, func() bool {
		state := store.Snapshot()
		return state["light:kitchen"] == true &&
			state["fan:kitchen"] == true &&
			state["thermostat:home"] == 68 &&
			state["garage:door"] == "open"
	})

	cancel()

	state := store.Snapshot()
	if state["light:living room"] != false {
		t.Errorf("living room light should be untouched, got %v", state["light:living room"])
	}
}

func TestIntegration_HardwarePipelineOverBridge(t *testing.T) {
	logger := discardLogger()

	hw := &fakeSerial{}
	server := bridge.NewServer(hw, logger)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listening: %v", err)
	}

	serverCtx, stopServer := context.WithCancel(context.Background())
	defer stopServer()
	go func() {
		_ = server.Serve(serverCtx, ln)
	}()

	source := &scriptedSource{
		transcripts: []string{
			"apaga la luz de la sala",
			"set thermostat to 71",
		},
	}

	parser := nlu.NewParser(nlu.DefaultLexicon())
	client := bridge.NewClient(ln.Addr().String(), time.Second)
	executor := bridge.NewExecutor(client, logger)

	assistant := application.NewAssistant(source, parser, executor, &application.NoopNotifier{}, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		_ = assistant.Run(ctx)
	}()

	waitFor(t, 5*time.Second, func() bool {
		return len(hw.Lines()) >= 2
	})

	cancel()

	want := map[string]bool{
		"LIGHT:living_room:OFF\n": true,
		"THERMOSTAT:home:71\n":    true,
	}
	for _, line := range hw.Lines() {
		if !want[line] {
			t.Errorf("unexpected hardware line %q", line)
		}
	}
}

func TestIntegration_HTTPTranscriptToSimulator(t *testing.T) {
	logger := discardLogger()

	source := transcript.NewHTTPSource(":0", "", logger)
	store := sim.NewStore()
	parser := nlu.NewParser(nlu.DefaultLexicon())
	executor := sim.NewExecutor(store, logger)

	assistant := application.NewAssistant(source, parser, executor, &application.NoopNotifier{}, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		_ = assistant.Run(ctx)
	}()

	time.Sleep(100 * time.Millisecond)
	source.Inject("abre la puerta del garaje")

	waitFor(t, 5*time.Second, func() bool {
		return store.Snapshot()["garage:door"] == "open"
	})
}
