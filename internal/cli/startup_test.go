package cli

import (
	"testing"

	"github.com/atomicstack/tmux-ggg/internal/app"
	"github.com/atomicstack/tmux-ggg/internal/config"
	"github.com/atomicstack/tmux-ggg/internal/tmux"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Name:    "tmux-ggg",
			DataDir: "/data/tmux-ggg",
			Tmux:    tmux.Options{SocketPath: "socket-path"},
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"socket":  "socket-path",
			"dataDir": "/data/tmux-ggg",
		},
		Args: []string{"tmux-ggg", "--socket", "socket-path"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["socket"] != "socket-path" {
		t.Fatalf("expected socket flag %q, got %v", "socket-path", flagsValue["socket"])
	}
	if flagsValue["dataDir"] != "/data/tmux-ggg" {
		t.Fatalf("expected dataDir flag, got %v", flagsValue["dataDir"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected logFile flag, got %v", flagsValue["logFile"])
	}
	if payload["dataDir"] != "/data/tmux-ggg" {
		t.Fatalf("expected data dir in payload, got %v", payload["dataDir"])
	}
	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
}
