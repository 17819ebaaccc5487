package tui

import (
	"path/filepath"
	"testing"
)

func TestNewSSHServer(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "keys", "host_key")
	cfg.LevelData = []byte("name: demo\ncells:\n  - {q: 0, r: 0, kind: marked}\n")

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer failed: %v", err)
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q, expected 127.0.0.1:0", srv.Addr())
	}
}

func TestNewSSHServerRejectsBadLevel(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")
	cfg.LevelData = []byte("cells:\n  - {q: 0, r: 0, kind: mine}\n")

	if _, err := NewSSHServer(cfg); err == nil {
		t.Error("a seed level with an unknown kind should be rejected")
	}
}
