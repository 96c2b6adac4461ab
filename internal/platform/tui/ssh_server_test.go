package tui

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func testSSHConfig(t *testing.T) SSHServerConfig {
	t.Helper()
	dir := t.TempDir()
	return SSHServerConfig{
		Address:     "127.0.0.1:0",
		HostKeyPath: filepath.Join(dir, "keys", "host_key"),
		DBPath:      filepath.Join(dir, "history.db"),
		IdleTimeout: time.Minute,
		GridSize:    8,
		ToastTTL:    time.Second,
	}
}

func TestNewSSHServerShutdownClosesStore(t *testing.T) {
	cfg := testSSHConfig(t)
	srv, err := NewSSHServer(cfg, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer: %v", err)
	}
	if srv.store == nil {
		t.Fatal("expected the history database to be open")
	}
	if _, err := os.Stat(cfg.HostKeyPath); err != nil {
		t.Errorf("host key not generated: %v", err)
	}

	if err := srv.Shutdown(); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if _, err := srv.store.RecentRuns(1); err == nil {
		t.Error("store should be closed after Shutdown")
	}
}

func TestNewSSHServerErrorOpensNoStore(t *testing.T) {
	cfg := testSSHConfig(t)

	// A regular file where the host key directory should be.
	blocker := filepath.Join(filepath.Dir(cfg.DBPath), "keys")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := NewSSHServer(cfg, log.New(io.Discard)); err == nil {
		t.Fatal("expected an error for an unusable host key directory")
	}
	if _, err := os.Stat(cfg.DBPath); !os.IsNotExist(err) {
		t.Errorf("history database should not be opened on error, stat err = %v", err)
	}
}
