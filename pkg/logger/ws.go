package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ReopenableWriteSyncer is the zap sink for a service log file. Reload swaps
// in a fresh handle on the same path after logrotate has moved the old file.
type ReopenableWriteSyncer struct {
	mu     sync.RWMutex
	path   string
	file   *os.File
	closed bool
}

func NewReopenableWriteSyncer(path string) (*ReopenableWriteSyncer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("NewReopenableWriteSyncer: %w", err)
	}
	ws := &ReopenableWriteSyncer{path: path}
	if err := ws.Reload(); err != nil {
		return nil, err
	}
	return ws, nil
}

func openLogFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// Reload opens the path again before releasing the previous handle, so a
// failed reopen keeps logging to the rotated file.
func (ws *ReopenableWriteSyncer) Reload() error {
	next, err := openLogFile(ws.path)
	if err != nil {
		return fmt.Errorf("ReopenableWriteSyncer.Reload: %w", err)
	}

	ws.mu.Lock()
	prev := ws.file
	ws.file = next
	ws.closed = false
	ws.mu.Unlock()

	if prev != nil {
		if err = prev.Close(); err != nil {
			return fmt.Errorf("ReopenableWriteSyncer.Reload: %w", err)
		}
	}
	return nil
}

func (ws *ReopenableWriteSyncer) Write(p []byte) (int, error) {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	if ws.closed {
		return 0, os.ErrClosed
	}
	return ws.file.Write(p)
}

func (ws *ReopenableWriteSyncer) Sync() error {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	if ws.closed {
		return os.ErrClosed
	}
	return ws.file.Sync()
}

func (ws *ReopenableWriteSyncer) Close() error {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	if ws.closed {
		return nil
	}
	ws.closed = true
	return ws.file.Close()
}
