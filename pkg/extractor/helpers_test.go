package extractor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/kataras/hermes/pkg/design"
)

// fakeHost renders every node as its id bytes, optionally after a per-node delay.
// Nodes listed in fail return an error instead.
type fakeHost struct {
	delay map[string]time.Duration
	fail  map[string]bool

	mu       sync.Mutex
	settings []design.ExportSettings
}

func (h *fakeHost) ExportImage(ctx context.Context, node *design.Node, settings design.ExportSettings) ([]byte, error) {
	h.mu.Lock()
	h.settings = append(h.settings, settings)
	h.mu.Unlock()

	if d := h.delay[node.ID]; d > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(d):
		}
	}

	if h.fail[node.ID] {
		return nil, errors.New("render failed")
	}

	return []byte(node.ID), nil
}

func (h *fakeHost) Base64Encode(data []byte) string {
	return design.EncodeBase64(data)
}

// recordingLogger collects log lines.
type recordingLogger struct {
	mu     sync.Mutex
	errors []string
	infos  []string
}

func (l *recordingLogger) Infof(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Warnf(format string, args ...any) {}

func (l *recordingLogger) Errorf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}

func rgb(r, g, b float64) *design.RGB {
	return &design.RGB{R: r, G: g, B: b}
}
