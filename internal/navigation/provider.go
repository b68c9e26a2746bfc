package navigation

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
)

// Provider serves the current menu. When backed by a file it can reload the
// menu on demand or whenever the file changes.
type Provider struct {
	mu   sync.RWMutex
	menu Menu
	fs   afero.Fs
	path string
}

// NewStaticProvider serves a fixed menu.
func NewStaticProvider(m Menu) *Provider {
	return &Provider{menu: m}
}

// NewFileProvider loads the menu at path from fs.
func NewFileProvider(fs afero.Fs, path string) (*Provider, error) {
	m, err := Load(fs, path)
	if err != nil {
		return nil, err
	}
	return &Provider{menu: m, fs: fs, path: path}, nil
}

// Menu returns the current menu.
func (p *Provider) Menu() Menu {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.menu
}

// Reload re-reads the backing file. On error the previous menu stays in place.
func (p *Provider) Reload() error {
	if p.fs == nil {
		return nil
	}
	m, err := Load(p.fs, p.path)
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.menu = m
	p.mu.Unlock()
	slog.Info("Navigation menu reloaded", "path", p.path, "sections", len(m.Sections))
	return nil
}

// Watch reloads the menu whenever the backing file changes on disk. It blocks
// until ctx is canceled. The directory is watched rather than the file so that
// editors that replace files on save are picked up.
func (p *Provider) Watch(ctx context.Context) error {
	if p.fs == nil {
		<-ctx.Done()
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file system watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(p.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	target := filepath.Clean(p.path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := p.Reload(); err != nil {
				slog.Warn("Ignoring invalid navigation menu", "path", p.path, "error", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("Navigation watcher error", "error", err)
		}
	}
}
