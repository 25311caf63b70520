package transcript

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FileSource polls a directory for dropped transcript files. Each .txt file
// is consumed once and renamed with a .processed suffix.
type FileSource struct {
	dir       string
	processed map[string]bool
	mu        sync.Mutex
}

func NewFileSource(dir string) *FileSource {
	return &FileSource{
		dir:       dir,
		processed: make(map[string]bool),
	}
}

func (f *FileSource) Name() string {
	return "file"
}

func (f *FileSource) Start(_ context.Context) error {
	if err := os.MkdirAll(f.dir, 0755); err != nil {
		return fmt.Errorf("creating transcript dir: %w", err)
	}
	return nil
}

func (f *FileSource) Stop() error {
	return nil
}

func (f *FileSource) NextTranscript(ctx context.Context) (string, error) {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-ticker.C:
			text, found, err := f.checkForNewFile()
			if err != nil {
				return "", err
			}
			if found {
				return text, nil
			}
		}
	}
}

func (f *FileSource) checkForNewFile() (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return "", false, fmt.Errorf("reading dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".txt" {
			continue
		}

		path := filepath.Join(f.dir, entry.Name())
		if f.processed[path] {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return "", false, fmt.Errorf("reading file %s: %w", path, err)
		}

		f.processed[path] = true
		os.Rename(path, path+".processed")

		return string(data), true, nil
	}

	return "", false, nil
}
