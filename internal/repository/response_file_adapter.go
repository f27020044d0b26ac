package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"starter-pack-quiz/internal/domain"
	"starter-pack-quiz/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	recordPrefix = "resp_"
	recordSuffix = ".json"

	// readConcurrency bounds parallel record reads during a full scan.
	readConcurrency = 8
)

var timestampSanitizer = strings.NewReplacer(":", "-", ".", "-")

// FileResponseRepository persists one immutable JSON file per submission.
// The filename embeds the submission instant and the session id, so
// concurrent writes can never target the same path.
type FileResponseRepository struct {
	dir string
}

// NewFileResponseRepository creates the repository and its directory.
func NewFileResponseRepository(dir string) (*FileResponseRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create responses dir: %w", err)
	}
	return &FileResponseRepository{dir: dir}, nil
}

// Dir returns the directory records are stored in.
func (r *FileResponseRepository) Dir() string {
	return r.dir
}

// Save writes the record as a pretty-printed JSON file and returns the
// filename. The write targets a unique path, so a failure can never
// corrupt a previously saved record.
func (r *FileResponseRepository) Save(resp *domain.Response) (string, error) {
	safeTimestamp := timestampSanitizer.Replace(
		resp.SubmittedAt.UTC().Format("2006-01-02T15:04:05.000Z"))
	filename := recordPrefix + safeTimestamp + "_" + resp.SessionID + recordSuffix

	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode response: %w", err)
	}

	if err := os.WriteFile(filepath.Join(r.dir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write response file: %w", err)
	}
	return filename, nil
}

// Count returns the number of durable records currently on disk.
func (r *FileResponseRepository) Count() (int, error) {
	files, err := r.recordFiles()
	if err != nil {
		return 0, err
	}
	return len(files), nil
}

// ReadAll loads every durable record, skipping corrupt files with a
// warning, and returns them sorted by submission instant ascending.
// Records landing mid-scan may or may not be included.
func (r *FileResponseRepository) ReadAll(ctx context.Context) ([]*domain.Response, error) {
	files, err := r.recordFiles()
	if err != nil {
		return nil, err
	}

	results := make([]*domain.Response, len(files))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(readConcurrency)

	for i, name := range files {
		i, name := i, name
		g.Go(func() error {
			data, err := os.ReadFile(filepath.Join(r.dir, name))
			if err != nil {
				logger.Get().Warn("Skipped unreadable response file",
					zap.String("file", name), zap.Error(err))
				return nil
			}
			var resp domain.Response
			if err := json.Unmarshal(data, &resp); err != nil {
				logger.Get().Warn("Skipped corrupt response file",
					zap.String("file", name), zap.Error(err))
				return nil
			}
			results[i] = &resp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	responses := make([]*domain.Response, 0, len(results))
	for _, resp := range results {
		if resp != nil {
			responses = append(responses, resp)
		}
	}
	sort.SliceStable(responses, func(i, j int) bool {
		return responses[i].SubmittedAt.Before(responses[j].SubmittedAt)
	})
	return responses, nil
}

func (r *FileResponseRepository) recordFiles() ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read responses dir: %w", err)
	}

	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() && strings.HasPrefix(name, recordPrefix) && strings.HasSuffix(name, recordSuffix) {
			files = append(files, name)
		}
	}
	return files, nil
}
