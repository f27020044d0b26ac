package excel

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"starter-pack-quiz/internal/logger"

	"go.uber.org/zap"
)

// BackupManager snapshots the shared workbook before each rewrite and
// prunes old snapshots beyond the retention count.
type BackupManager struct {
	dir      string
	maxFiles int
}

// NewBackupManager creates a manager writing snapshots into dir.
func NewBackupManager(dir string, maxFiles int) *BackupManager {
	return &BackupManager{dir: dir, maxFiles: maxFiles}
}

// Create copies the source file into the backup directory with a
// timestamped name, e.g. responses_2024-01-15_103000.xlsx, then prunes.
// Returns the backup path, or empty when nothing was backed up. Failures
// are logged, never propagated: a missed backup must not block a save.
func (b *BackupManager) Create(sourcePath string) string {
	if _, err := os.Stat(sourcePath); err != nil {
		return ""
	}

	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		logger.Get().Error("Backup failed", zap.Error(err))
		return ""
	}

	dateStr := time.Now().UTC().Format("2006-01-02_150405")
	ext := filepath.Ext(sourcePath)
	baseName := strings.TrimSuffix(filepath.Base(sourcePath), ext)
	backupPath := filepath.Join(b.dir, baseName+"_"+dateStr+ext)

	if err := copyFile(sourcePath, backupPath); err != nil {
		logger.Get().Error("Backup failed", zap.Error(err))
		return ""
	}
	logger.Get().Info("Backup created", zap.String("file", filepath.Base(backupPath)))

	b.pruneOld()
	return backupPath
}

// pruneOld keeps only the maxFiles most recent snapshots.
func (b *BackupManager) pruneOld() {
	entries, err := os.ReadDir(b.dir)
	if err != nil {
		return
	}

	type backupFile struct {
		name string
		time time.Time
	}
	var files []backupFile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".xlsx") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, backupFile{name: entry.Name(), time: info.ModTime()})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].time.After(files[j].time)
	})

	if len(files) <= b.maxFiles {
		return
	}
	for _, file := range files[b.maxFiles:] {
		if err := os.Remove(filepath.Join(b.dir, file.name)); err != nil {
			logger.Get().Error("Backup cleanup failed", zap.Error(err))
			continue
		}
		logger.Get().Info("Old backup removed", zap.String("file", file.name))
	}
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
