package image

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/joshuapare/qmakepatch/pkg/types"
)

// Write overwrites the file at path with the image contents in a single
// write and flushes it to stable storage.
//
// The file is rewritten in place rather than replaced, so its inode, owner
// and permission bits (the executable bit in particular) survive the patch.
// A file that no longer exists is not recreated.
func (img *Image) Write(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return types.Errorf(types.FileFailure, "could not open file '%s' for writing: %w", path, err)
	}

	n, err := f.Write(img.data)
	if err == nil && n != len(img.data) {
		err = io.ErrShortWrite
	}
	if err != nil {
		_ = f.Close()
		return types.Errorf(types.FileFailure, "could not write %d bytes to file '%s': %w", len(img.data), path, err)
	}

	if err := datasync(f); err != nil {
		_ = f.Close()
		return types.Errorf(types.FileFailure, "could not flush file '%s': %w", path, err)
	}

	if err := f.Close(); err != nil {
		return types.Errorf(types.FileFailure, "could not close file '%s' after writing %d bytes: %w", path, len(img.data), err)
	}
	return nil
}

// Backup copies the file at path to <path>.<suffix>.<timestamp> and verifies
// the copy's size. It returns the backup path.
func Backup(path, suffix string) (string, error) {
	st, err := os.Stat(path)
	if err != nil {
		return "", types.Errorf(types.FileFailure, "source file not found: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", types.Errorf(types.FileFailure, "reading source file: %w", err)
	}

	timestamp := time.Now().Format("20060102-150405")
	var backupPath string
	if suffix != "" && suffix[0] == '.' {
		backupPath = fmt.Sprintf("%s%s.%s", path, suffix, timestamp)
	} else {
		backupPath = fmt.Sprintf("%s.%s.%s", path, suffix, timestamp)
	}

	if err := writeAtomic(backupPath, data, st.Mode().Perm()); err != nil {
		return "", types.Errorf(types.FileFailure, "writing backup: %w", err)
	}

	if err := verifyBackup(backupPath, st.Size()); err != nil {
		os.Remove(backupPath)
		return "", types.Errorf(types.FileFailure, "backup verification failed: %w", err)
	}
	return backupPath, nil
}

// writeAtomic writes data to path using temp-file-then-rename, so a
// half-written backup never appears under its final name.
func writeAtomic(path string, data []byte, perm os.FileMode) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving absolute path: %w", err)
	}
	dir := filepath.Dir(absPath)

	tmpFile, err := os.CreateTemp(dir, ".qmakepatch-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	cleanup := func() {
		tmpFile.Close()
		os.Remove(tmpPath)
	}

	if _, err := tmpFile.Write(data); err != nil {
		cleanup()
		return fmt.Errorf("writing to temp file: %w", err)
	}
	if err := tmpFile.Chmod(perm); err != nil {
		cleanup()
		return fmt.Errorf("setting temp file mode: %w", err)
	}
	if err := datasync(tmpFile); err != nil {
		cleanup()
		return fmt.Errorf("syncing temp file: %w", err)
	}
	// Close before rename (required on Windows)
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, absPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

func verifyBackup(path string, expectedSize int64) error {
	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("backup file not found: %w", err)
	}
	if st.Size() != expectedSize {
		return fmt.Errorf("backup size mismatch: expected %d, got %d", expectedSize, st.Size())
	}
	return nil
}
