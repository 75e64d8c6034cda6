// backup.go provides the pre-mutation backup copy and small file-writing
// helpers shared by the patch operations.
package waybar

import (
	"fmt"
	"io"
	"os"
)

// BackupFile copies the file at path to a sibling path with a .bak suffix
// and returns the backup path. The backup preserves the source file's
// permission bits.
//
// Backups are taken only when a mutation is about to happen; they are
// never automatically restored — recovery is a manual operation.
func BackupFile(path string) (string, error) {
	backupPath := path + ".bak"

	srcFile, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s for backup: %w", path, err)
	}
	// defer ensures the handle is closed even if the copy below fails.
	defer func() { _ = srcFile.Close() }()

	info, err := srcFile.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}

	dstFile, err := os.OpenFile(backupPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return "", fmt.Errorf("failed to create backup %s: %w", backupPath, err)
	}
	defer func() { _ = dstFile.Close() }()

	// io.Copy streams in chunks rather than loading the whole file,
	// though config files are small enough that either would do.
	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return "", fmt.Errorf("failed to copy %s to %s: %w", path, backupPath, err)
	}

	return backupPath, nil
}

// writeFilePreservingMode overwrites an existing file's content while
// keeping its current permission bits. Falls back to 0644 if the file
// does not exist yet.
func writeFilePreservingMode(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, data, mode); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
