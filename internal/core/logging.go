package core

import (
	"log"
	"os"
)

// RotateLogIfNeeded checks if the log file at path exceeds maxBytes.
// If it does, it renames the file to path + ".old" (overwriting any previous backup).
func RotateLogIfNeeded(path string, maxBytes int64) bool {
	info, err := os.Stat(path)
	if err != nil {
		// missing or unreadable, nothing to rotate
		return false
	}
	if info.Size() <= maxBytes {
		return false
	}

	oldPath := path + ".old"
	_ = os.Remove(oldPath)

	if err := os.Rename(path, oldPath); err != nil {
		log.Printf("failed to rotate log %s: %v", path, err)
		return false
	}
	return true
}

// OpenLog rotates and opens the application log for appending and points the
// standard logger at it. The caller closes the returned file.
func OpenLog(path string, maxBytes int64) (*os.File, error) {
	RotateLogIfNeeded(path, maxBytes)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f, nil
}
