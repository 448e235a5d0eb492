package core

import (
	"log"
	"os"
)

// LogMaxBytes is the size past which the log file is rotated at startup.
const LogMaxBytes = 1024 * 1024

// RotateLogIfNeeded renames the log at path to path+".old" once it grows
// past maxBytes. A previous backup is replaced. It reports whether a
// rotation happened.
func RotateLogIfNeeded(path string, maxBytes int64) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if info.Size() <= maxBytes {
		return false
	}

	oldPath := path + ".old"
	_ = os.Remove(oldPath)
	if err := os.Rename(path, oldPath); err != nil {
		log.Printf("Failed to rotate log %s: %v", path, err)
		return false
	}
	return true
}
