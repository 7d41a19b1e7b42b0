package speech

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// WriteAudio writes synthesized audio to path, guarding the write with a file
// lock so two processes sharing an audio cache cannot clobber each other
// mid-write.
func WriteAudio(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create audio directory: %w", err)
	}

	l := flock.New(path + ".lock")
	locked, err := l.TryLock()
	if err != nil {
		return fmt.Errorf("cannot acquire audio lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("audio file is being written by another process (lock: %s.lock)", path)
	}
	defer func() { _ = l.Unlock() }()

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write audio file %s: %w", path, err)
	}
	return nil
}
