package snapshot

import (
	"encoding/gob"
	"os"
	"path/filepath"
)

const FileName = "snapshot.bin"

type Writer struct {
	Dir string
}

// Write persists the snapshot atomically: write aside, then rename
// over the previous one.
func (w *Writer) Write(s *Snapshot) error {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return err
	}

	tmp := filepath.Join(w.Dir, FileName+".tmp")
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	if err := gob.NewEncoder(f).Encode(s); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, filepath.Join(w.Dir, FileName))
}
