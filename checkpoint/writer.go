package checkpoint

import (
	"encoding/gob"
	"os"
	"path/filepath"
	"time"

	"heimdall/domain/routes"
)

// Checkpoint is the on-disk image: the last applied sequence plus the
// rules needed to rebuild the table.
type Checkpoint struct {
	Seq     uint64
	Created time.Time
	Rules   []routes.Rule
}

// Writer persists checkpoints into Dir.
type Writer struct {
	Dir string
}

// Write gob-encodes a checkpoint. The file is written to a temp name
// and renamed so a crash mid-write never clobbers the previous
// checkpoint.
func (w *Writer) Write(seq uint64, rules []routes.Rule) error {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return err
	}

	path := filepath.Join(w.Dir, "checkpoint.bin")
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	cp := Checkpoint{
		Seq:     seq,
		Created: time.Now(),
		Rules:   rules,
	}
	if err := gob.NewEncoder(f).Encode(&cp); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, path)
}
