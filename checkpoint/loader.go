package checkpoint

import (
	"encoding/gob"
	"os"
	"path/filepath"
)

// Load reads the checkpoint in dir. A missing checkpoint is not an
// error; the engine just starts empty and replays the full journal.
func Load(dir string) (*Checkpoint, error) {
	f, err := os.Open(filepath.Join(dir, "checkpoint.bin"))
	if err != nil {
		return nil, nil // checkpoint optional
	}
	defer f.Close()

	var cp Checkpoint
	if err := gob.NewDecoder(f).Decode(&cp); err != nil {
		return nil, err
	}
	return &cp, nil
}
