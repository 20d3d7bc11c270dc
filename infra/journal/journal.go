package journal

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"heimdall/infra/buffer"
)

// Config defines configuration for a Journal. Zero values pick
// defaults.
type Config struct {
	Dir         string
	SegmentSize int64
}

const defaultSegmentSize = 2 * 1024 * 1024

// Journal is a single-writer segmented log. The reload path is
// serialized by the service, so the journal itself takes no locks.
type Journal struct {
	dir        string
	segSize    int64
	current    *segment
	segIndex   int
	lastRotate time.Time
	frame      *buffer.Builder
}

// Open creates or resumes the journal in cfg.Dir, continuing after the
// highest existing segment.
func Open(cfg Config) (*Journal, error) {
	if cfg.Dir == "" {
		cfg.Dir = "./journal"
	}
	if cfg.SegmentSize == 0 {
		cfg.SegmentSize = defaultSegmentSize
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, err
	}

	// Resume on the highest existing segment; earlier ones may have
	// been truncated away.
	index := 0
	if files, err := filepath.Glob(filepath.Join(cfg.Dir, "segment-*.journal")); err == nil {
		for _, path := range files {
			var i int
			if _, err := fmt.Sscanf(filepath.Base(path), "segment-%06d.journal", &i); err == nil && i > index {
				index = i
			}
		}
	}

	seg, err := openSegment(cfg.Dir, index)
	if err != nil {
		return nil, err
	}

	return &Journal{
		dir:        cfg.Dir,
		segSize:    cfg.SegmentSize,
		current:    seg,
		segIndex:   index,
		lastRotate: time.Now(),
		frame:      buffer.NewBuilder(512),
	}, nil
}

// Append frames and writes one record:
//
//	[type:1][seq:8][time:8][len:4][payload][crc:4]
//
// big-endian, CRC-32 IEEE over header+payload. The length field is
// reserved up front and backpatched once the payload is in place.
func (j *Journal) Append(r *Record) error {
	j.frame.Reset()
	_ = j.frame.WriteByte(byte(r.Type))
	j.frame.WriteUint64(binary.BigEndian, r.Seq)
	j.frame.WriteUint64(binary.BigEndian, uint64(r.Time))

	length := j.frame.Skip(4)
	_, _ = j.frame.Write(r.Data)
	length.SetUint32(binary.BigEndian, uint32(len(r.Data)))

	j.frame.WriteUint32(binary.BigEndian, checksum(j.frame.Bytes()))

	if err := j.current.append(j.frame.Bytes()); err != nil {
		return err
	}

	if j.current.offset >= j.segSize {
		return j.rotate()
	}
	return nil
}

func (j *Journal) rotate() error {
	_ = j.current.close()
	j.segIndex++

	seg, err := openSegment(j.dir, j.segIndex)
	if err != nil {
		return err
	}

	j.current = seg
	j.lastRotate = time.Now()
	return nil
}

// Sync flushes the current segment to disk.
func (j *Journal) Sync() error {
	return j.current.sync()
}

// TruncateBefore removes whole segments whose records are all covered
// by a checkpoint at seq.
func (j *Journal) TruncateBefore(seq uint64) error {
	files, err := filepath.Glob(filepath.Join(j.dir, "segment-*.journal"))
	if err != nil {
		return err
	}

	for _, path := range files {
		if path == segmentPath(j.dir, j.segIndex) {
			continue // never the active segment
		}
		maxSeq, err := maxSeqInSegment(path)
		if err != nil {
			continue
		}
		if maxSeq <= seq {
			_ = os.Remove(path)
		}
	}
	return nil
}

// Close closes the active segment.
func (j *Journal) Close() error {
	return j.current.close()
}
