package load

import (
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/syssam/validgen/schema"
)

// snapshotVersion guards the snapshot wire format. Decoding a snapshot
// written by an incompatible validgen version fails instead of producing
// a silently wrong schema.
const snapshotVersion = 1

type snapshotEnvelope struct {
	Version  int              `msgpack:"version"`
	Snapshot *schema.Snapshot `msgpack:"snapshot"`
}

// EncodeSnapshot serializes a snapshot for caching between runs.
func EncodeSnapshot(s *schema.Snapshot) ([]byte, error) {
	data, err := msgpack.Marshal(snapshotEnvelope{
		Version:  snapshotVersion,
		Snapshot: s,
	})
	if err != nil {
		return nil, fmt.Errorf("load: encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot deserializes a snapshot written by EncodeSnapshot.
func DecodeSnapshot(data []byte) (*schema.Snapshot, error) {
	var env snapshotEnvelope
	if err := msgpack.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("load: decode snapshot: %w", err)
	}
	if env.Version != snapshotVersion {
		return nil, fmt.Errorf("load: snapshot version %d is not supported (want %d)", env.Version, snapshotVersion)
	}
	if env.Snapshot == nil {
		return nil, fmt.Errorf("load: snapshot is empty")
	}
	return env.Snapshot, nil
}

// WriteSnapshot encodes a snapshot to a file.
func WriteSnapshot(path string, s *schema.Snapshot) error {
	data, err := EncodeSnapshot(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("load: write snapshot %s: %w", path, err)
	}
	return nil
}

// ReadSnapshot reads a snapshot file written by WriteSnapshot.
func ReadSnapshot(path string) (*schema.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load: read snapshot %s: %w", path, err)
	}
	return DecodeSnapshot(data)
}
