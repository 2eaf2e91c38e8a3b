package load

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/syssam/validgen/schema"
)

func TestSnapshotRoundTrip(t *testing.T) {
	require := require.New(t)
	snap := parseTestSchema(t)

	data, err := EncodeSnapshot(snap)
	require.NoError(err)

	got, err := DecodeSnapshot(data)
	require.NoError(err)
	require.Equal(snap, got)
}

func TestSnapshotFile(t *testing.T) {
	require := require.New(t)
	snap := parseTestSchema(t)

	path := filepath.Join(t.TempDir(), "schema.snap")
	require.NoError(WriteSnapshot(path, snap))

	got, err := ReadSnapshot(path)
	require.NoError(err)
	require.Equal(snap, got)

	_, err = ReadSnapshot(filepath.Join(t.TempDir(), "missing.snap"))
	require.Error(err)
}

func TestSnapshotVersionMismatch(t *testing.T) {
	require := require.New(t)

	data, err := msgpack.Marshal(snapshotEnvelope{
		Version:  snapshotVersion + 1,
		Snapshot: &schema.Snapshot{},
	})
	require.NoError(err)

	_, err = DecodeSnapshot(data)
	require.Error(err)
	require.Contains(err.Error(), "not supported")
}

func TestSnapshotDecodeGarbage(t *testing.T) {
	_, err := DecodeSnapshot([]byte("not msgpack"))
	require.Error(t, err)
}
