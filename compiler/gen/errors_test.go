package gen

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDescriptorError(t *testing.T) {
	require := require.New(t)

	err := NewDescriptorError("UserWhereInput", "name", "Mystery")
	require.EqualError(err, `validgen: unknown type descriptor "Mystery" on type UserWhereInput field name`)
	require.ErrorIs(err, ErrUnknownDescriptor)
	require.True(IsDescriptorError(err))
	require.False(IsSnapshotError(err))

	wrapped := fmt.Errorf("compile: %w", err)
	require.ErrorIs(wrapped, ErrUnknownDescriptor)
	require.True(IsDescriptorError(wrapped))
}

func TestSnapshotError(t *testing.T) {
	require := require.New(t)

	cause := errors.New("boom")
	err := NewSnapshotError("UserWhereInput", "name", "no non-null candidate", cause)
	require.EqualError(err, "validgen: snapshot error on type UserWhereInput field name: no non-null candidate: boom")
	require.ErrorIs(err, ErrInvalidSnapshot)
	require.ErrorIs(err, cause)
	require.True(IsSnapshotError(err))
}

func TestConfigError(t *testing.T) {
	require := require.New(t)

	err := NewConfigError("Workers", -1, "workers cannot be negative")
	require.EqualError(err, `validgen: config error for "Workers" (value: -1): workers cannot be negative`)
	require.ErrorIs(err, ErrMissingConfig)
	require.True(IsConfigError(err))

	err = NewConfigError("Target", nil, "no output directory set")
	require.EqualError(err, `validgen: config error for "Target": no output directory set`)
}

func TestGenerationError(t *testing.T) {
	require := require.New(t)

	cause := errors.New("permission denied")
	err := NewGenerationError("write", "enums.go", "write output", cause)
	require.EqualError(err, "validgen: generation error in phase write (file: enums.go): write output: permission denied")
	require.ErrorIs(err, ErrGenerationFailed)
	require.ErrorIs(err, cause)
	require.True(IsGenerationError(err))
}
