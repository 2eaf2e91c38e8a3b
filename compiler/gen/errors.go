package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrInvalidSnapshot indicates malformed schema metadata.
	ErrInvalidSnapshot = errors.New("validgen: invalid snapshot")
	// ErrUnknownDescriptor indicates a type descriptor that classifies
	// as neither scalar, reference nor null marker.
	ErrUnknownDescriptor = errors.New("validgen: unknown type descriptor")
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("validgen: missing configuration")
	// ErrGenerationFailed indicates a code generation failure.
	ErrGenerationFailed = errors.New("validgen: code generation failed")
)

// DescriptorError reports a candidate type descriptor that could not be
// classified. It identifies the offending declaration and field so the
// whole run can fail with a descriptive message instead of silently
// producing an incomplete fragment.
type DescriptorError struct {
	Type       string // declaration name
	Field      string // field or argument name
	Descriptor string // descriptor type name
}

// Error implements the error interface.
func (e *DescriptorError) Error() string {
	var b strings.Builder
	b.WriteString("validgen: unknown type descriptor")
	if e.Descriptor != "" {
		fmt.Fprintf(&b, " %q", e.Descriptor)
	}
	if e.Type != "" {
		b.WriteString(" on type ")
		b.WriteString(e.Type)
	}
	if e.Field != "" {
		b.WriteString(" field ")
		b.WriteString(e.Field)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for DescriptorError.
func (e *DescriptorError) Is(target error) bool {
	return target == ErrUnknownDescriptor
}

// NewDescriptorError creates a new DescriptorError.
func NewDescriptorError(typeName, fieldName, descriptor string) *DescriptorError {
	return &DescriptorError{
		Type:       typeName,
		Field:      fieldName,
		Descriptor: descriptor,
	}
}

// SnapshotError reports malformed schema metadata, such as a field whose
// candidate list holds no non-null descriptor.
type SnapshotError struct {
	Type    string
	Field   string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *SnapshotError) Error() string {
	var b strings.Builder
	b.WriteString("validgen: snapshot error")
	if e.Type != "" {
		b.WriteString(" on type ")
		b.WriteString(e.Type)
	}
	if e.Field != "" {
		b.WriteString(" field ")
		b.WriteString(e.Field)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *SnapshotError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for SnapshotError.
func (e *SnapshotError) Is(target error) bool {
	return target == ErrInvalidSnapshot
}

// NewSnapshotError creates a new SnapshotError.
func NewSnapshotError(typeName, fieldName, message string, cause error) *SnapshotError {
	return &SnapshotError{
		Type:    typeName,
		Field:   fieldName,
		Message: message,
		Cause:   cause,
	}
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validgen: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("validgen: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// GenerationError represents a code generation failure.
type GenerationError struct {
	Phase   string // "compile", "render", "write"
	File    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("validgen: generation error")
	if e.Phase != "" {
		b.WriteString(" in phase ")
		b.WriteString(e.Phase)
	}
	if e.File != "" {
		b.WriteString(" (file: ")
		b.WriteString(e.File)
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(phase, file, message string, cause error) *GenerationError {
	return &GenerationError{
		Phase:   phase,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}

// IsDescriptorError reports whether the error is a DescriptorError.
func IsDescriptorError(err error) bool {
	var descErr *DescriptorError
	return errors.As(err, &descErr)
}

// IsSnapshotError reports whether the error is a SnapshotError.
func IsSnapshotError(err error) bool {
	var snapErr *SnapshotError
	return errors.As(err, &snapErr)
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}
