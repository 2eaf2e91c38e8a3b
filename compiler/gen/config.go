package gen

// DefaultRuntimePkg is the import path of the validator runtime the
// generated declarations target.
const DefaultRuntimePkg = "github.com/syssam/validgen/valid"

// DefaultHeader is the header comment written at the top of each generated
// file.
const DefaultHeader = "Code generated by validgen. DO NOT EDIT."

// Config holds the settings of a generation run.
type Config struct {
	// Package is the import path of the target package the declarations
	// are written into, e.g. "github.com/org/app/appvalid".
	Package string

	// Target is the directory generated files are written to.
	Target string

	// Header is the generated-file header comment.
	Header string

	// RuntimePkg is the import path of the validator runtime package.
	// Raw check/error fragments reference it by its base name.
	RuntimePkg string

	// ModelPkg is the import path of the package holding the native Go
	// types the declarations validate. Used only for the type annotation
	// in generated doc comments; empty means the bare type name is used.
	ModelPkg string

	// Workers bounds the number of files written concurrently.
	// Zero means GOMAXPROCS.
	Workers int
}

// Option configures code generation.
type Option func(*Config) error

// WithPackage sets the target package import path.
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return NewConfigError("Package", nil, "package cannot be empty")
		}
		c.Package = pkg
		return nil
	}
}

// WithTarget sets the output directory.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithHeader sets the file header comment.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithRuntime sets the import path of the validator runtime package.
func WithRuntime(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return NewConfigError("RuntimePkg", nil, "runtime package cannot be empty")
		}
		c.RuntimePkg = pkg
		return nil
	}
}

// WithModelPackage sets the import path of the native model package used
// in declaration type annotations.
func WithModelPackage(pkg string) Option {
	return func(c *Config) error {
		c.ModelPkg = pkg
		return nil
	}
}

// WithWorkers sets the number of parallel file writers.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n < 0 {
			return NewConfigError("Workers", n, "workers cannot be negative")
		}
		c.Workers = n
		return nil
	}
}
