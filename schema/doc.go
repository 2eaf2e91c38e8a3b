// Package schema defines the metadata model consumed by the validgen
// compiler: a read-only snapshot of enums, input object types and root
// operation argument sets, each field annotated with its candidate type
// descriptors and optional/nullable flags.
//
// Snapshots are produced by [github.com/syssam/validgen/compiler/load] and
// consumed by [github.com/syssam/validgen/compiler/gen]. They are plain
// data: construction is a single pass over the parsed schema, and a
// snapshot is discarded after the generation run that used it.
package schema
