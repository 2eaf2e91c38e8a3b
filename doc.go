// Package validgen generates Go validator declarations from a GraphQL SDL
// data-model description, keeping runtime validation in sync with the
// schema it was derived from.
//
// The pipeline is a single pass: SDL sources are parsed into a read-only
// schema snapshot ([github.com/syssam/validgen/compiler/load]), the
// snapshot is compiled into an ordered list of declarations
// ([github.com/syssam/validgen/compiler/gen]), and the declarations are
// rendered into Go source targeting the runtime validator library
// ([github.com/syssam/validgen/valid]).
//
// Most users run the validgen command; Generate is the library entry
// point for build tooling.
package validgen
