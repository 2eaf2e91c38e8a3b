// Package gen compiles a schema snapshot into Go source declarations of
// runtime validator expressions targeting the
// [github.com/syssam/validgen/valid] package.
//
// Compilation is a single synchronous pass: every candidate type
// descriptor is classified into exactly one of scalar, declaration
// reference or null marker; each field or argument slot compiles into one
// validator expression, composing a union when it accepts several types
// and applying list, optional and nullable modifiers at the correct
// nesting level; each enum, input type and operation argument set becomes
// one named declaration. Input type fields reference other declarations
// through deferred (lazy) builders so reference cycles stay legal;
// operation arguments reference declarations directly.
//
// The package never writes silently-incomplete output: an unclassifiable
// descriptor or a field with no non-null candidate fails the whole run
// with an error naming the offending type and field.
package gen
