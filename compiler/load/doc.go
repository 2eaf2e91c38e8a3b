// Package load turns GraphQL SDL sources into the schema snapshot consumed
// by the validgen compiler. It parses and validates the SDL with gqlparser,
// preserves declared order, maps non-null/nullable wire types onto the
// snapshot's required/nullable flags, and lifts the generator directives
// (@check, @message, @accepts) onto the field slots.
//
// Parsed snapshots can be cached between runs with WriteSnapshot and
// ReadSnapshot.
package load
