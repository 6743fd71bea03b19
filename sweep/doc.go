// Package sweep turns the generic products of package param into named
// parameter sweeps.
//
// A Space is built from Dimensions (a name plus candidate values) and
// enumerates Points in odometer order, the last dimension varying fastest.
// Points can be addressed directly with At, drawn at random with Sample, or
// narrowed by a Filter: a boolean expr-lang expression over dimension names
// such as
//
//	lr < 0.1 && batch >= 32
//
// Definitions are usually read from YAML or HCL files (LoadFile); a Run
// stamps every emitted point with a UUID so downstream jobs can be grouped.
package sweep
