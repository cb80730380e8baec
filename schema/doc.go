// Package schema describes nested record shapes as explicit tagged
// variants: scalar leaves (text, int, fixed choice sets) composed into
// named-field records and fixed-arity tuples.
//
// Shapes drive the record parser and the intersection engine; they are
// supplied once by the caller, either built in code with the constructors
// or loaded from a YAML declaration file.
//
// # Declaration files
//
// A shape declaration looks like:
//
//	record:
//	  full_name:
//	    record:
//	      brand_name: text
//	      edition: text
//	  flavour:
//	    choice: [vanilla, strawberry, chocolate, ants]
//	  zip_code: int
//
// Scalar leaves are the strings "text" and "int"; "choice" takes a
// sequence of literals (string or integer, each keeping its own kind);
// "record" takes an ordered map of field name to shape; "tuple" takes a
// sequence of shapes. Declaration order is preserved everywhere.
package schema
