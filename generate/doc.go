// Package generate emits visitor interfaces and linear dispatch functions for
// closed sums declared outside the variant package.
//
// # Sources
//
// Sums come from two places:
//
//	go     sealed interfaces (at least one unexported method) and the types
//	       of the same package implementing them, in declaration order
//	wit    named WIT variants from a WIT JSON document, rendered as a struct
//	       with one pointer field per case
//
// A third job kind, arities, re-renders the generic OfN unions of the variant
// package.
//
// # Generated Code
//
// For a sealed interface Shape with alternatives *Rect and Circle:
//
//	type ShapeVisitor interface {
//	    VisitRect(*Rect)
//	    VisitCircle(Circle)
//	}
//
//	func VisitShape[V ShapeVisitor](visitor V, x Shape)
//
// VisitShape tests the alternatives in declaration order and calls the first
// match. A nil or undeclared dynamic type panics through variant.Unmatched.
//
// # Configuration
//
// Jobs are read from visitgen.yaml:
//
//	jobs:
//	  - source: go
//	    path: ./shapes
//	    types: [Shape]
//	  - source: wit
//	    path: shapes.wit.json
//	    package: shapes
//	    output: shapes/shape_gen.go
//
// Relative paths resolve against the directory holding the config file.
package generate
