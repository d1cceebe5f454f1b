// Package visit provides type-directed dispatch over closed sets of
// alternative types.
//
// A value of a sum type holds exactly one alternative. Dispatching it calls
// exactly one visitor method, the one for the active alternative, chosen by a
// linear scan in declaration order with no method table lookup.
//
// # Architecture Overview
//
// The module is organized into several packages with distinct responsibilities:
//
//	visit/
//	├── variant/         Generic tagged unions Of2..Of10, visitors and dispatch
//	├── generate/        Visitor code generation from Go and WIT sources
//	├── errors/          Structured error types for dispatch and generation
//	├── cmd/visitgen/    Generator command line with interactive preview
//	└── examples/        Runnable examples
//
// # Quick Start
//
// Dispatch a generic union:
//
//	type Value = variant.Of2[Foo, Bar]
//
//	type counter struct{ total int }
//
//	func (c *counter) Visit0(f Foo) { c.total += f.N }
//	func (c *counter) Visit1(b Bar) { c.total += b.N }
//
//	v := Value{}.With1(Bar{N: 2})
//	c := &counter{}
//	variant.Visit2(c, &v)
//
// Generate a visitor for a sealed interface declared in your package:
//
//	//go:generate go run github.com/wippyai/visit/cmd/visitgen -path . -types Shape
//
// which writes ShapeVisitor and VisitShape to visit_gen.go. WIT variants are
// read from the JSON form produced by wasm-tools and rendered as structs with
// one pointer field per case.
//
// # Empty Values
//
// Dispatching a value that holds no alternative is a programming error. It is
// logged through the variant package logger and panics with an error matching
// variant.ErrUnmatched.
//
// # Thread Safety
//
// Dispatch holds no state of its own. Visitors shared between goroutines must
// synchronize their own state.
package visit
