// Package variant provides tagged unions over a fixed set of alternative
// types and dispatches them to visitors without a method table lookup.
//
// # Unions
//
// OfN holds exactly one of N alternatives (2 <= N <= 10). Alternatives are
// stored inline next to a one-byte discriminant, so building, copying and
// dispatching a union never touches the heap:
//
//	type FooBar = variant.Of2[Foo, Bar]
//
//	var x FooBar
//	x.Set0(Foo{F: 1})
//	y := FooBar{}.With1(Bar{B: 2})
//
//	if foo, ok := x.Get0(); ok {
//	    fmt.Println(foo.F)
//	}
//
// # Visitors
//
// A visitor is any type implementing VisitorN, one method per alternative in
// declaration order:
//
//	type counter struct{ n int }
//
//	func (c *counter) Visit0(f Foo) { c.n += f.F }
//	func (c *counter) Visit1(b Bar) { c.n *= b.B }
//
//	c := &counter{}
//	variant.Visit2(c, &x)
//
// VisitN compares the discriminant against each alternative in declaration
// order and calls the first match directly. Exactly one visitor method runs
// per call. The visitor is a type parameter, so the compiler checks at build
// time that it handles every alternative.
//
// MatchN does the same with plain functions, and VisitAccessorN dispatches any
// union type that exposes GetN accessors (for example generated or hand
// written sums) by probing them in order.
//
// # Empty Values
//
// The zero OfN holds no alternative. Dispatching it is a programming error:
// the dispatcher logs it and panics with an *errors.Error that matches
// ErrUnmatched. Use Valid or Check to test a value first.
//
// # Thread Safety
//
// Dispatch holds no state. Concurrent calls on independent values are safe;
// a visitor shared between goroutines must synchronize its own state.
package variant
