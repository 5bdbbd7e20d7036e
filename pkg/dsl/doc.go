/*
Package dsl provides a fluent builder for programmatically constructing
transition nets.

It lets callers define nets with a type-safe builder instead of literal
maps, which is useful for dynamic net generation, unit tests, and IDE
autocompletion.

Example usage:

	b := dsl.New()
	b.Vertex(1).To(2, 3)
	b.Vertex(2).To(3)
	b.Vertex(3).To(1)

	net, err := b.Build()
	// pass net to a domain.Config
*/
package dsl
