// Package gen implements the envargen generator: parsing the annotated
// struct, resolving field-to-variable bindings, and emitting the constructor.
package gen
