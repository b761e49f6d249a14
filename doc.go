// Package polywire serializes Go values to a compact JSON-like text and back,
// keeping the runtime type of values held under interface types.
//
// A value whose runtime type differs from the type it is declared with is
// written wrapped in a single member object named by its type identifier:
//
//	{"example.com/shapes.Circle, shapes, Version=1.0.0.0, Culture=neutral, PublicKeyToken=null":{"R":2}}
//
// and [Deserialize] constructs the named type through the [gomap.Registry].
//
// The text has no whitespace, numbers are written independently of locale and
// strings use only the escapes \" \\ \b \f \n \r \t. The two character text []
// reads as null, so empty arrays read back as empty slices.
//
// The lower level packages are [parse], [encode] and [gomap], which work on the
// [ir.Node] value model.
package polywire
