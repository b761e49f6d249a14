// Package gomap converts between Go values and [ir.Node] trees.
//
// [ToIR] walks a value by reflection. Structs become objects of their exported
// fields (or, for structs without any, of their registered properties), maps
// with string keys become objects with sorted keys, slices and arrays become
// arrays, and a number of well known types become strings: [time.Time],
// [OffsetTime], [time.Duration], [uuid.UUID], [reflect.Type] and anything
// implementing [encoding.TextMarshaler].
//
// When a struct is held under a static type other than its own, typically an
// interface, its object is wrapped in an envelope
//
//	{"<type identifier>":{...members...}}
//
// and [FromIR] uses the identifier to find the type to construct through a
// [Registry]. Types written in envelopes are recorded in the registry as they
// are written, so a process can read back what it wrote; a reader in another
// process registers the types it expects with [Register].
//
// Recording is a write to shared state: unless [WithRegistry] selects another
// registry, serializing a value adds the types of its envelopes to
// [DefaultRegistry], which lives for the whole process. Registries are safe
// for concurrent use. Callers who want serialization free of side effects on
// process wide state pass a registry of their own.
//
// [FromIR] constructs structs through registered constructors when one takes
// exactly the members of the object, matching parameter names exactly and
// then case insensitively, and otherwise by setting the members of a
// parameterless construction. Arrays of rank greater than one are written as
//
//	[[len0,len1,...],[elements in row major order]]
package gomap
