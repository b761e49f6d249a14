// Package ir provides the value model of the wire format.
//
// # Overview
//
// Every document is represented as a tree of [Node]. A node is a tagged union:
// the Type field determines which of the other fields are meaningful.
//
//   - NullType, TrueType, FalseType: no payload. These are process wide
//     singletons obtained with [Null], [True], [False] and [FromBool].
//   - NumberType: Raw holds the digits exactly as written. No numeric
//     interpretation takes place until a number is converted to a Go value.
//   - StringType: Raw holds the quoted and escaped text, including the
//     surrounding double quotes. [Node.Unquoted] computes the content.
//   - ObjectType: Values holds NameValueType pairs in document order. Names
//     need not be unique.
//   - ArrayType: Values holds the elements in order.
//   - NameValueType: Name is a StringType node and Value is any node.
//
// # Immutability
//
// Nodes must not be modified once constructed. Because of this, nodes carry
// no parent pointers and the singletons can be shared between any number of
// trees and goroutines.
//
// # Lookup
//
// [Node.Lookup] finds the first pair of an object with a given name,
// optionally ignoring case. A missing name is reported as a [*LookupError].
//
// # Paths
//
// [Node.GetPath] and [Node.ListPath] select sub-nodes with a small path
// language: '$' for the root, '.name' or ".'quoted name'" for object members,
// '[i]' or '[*]' for array elements and '..' for any descendant.
//
// # Printing
//
// The ir package does not print nodes. See the encode package.
package ir
