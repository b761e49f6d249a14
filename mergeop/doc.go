// Package mergeop applies patch documents to nodes.
//
// A patch document is either a single operation or an array of operations
// applied in order. An operation is an object with one member, whose name is
// the operation and whose value is its argument:
//
//	[
//	  {"json-patch": [{"op": "replace", "path": "/replicas", "value": 3}]},
//	  {"merge-patch": {"labels": {"tier": "web"}}},
//	  {"eval": "doc"},
//	  {"pipe": "jq ."}
//	]
//
// Operations:
//   - json-patch: apply RFC 6902 operations
//   - merge-patch: apply an RFC 7386 merge patch; member order follows the
//     JSON encoding of maps, so members come out sorted
//   - strdiff: apply a textual patch, as found in libdiff.Change.Patch, to
//     a string
//   - eval: replace the document by the result of an expression
//   - pipe: replace the document by the output of a command reading the
//     document on its standard input
//   - replace: replace the document by the argument
package mergeop
