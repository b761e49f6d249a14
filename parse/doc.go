// Package parse parses wire text into [ir.Node] trees.
//
// Parsing dispatches on the first character of the trimmed text:
//
//   - the exact literals null, true and false give the singletons;
//   - '{' starts an object, whose body is split on top level commas into
//     name:value pairs;
//   - '[' starts an array; the exact text '[]' is parsed as null;
//   - '"' starts a string, which must be a single literal running to the end of
//     the text;
//   - anything else is a number, kept verbatim. Numbers are not checked until
//     they are converted to Go values.
//
// Whitespace around values, names, colons and commas is ignored and empty
// entries between commas are skipped.
//
// All errors wrap [ErrParse]. Errors locating a problem in the text are also
// [*token.ParseError].
package parse
