// Package token provides the zero-copy scanning layer of the wire format.
//
// A [Span] is a view onto a document, identified by offsets into the source
// string. Spans are narrowed with [Span.Trim] and [Span.Slice] without copying.
//
// [Split] and [SplitFirst] divide a span on a delimiter which occurs at the top
// level, that is outside of any bracketed body ('[]', '{}', '()', '<>') and
// outside of any double quoted literal. Backslash escapes inside literals are
// honored.
//
// [Quote] and [Unquote] convert between string content and its quoted form using
// the seven escapes of the format: \" \\ \b \f \n \r \t.
//
// Errors are reported as [*ParseError], which wraps one of the sentinel errors
// of this package.
package token
