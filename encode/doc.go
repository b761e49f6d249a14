// Package encode prints [ir.Node] trees as wire text.
//
// The canonical form has no whitespace at all: objects are printed as
// '{' name ':' value (',' name ':' value)* '}', arrays as '[' value (',' value)* ']',
// numbers and strings exactly as their raw text and the literals as null, true
// and false. Parsing canonical text and printing the result reproduces it byte
// for byte, with the one exception that '[]' parses to null.
//
// Options can add indentation or terminal colors for human readers. Neither
// changes the values, so indented or colored output still parses to an equal
// tree once colors are stripped.
package encode
