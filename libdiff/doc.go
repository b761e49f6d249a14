// Package libdiff computes the differences between two [ir.Node] trees as a
// list of changes addressed by path.
//
// Object members are matched by name and array elements by a summary of their
// content, each sequence aligned with a diff-match-patch runes diff, so an
// element inserted at the front of an array shows as one insertion rather
// than a change at every index.
package libdiff
