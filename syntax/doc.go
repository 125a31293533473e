// Package syntax is a lossless parser for the Luau source language.
//
// Parse turns a UTF-8 source buffer into a concrete syntax tree (CST) that
// preserves every byte of the input — whitespace, comments, and punctuation
// tokens included — so that Print(Parse(s)) reproduces s byte-for-byte. The
// package also exposes a generic Visitor for walking the tree and a SpanOf
// function for deriving the source range of any node on demand.
package syntax
