// Package ir holds the in-memory JSON value tree.
//
// A *Node is a tagged union over Null, Bool, Number, String, Object and
// Array. Numbers remember whether they were written as integers: Int64 is
// set for integer values and Float64 for everything else, and the two kinds
// never compare equal.
//
// Trees are plain values owned by whoever built them. Nothing in this
// package keeps references to a tree after a call returns.
package ir
