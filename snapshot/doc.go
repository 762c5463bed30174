// Package snapshot saves fetched database trees to disk and compares them.
//
// Diffs are line diffs of the pretty printed trees. Patches are RFC 7386
// merge patches, or RFC 6902 operation lists when the patch is an array.
package snapshot
