// Package sizer computes the on-disk size of a directory tree.
//
// It walks the tree using fastwalk for parallel traversal, honors
// .gitignore files found at any level, and sums the byte length of every
// regular file that survives filtering.
package sizer
