// Package gomod wraps the Go toolchain's view of a module workspace:
// manifest discovery, requirement parsing, and listing of the resolved
// module set.
//
// Resolution itself is delegated to the go command; this package only
// shells out to it and decodes what it reports.
package gomod
