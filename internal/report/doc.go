// Package report sizes every resolved module concurrently and renders the
// per-dependency size report: one row per direct dependency at its highest
// resolved version, sorted ascending by size, followed by a grand total.
package report
