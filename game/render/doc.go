// Package render turns a puzzle grid and its scanned car collection into
// human-readable text. It maps each car to a stable display token (its
// 1-based index) and only needs read access to the grid and the cars; it
// holds no puzzle rules of its own.
package render
