// Package repository owns the data-access layer: parameter-bound CRUD and
// aggregation queries over the portal's states, districts, and users. All
// external input reaches the store through bun placeholders, never through
// string concatenation.
package repository
