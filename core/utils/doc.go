// Package utils provides common utility functions for the shortage tracker.
// It includes type coercion helpers for the untyped scalar values that arrive
// from spreadsheet cells and dynamic database rows.
package utils
