// Package utils provides common utility functions shared across features.
// It currently holds the type conversion used to coerce loosely typed command
// arguments.
package utils
