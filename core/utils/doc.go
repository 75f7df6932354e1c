// Package utils provides common utility functions for the application.
// It includes tolerant type conversion helpers used when reading loosely
// formatted spreadsheet cells.
package utils
