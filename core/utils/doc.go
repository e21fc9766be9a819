// Package utils provides loose-to-typed value conversion for values that arrive
// from form posts and JSON bodies (ids, prices, quantities, free text).
package utils
