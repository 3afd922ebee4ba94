// Package idgen issues review run identifiers. Callers should treat them as
// opaque strings; tests may stub NewFunc.
package idgen
