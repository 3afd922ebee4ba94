// Package model contains the in-memory representation of a workflow
// configuration document.
//
// The document is schema-less: it is kept as an ordered tree and every
// read goes through Value, which tolerates absent keys and shape mismatches.
// Step, Field, Column, Relationship and the other views only name the keys
// that the report recognises; they never validate.
package model
