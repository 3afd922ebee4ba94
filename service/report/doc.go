// Package report renders the plain-text review of a workflow document.
//
// A report is a fixed sequence of sections. Every section reads the same
// document and writes through a shared Printer; absent keys are shown as a
// placeholder and never fail a section.
package report
