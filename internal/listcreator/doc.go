package listcreator

// Package listcreator implements the form logic behind the list creator
// dialog: the ordered, mutable step collection, form validation, tag
// aggregation, and submission to the list creation store. The package is
// toolkit-free so the behavior can be tested without a window.
