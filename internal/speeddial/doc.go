package speeddial

// Package speeddial implements the form logic behind the speed dial dialog:
// create/edit mode selection, URL normalization, field validation, and
// submission to the speed dial store. Toolkit-free by design.
