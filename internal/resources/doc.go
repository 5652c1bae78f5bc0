// Package resources loads the static tables the extraction pipeline reads:
// stop-word sets and domain specificity weights (the dictionary).
//
// Tables are loaded once and only read afterwards, so they can be shared by
// concurrent indexing calls.
package resources
