// Package pluck extracts values from nested records by dot-delimited paths
// and reshapes records with nested transform definitions.
//
// A definition maps output names either to a path ("details.contact.email")
// or to a nested definition. Leaves whose path does not resolve are left out
// of the output; nested definitions always produce a nested record.
//
//	name: name
//	age: details.age
//	contact:
//	  email: details.contact.email
//
// Paths walk stored keys only, one segment at a time, using ojg jp child
// fragments, so they work on map[string]any trees as well as on structs.
package pluck
