// Package assistant implements the interactive command loop over an address book:
// input parsing, command dispatch, error translation and output rendering.
package assistant
