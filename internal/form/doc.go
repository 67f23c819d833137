// Package form is the thin presentation layer over the building core. It
// takes raw strings as a user would type them, decides which builder
// operations to call, and renders the one-line result.
package form
