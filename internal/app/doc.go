// Package app contains the application lifecycle: it turns a validated Config
// into form submissions, either a single one from flags or one per order in a
// plan, and renders the results. It is decoupled from any entrypoint.
package app
