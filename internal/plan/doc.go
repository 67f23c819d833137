// Package plan defines the format-agnostic model of a build plan: an ordered
// list of orders, each one a recorded form submission. Concrete loaders for
// HCL and YAML live in the hclplan and yamlplan subpackages.
package plan
