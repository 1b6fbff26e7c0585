// Package dungeonerr defines the structured error taxonomy shared across
// the generation kernel: every exported operation that can fail reports
// one of a small set of named Kinds, wrapped with the chain that produced
// it so callers can both branch on Kind and unwrap to the root cause.
package dungeonerr
