// Package graph holds the flat execution graph produced by pipeline
// translation. Steps are appended in construction order and connected
// by the data tags they read and write; the package derives producer
// lookup, reverse topological ordering, and a Mermaid rendering from
// those declarations.
package graph
