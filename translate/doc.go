// Package translate lowers a hierarchical pipeline tree into flat
// typed execution graphs. A TranslationContext carries the shared
// tag registry and the graphs under construction; focusing one leaf
// node at a time through its UserGraphContext registers the node's
// outputs and exposes the tag queries a step translator needs.
//
// Translation never copies datasets. Every produced value is bound to
// an identity key in an append-only registry, and steps reference
// datasets purely through those (key, metadata) tags.
package translate
