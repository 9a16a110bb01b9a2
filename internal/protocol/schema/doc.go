// Package schema is the static Schema Model: value kinds, field descriptors,
// enumerations and per-version catalogs of message type definitions. Both
// directions of the structural codec consult it by lookup.
package schema
