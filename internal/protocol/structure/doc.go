// Package structure walks a schema definition to convert between typed
// payload structs and generic JSON trees (map[string]any, []any,
// json.Number, string, bool, nil). Keys come from field descriptors only;
// Go field names never reach the wire.
package structure
