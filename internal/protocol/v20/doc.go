// Package v20 holds the OCPP 2.0 JSON message types and their hand-authored
// schema Catalog.
package v20
