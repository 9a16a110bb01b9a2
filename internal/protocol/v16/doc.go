// Package v16 holds the OCPP 1.6 JSON message types and their hand-authored
// schema Catalog. Types here are never shared with other protocol versions.
package v16
