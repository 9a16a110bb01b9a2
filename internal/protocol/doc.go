// Package protocol owns the OCPP-J wire vocabulary shared by the codec packages.
//
// Ownership boundary:
// - protocol versions and message type ids
// - decode/encode error taxonomy
// - field path notation used in errors
//
// Schema data lives in schema/, v16/ and v20/. Value conversion lives in
// primitive/ and structure/. Frame shapes live in envelope/.
package protocol
