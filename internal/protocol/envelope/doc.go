// Package envelope implements the OCPP-J frame layer: Call, CallResult and
// CallError envelopes, their JSON array form, and the error codes a peer
// answers with when a frame cannot be processed.
//
// Frame shapes:
//
//	[2, uniqueId, action, payload]
//	[3, uniqueId, payload]
//	[4, uniqueId, errorCode, errorDescription, errorDetails]
//
// A CallResult does not name its action on the wire, so the caller supplies
// it when parsing. Payloads are coded through the version catalog; error
// details pass through untouched.
package envelope
