// Package protocol owns the save-dumper wire contract and parsing primitives.
//
// Ownership boundary:
// - trigger and marker byte constants
// - response header encode/decode
// - header-level error taxonomy
package protocol
