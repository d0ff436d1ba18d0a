// Package types defines the result codes and typed errors shared by every
// qmakepatch layer, plus the fixed limits the field heuristics enforce.
//
// Every fallible operation returns an error that maps onto exactly one Code
// through CodeOf; the CLI uses that code as its exit status.
package types
