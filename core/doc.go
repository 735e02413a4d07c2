// Package core defines the shared types used across filelog.
//
// It provides the Level label and the Registry that decides which labels
// are accepted and how they are rendered, the Entry type that represents
// a single log event submitted by a caller, and the Record type that a
// JSON-lines file decodes back into.
//
// The sentinel errors in this package name every failure kind the rest of
// the module can return. Errors are always wrapped with context (the path,
// level or line that caused them), so callers match them with errors.Is.
package core
