// Package storage is the filesystem boundary of filelog.
//
// A Storage creates, appends to, overwrites, reads and deletes whole files.
// Each Write is issued as a single call to the underlying file, so one
// rendered batch is never interleaved with another writer's batch by this
// package; ordering across writers is whatever the host filesystem gives
// O_APPEND writes.
//
// Two implementations are provided:
//
//   - OS works against the real filesystem. Paths are made absolute before
//     use, parent directories are created with mode 0755 and files with 0644.
//   - Memory keeps files in a map. It is useful for tests and dry runs and
//     can be told to fail the next operations with FailWith.
//
// Missing files surface as core.ErrNotFound from ReadAll and Remove; every
// other failure is wrapped in core.ErrIO with the underlying error kept in
// the chain.
package storage
