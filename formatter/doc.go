// Package formatter decides how a log entry is laid out on disk.
//
// The target file's extension selects a Kind: .txt and .log produce plain
// text, .csv produces comma separated lines and .jsonl produces one JSON
// object per line. Resolve maps a path to its Kind without touching the
// filesystem, and a path with no extension or an unknown one is an error;
// there is no fallback format.
//
// Rendering is done by a Dispatcher, which owns the level Registry, the
// clock and one Formatter per Kind. Every rendered line ends in exactly one
// newline:
//
//	text:  2026-10-19T14:03:05 [INFO] service started
//	csv:   2026-10-19T14:03:05,INFO,service started
//	jsonl: {"timeStamp":"2026-10-19T14:03:05","level":"INFO","message":"service started"}
//
// Text and CSV output is not escaped. A message containing a comma or a
// newline is written as-is and will split the CSV record; JSON-lines output
// escapes values and round-trips through DecodeLines.
//
// Formatters use a pooled bytes.Buffer and time.AppendFormat so the common
// path does not allocate beyond the returned string. Buffers larger than
// 64 KiB are not returned to the pool.
package formatter
