// Package logger is the public API of filelog. Most users only need to
// import this package.
//
// A FileLogger owns a default target path and writes leveled entries to
// it. The file extension picks the line format (see package formatter),
// so switching a logger from text to JSON lines is a matter of calling
// DefinePath with a .jsonl path:
//
//	log := logger.New("logs/app.log")
//	if err := log.Create(logger.CreateOptions{KeepExisting: true}); err != nil {
//	    return err
//	}
//	log.Info("service started")
//
// Every operation that takes a path or an options struct with a Path
// field falls back to the current default path when it is empty. The
// option structs are designed so that their zero value is the usual
// behaviour: writes append, Create overwrites and Buffer.Write clears
// the buffer after a successful write.
//
// A Buffer batches rendered lines in memory and persists them with one
// write:
//
//	buf := log.NewBuffer()
//	buf.Push(core.Entry{Level: core.InfoLevel, Message: "step 1"})
//	buf.Push(core.Entry{Level: core.InfoLevel, Message: "step 2"})
//	err := buf.Write(logger.BufferWriteOptions{})
//
// A Buffer does not capture the path when it is created. Each Push looks
// up the logger's current default path, so lines pushed before and after
// a DefinePath call are rendered for the format in effect at the time of
// the push. A failed Write keeps the buffered lines so the caller can
// retry; the package never retries on its own.
//
// Custom registries, storage backends, clocks and diagnostics loggers are
// configured through the Builder:
//
//	log := logger.NewBuilder().
//	    WithPath("audit.jsonl").
//	    WithRegistry(core.NewRegistry(map[core.Level]string{"AUDIT": "AUDIT"})).
//	    WithDiagnostics(zap.NewExample()).
//	    Build()
package logger
