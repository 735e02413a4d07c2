package benchmark

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/filelog/core"
	"github.com/philipp01105/filelog/logger"
)

// ---------------------------------------------------------------------------
// Helpers – every framework renders one JSON line per message
// ---------------------------------------------------------------------------

func newFilelogDiscard() *logger.FileLogger {
	return logger.NewBuilder().
		WithPath("bench.jsonl").
		WithStorage(discardStorage{}).
		Build()
}

func newZapLogger(w io.Writer) *zap.Logger {
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	c := zapcore.NewCore(enc, zapcore.AddSync(w), zap.DebugLevel)
	return zap.New(c)
}

func newSlogLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newLogrusLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.DebugLevel)
	return l
}

func newZerologLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger().Level(zerolog.DebugLevel)
}

func openAppend(b *testing.B, path string) *os.File {
	b.Helper()
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() { _ = f.Close() })
	return f
}

// ---------------------------------------------------------------------------
// Scenario 1 – Render only, output discarded
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_Discard(b *testing.B) {
	b.Run("filelog", func(b *testing.B) {
		l := newFilelogDiscard()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = l.Info("info message")
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger(io.Discard)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger(io.Discard)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger(io.Discard)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger(io.Discard)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Msg("info message")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 2 – Append to a real file
// filelog opens and closes the file on every write; the others hold it open.
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_FileAppend(b *testing.B) {
	b.Run("filelog", func(b *testing.B) {
		l := logger.New(filepath.Join(b.TempDir(), "bench.jsonl"))
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = l.Info("info message")
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger(openAppend(b, filepath.Join(b.TempDir(), "bench.jsonl")))
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger(openAppend(b, filepath.Join(b.TempDir(), "bench.jsonl")))
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger(openAppend(b, filepath.Join(b.TempDir(), "bench.jsonl")))
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger(openAppend(b, filepath.Join(b.TempDir(), "bench.jsonl")))
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Msg("info message")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 3 – Batched writes
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_Batched(b *testing.B) {
	const batch = 100

	b.Run("filelog", func(b *testing.B) {
		l := logger.New(filepath.Join(b.TempDir(), "bench.jsonl"))
		buf := l.NewBuffer()
		entry := core.Entry{Level: core.InfoLevel, Message: "info message"}
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = buf.Push(entry)
			if buf.Len() == batch {
				_ = buf.Write(logger.BufferWriteOptions{})
			}
		}
		_ = buf.Write(logger.BufferWriteOptions{})
	})

	b.Run("zap", func(b *testing.B) {
		ws := &zapcore.BufferedWriteSyncer{
			WS:   zapcore.AddSync(openAppend(b, filepath.Join(b.TempDir(), "bench.jsonl"))),
			Size: batch * 128,
		}
		defer ws.Stop()
		enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		l := zap.New(zapcore.NewCore(enc, ws, zap.DebugLevel))
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("info message")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 4 – Parallel writers, output discarded
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_Parallel(b *testing.B) {
	b.Run("filelog", func(b *testing.B) {
		l := newFilelogDiscard()
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				_ = l.Info("info message")
			}
		})
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger(io.Discard)
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Info("info message")
			}
		})
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger(io.Discard)
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Info().Msg("info message")
			}
		})
	})
}
