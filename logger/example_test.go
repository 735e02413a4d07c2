package logger_test

import (
	"fmt"
	"time"

	"github.com/philipp01105/filelog/core"
	"github.com/philipp01105/filelog/logger"
	"github.com/philipp01105/filelog/storage"
)

func fixedClock() time.Time {
	return time.Date(2026, 10, 19, 8, 0, 0, 0, time.Local)
}

// Write entries immediately and read them back.
func Example() {
	log := logger.NewBuilder().
		WithPath("app.log").
		WithStorage(storage.NewMemory()).
		WithClock(fixedClock).
		Build()

	log.Info("service started")
	log.Warn("cache cold")

	content, _ := log.Read("")
	fmt.Print(content.Text)
	// Output:
	// 2026-10-19T08:00:00 [INFO] service started
	// 2026-10-19T08:00:00 [WARN] cache cold
}

// Batch lines in a Buffer and persist them with one write.
func ExampleFileLogger_NewBuffer() {
	log := logger.NewBuilder().
		WithPath("events.jsonl").
		WithStorage(storage.NewMemory()).
		WithClock(fixedClock).
		Build()

	buf := log.NewBuffer()
	buf.Push(core.Entry{Level: core.InfoLevel, Message: "step 1"})
	buf.Push(core.Entry{Level: core.InfoLevel, Message: "step 2"})
	fmt.Println("buffered:", buf.Len())

	if err := buf.Write(logger.BufferWriteOptions{}); err != nil {
		fmt.Println(err)
		return
	}

	content, _ := log.Read("")
	for _, rec := range content.Records {
		fmt.Println(rec.Level, rec.Message)
	}
	// Output:
	// buffered: 2
	// INFO step 1
	// INFO step 2
}
