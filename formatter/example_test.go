package formatter_test

import (
	"fmt"
	"time"

	"github.com/philipp01105/filelog/core"
	"github.com/philipp01105/filelog/formatter"
)

func ExampleResolve() {
	for _, path := range []string{"app.log", "metrics.CSV", "events.jsonl", "data"} {
		kind, err := formatter.Resolve(path)
		if err != nil {
			fmt.Println(path, "->", "error")
			continue
		}
		fmt.Println(path, "->", kind)
	}
	// Output:
	// app.log -> text
	// metrics.CSV -> csv
	// events.jsonl -> jsonl
	// data -> error
}

func ExampleRender() {
	at := time.Date(2026, 1, 15, 12, 0, 0, 0, time.Local)
	entry := core.Entry{Level: core.InfoLevel, Message: "hello world"}

	line, _ := formatter.Render(entry, core.DefaultRegistry(), formatter.KindJSONL, at)
	fmt.Print(line)
	// Output:
	// {"timeStamp":"2026-01-15T12:00:00","level":"INFO","message":"hello world"}
}
