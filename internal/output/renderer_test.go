package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/philipp01105/filelog/core"
)

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(&buf)

	recs := []core.Record{
		{TimeStamp: "2026-10-19T10:00:00", Level: "ERROR", Message: "disk full"},
		{TimeStamp: "2026-10-19T10:00:01", Level: "CUSTOM", Message: "other"},
	}
	for _, rec := range recs {
		if err := r.Render(rec); err != nil {
			t.Fatalf("Render() error = %v", err)
		}
	}

	out := buf.String()
	for _, want := range []string{"2026-10-19T10:00:00", "ERROR", "disk full", "CUSTOM", "other"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got %q", want, out)
		}
	}
	if strings.Count(out, "\n") != 2 {
		t.Errorf("expected 2 lines, got %q", out)
	}
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := New("json", &buf)

	rec := core.Record{TimeStamp: "t", Level: "INFO", Message: "hello"}
	if err := r.Render(rec); err != nil {
		t.Fatal(err)
	}

	var got core.Record
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if got != rec {
		t.Errorf("decoded %+v, want %+v", got, rec)
	}
}

func TestNew_DefaultsToText(t *testing.T) {
	if _, ok := New("text", &bytes.Buffer{}).(*TextRenderer); !ok {
		t.Error("New(text) did not return a TextRenderer")
	}
	if _, ok := New("", &bytes.Buffer{}).(*TextRenderer); !ok {
		t.Error("New(\"\") did not return a TextRenderer")
	}
}
