package core

import "time"

// Entry is a single log event as submitted by a caller
type Entry struct {
	Level   Level
	Message string
}

// Record is one decoded line of a JSON-lines log file.
// Level holds the token that was written, which equals the label
// for the default registry.
type Record struct {
	TimeStamp string `json:"timeStamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
}

// Entry converts the record back into an Entry. The written token becomes
// the level unchanged; Registry.Label maps it back to its label.
func (r Record) Entry() Entry {
	return Entry{Level: Level(r.Level), Message: r.Message}
}

// Clock is the timestamp source used when rendering entries.
type Clock func() time.Time

// SystemClock returns the current local time.
func SystemClock() time.Time {
	return time.Now()
}
