package logschema

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// Log schema constants for raysum structured logs.
const (
	SchemaID    = "raysum.log.v1"
	FieldSchema = "log_schema"

	FieldTimestamp = "ts"
	FieldLevel     = "level"
	FieldMessage   = "msg"
	FieldLogger    = "logger"
	FieldCaller    = "caller"
	FieldStack     = "stack"

	FieldComponent = "component"
	FieldEvent     = "event"
	FieldResult    = "result"
	FieldError     = "error"
	FieldRunID     = "run_id"
)

// LogRecord is a generic map representation of a log entry.
type LogRecord map[string]interface{}

func (r LogRecord) str(key string) string {
	s, _ := r[key].(string)
	return s
}

func (r LogRecord) Schema() string  { return r.str(FieldSchema) }
func (r LogRecord) Level() string   { return r.str(FieldLevel) }
func (r LogRecord) Message() string { return r.str(FieldMessage) }
func (r LogRecord) RunID() string   { return r.str(FieldRunID) }

// ReadRecords decodes one JSON record per line, as written by the file sink.
// Blank lines are skipped.
func ReadRecords(r io.Reader) ([]LogRecord, error) {
	var out []LogRecord
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for n := 1; sc.Scan(); n++ {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		rec := LogRecord{}
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("log line %d: %w", n, err)
		}
		out = append(out, rec)
	}
	return out, sc.Err()
}
