package trace

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
	"time"
)

// MeasureTime writes Chrome trace events, viewable in chrome://tracing or
// Perfetto. It implements gui.Tracer.
type MeasureTime struct {
	out    *bufio.Writer
	closer io.Closer
	lock   sync.Mutex
	now    func() time.Time
	err    error
}

// New starts a trace on w. Finish must be called to complete the JSON.
func New(w io.Writer, process string) *MeasureTime {
	m := &MeasureTime{out: bufio.NewWriter(w), now: time.Now}
	if c, ok := w.(io.Closer); ok {
		m.closer = c
	}
	m.write(`{"traceEvents": [`)
	m.write(`{"name": "process_name", "ph": "M", "ts": ` + m.timestamp() +
		`, "pid": 1, "cat": "__metadata", "args": {"name": ` + strconv.Quote(process) + `}}`)
	return m
}

// Create starts a trace written to the file at path.
func Create(path, process string) (*MeasureTime, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create trace: %w", err)
	}
	return New(file, process), nil
}

func (m *MeasureTime) timestamp() string {
	return strconv.FormatInt(m.now().UnixMicro(), 10)
}

func (m *MeasureTime) write(s string) {
	if m.err != nil {
		return
	}
	_, m.err = m.out.WriteString(s)
}

func (m *MeasureTime) event(phase, name string) {
	m.lock.Lock()
	defer m.lock.Unlock()
	// note: no thread id available, everything is tid 1
	m.write(`, {"ph": "` + phase + `", "cat": "_", "name": ` + strconv.Quote(name) +
		`, "ts": ` + m.timestamp() + `, "pid": 1, "tid": 1}`)
}

// Time opens a slice named name.
func (m *MeasureTime) Time(name string) {
	m.event("B", name)
}

// Stop closes the innermost slice named name.
func (m *MeasureTime) Stop(name string) {
	m.event("E", name)
}

// Finish terminates the JSON document and closes the underlying writer when
// it is closable. It reports the first write error.
func (m *MeasureTime) Finish() error {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.write("]}")
	if m.err == nil {
		m.err = m.out.Flush()
	}
	if m.closer != nil {
		if err := m.closer.Close(); err != nil && m.err == nil {
			m.err = err
		}
	}
	if m.err != nil {
		return fmt.Errorf("trace: %w", m.err)
	}
	return nil
}
