// Package trace records per-tick session snapshots to a msgpack stream
// and reads them back for inspection.
//
// A trace file is a Header followed by one Frame per tick, each encoded as
// a standalone msgpack value. Traces are debugging output; they can not be
// loaded back into a running session.
package trace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/tui-invasion/internal/invasion"
)

// Version is the trace format version written by this package.
const Version = 1

// Header describes the session a trace was recorded from.
type Header struct {
	Version   int       `msgpack:"version"`
	Player    string    `msgpack:"player"`
	Seed      int64     `msgpack:"seed"`
	TickRate  int       `msgpack:"tick_rate"`
	Width     float64   `msgpack:"width"`
	Height    float64   `msgpack:"height"`
	StartedAt time.Time `msgpack:"started_at"`
}

// Frame is one recorded tick.
type Frame struct {
	Snapshot invasion.Snapshot `msgpack:"snap"`
	Events   []invasion.Event  `msgpack:"events,omitempty"`
}

// Recorder streams frames to a file.
type Recorder struct {
	f      *os.File
	w      *bufio.Writer
	enc    *msgpack.Encoder
	frames int
}

// Create opens path for writing and records the header.
func Create(path string, h Header) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("trace: create %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	r := &Recorder{f: f, w: w, enc: msgpack.NewEncoder(w)}

	h.Version = Version
	if err := r.enc.Encode(&h); err != nil {
		f.Close()
		return nil, fmt.Errorf("trace: write header: %w", err)
	}
	return r, nil
}

// Record appends one tick.
func (r *Recorder) Record(snap invasion.Snapshot, events []invasion.Event) error {
	if err := r.enc.Encode(&Frame{Snapshot: snap, Events: events}); err != nil {
		return fmt.Errorf("trace: write frame %d: %w", r.frames, err)
	}
	r.frames++
	return nil
}

// Frames returns the number of frames recorded so far.
func (r *Recorder) Frames() int {
	return r.frames
}

// Close flushes buffered frames and closes the file.
func (r *Recorder) Close() error {
	flushErr := r.w.Flush()
	closeErr := r.f.Close()
	if err := errors.Join(flushErr, closeErr); err != nil {
		return fmt.Errorf("trace: close: %w", err)
	}
	return nil
}

// Reader decodes a trace file frame by frame.
type Reader struct {
	f      *os.File
	dec    *msgpack.Decoder
	header Header
}

// Open opens a trace file and reads its header.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("trace: open %s: %w", path, err)
	}

	r := &Reader{f: f, dec: msgpack.NewDecoder(bufio.NewReader(f))}
	if err := r.dec.Decode(&r.header); err != nil {
		f.Close()
		return nil, fmt.Errorf("trace: read header: %w", err)
	}
	if r.header.Version != Version {
		f.Close()
		return nil, fmt.Errorf("trace: unsupported version %d", r.header.Version)
	}
	return r, nil
}

// Header returns the trace header.
func (r *Reader) Header() Header {
	return r.header
}

// Next decodes the next frame. It returns io.EOF after the last one.
func (r *Reader) Next() (Frame, error) {
	var fr Frame
	if err := r.dec.Decode(&fr); err != nil {
		if errors.Is(err, io.EOF) {
			return fr, io.EOF
		}
		return fr, fmt.Errorf("trace: read frame: %w", err)
	}
	return fr, nil
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.f.Close()
}
