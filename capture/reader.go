package capture

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"sync"

	"github.com/pkg/errors"
)

// maxLine bounds one record line, newline included
const maxLine = 1 << 20

// Reader yields the records of a capture in order
type Reader struct {
	br   *bufio.Reader
	line int
}

// NewReader reads records from r
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReaderSize(r, 64*1024)}
}

// Line returns the line number of the last record returned
func (r *Reader) Line() int {
	return r.line
}

// Next returns the next record. Blank lines and lines starting with '#' are
// skipped. A malformed or oversized record returns an error wrapping
// ErrMalformedRecord and reading may continue. io.EOF marks the end of the
// capture.
func (r *Reader) Next() (*Packet, error) {
	for {
		raw, tooLong, err := r.readLine()
		if err == io.EOF {
			return nil, io.EOF
		}
		if err != nil {
			return nil, errors.Wrap(err, "read capture")
		}
		r.line++
		if tooLong {
			return nil, errors.Wrapf(ErrMalformedRecord, "line %d exceeds %d bytes", r.line, maxLine)
		}

		line := bytes.TrimSpace(raw)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		p, err := ParseRecord(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", r.line)
		}
		return p, nil
	}
}

// readLine returns the next line. A line longer than maxLine is drained and
// reported with tooLong set and no data.
func (r *Reader) readLine() ([]byte, bool, error) {
	var line []byte
	tooLong := false
	for {
		chunk, err := r.br.ReadSlice('\n')
		if !tooLong {
			if len(line)+len(chunk) > maxLine {
				line, tooLong = nil, true
			} else {
				line = append(line, chunk...)
			}
		}

		switch err {
		case nil:
			return line, tooLong, nil
		case bufio.ErrBufferFull:
			continue
		case io.EOF:
			if len(line) > 0 || tooLong {
				return line, tooLong, nil
			}
			return nil, false, io.EOF
		default:
			return nil, false, err
		}
	}
}

// Writer appends records to a capture
type Writer struct {
	w  io.Writer
	mu sync.Mutex
}

// NewWriter writes records to w
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write appends one packet as a JSON line
func (w *Writer) Write(p *Packet) error {
	jsonBytes, err := json.Marshal(p.Record())
	if err != nil {
		return errors.Wrap(err, "encode record")
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := w.w.Write(append(jsonBytes, '\n')); err != nil {
		return errors.Wrap(err, "write record")
	}
	return nil
}
