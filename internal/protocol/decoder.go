package protocol

import (
	"bytes"
	"errors"
	"strings"
)

// MaxLineSize caps the bytes buffered while waiting for a line terminator,
// so a peer that never sends one cannot grow the buffer without bound.
const MaxLineSize = 1 << 20

var ErrLineTooLong = errors.New("line exceeds maximum size")

// LineDecoder accumulates raw reads and yields complete newline-terminated
// lines. A request split across reads stays buffered until its terminator
// arrives; one read may likewise carry several requests.
type LineDecoder struct {
	buf bytes.Buffer
}

// Feed appends a chunk of raw bytes to the buffer.
func (d *LineDecoder) Feed(p []byte) error {
	d.buf.Write(p)
	b := d.buf.Bytes()
	if pending := len(b) - bytes.LastIndexByte(b, '\n') - 1; pending > MaxLineSize {
		return ErrLineTooLong
	}
	return nil
}

// Next pops the next complete line, without its terminator. A trailing CR is
// stripped so CRLF clients work. Returns false when no complete line is
// buffered.
func (d *LineDecoder) Next() (string, bool) {
	b := d.buf.Bytes()
	i := bytes.IndexByte(b, '\n')
	if i < 0 {
		return "", false
	}
	line := string(b[:i])
	d.buf.Next(i + 1)
	return strings.TrimSuffix(line, "\r"), true
}

// Pending reports the bytes buffered without a terminator yet.
func (d *LineDecoder) Pending() int {
	return d.buf.Len()
}
