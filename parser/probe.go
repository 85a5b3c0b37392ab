package parser

import (
	"bufio"
	"bytes"
	"io"

	"github.com/pkg/errors"
)

const (
	// ProbeLines is the number of input lines examined by IsRecognizedFormat
	ProbeLines = 50
	// MaxProbeLineLength is the longest line IsRecognizedFormat accepts
	MaxProbeLineLength = 1 << 20
)

var recordsMarker = []byte("<records>")

// IsRecognizedFormat returns true if any of the first ProbeLines lines
// read from r contains "<records>", ignoring case. Lines end at "\n",
// "\r\n" or a lone "\r". It reads no further than that; callers must
// rewind or reopen the input before parsing.
func IsRecognizedFormat(r io.Reader) (bool, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), MaxProbeLineLength)
	sc.Split(scanLines)
	for i := 0; i < ProbeLines && sc.Scan(); i++ {
		if bytes.Contains(bytes.ToLower(sc.Bytes()), recordsMarker) {
			return true, nil
		}
	}
	return false, errors.WithStack(sc.Err())
}

// scanLines is a bufio.SplitFunc returning lines without their
// terminator, which may be "\n", "\r\n" or "\r".
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	i := bytes.IndexAny(data, "\r\n")
	switch {
	case i < 0 && atEOF:
		return len(data), data, nil
	case i < 0:
		return 0, nil, nil
	case data[i] == '\n':
		return i + 1, data[:i], nil
	case i+1 < len(data):
		if data[i+1] == '\n' {
			return i + 2, data[:i], nil
		}
		return i + 1, data[:i], nil
	case atEOF:
		return i + 1, data[:i], nil
	}
	// a trailing "\r" may be followed by "\n"
	return 0, nil, nil
}
