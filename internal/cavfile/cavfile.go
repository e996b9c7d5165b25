// Copyright (c) 2025 The ai-pathfinder Authors.
// SPDX-License-Identifier: Apache-2.0

package cavfile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/apex/log"

	"github.com/mitom/ai-pathfinder/internal/cave"
)

// DefaultName is the file generate writes when no path is given.
const DefaultName = "generated.cav"

// FormatError reports a malformed .cav document.
type FormatError struct {
	Field  int
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed cave at field %d: %s", e.Field, e.Reason)
}

// Encode writes c to w as a single line without a trailing newline.
func Encode(w io.Writer, c *cave.Cave) error {
	_, err := w.Write(appendCave(nil, c))
	return err
}

// Marshal returns the encoded form of c.
func Marshal(c *cave.Cave) ([]byte, error) {
	return appendCave(nil, c), nil
}

func appendCave(buf []byte, c *cave.Cave) []byte {
	cells := c.Matrix.Cells()
	if buf == nil {
		buf = make([]byte, 0, 8+12*c.Count()+2*len(cells))
	}

	buf = strconv.AppendInt(buf, int64(c.Count()), 10)
	for _, cv := range c.Caverns {
		buf = append(buf, ',')
		buf = strconv.AppendInt(buf, int64(cv.X), 10)
		buf = append(buf, ',')
		buf = strconv.AppendInt(buf, int64(cv.Y), 10)
	}
	for _, v := range cells {
		buf = append(buf, ',', '0'+v)
	}
	return buf
}

// WriteFile encodes c into path.
func WriteFile(path string, c *cave.Cave) error {
	data, err := Marshal(c)
	if err != nil {
		return err
	}
	if err := WriteBytes(path, data); err != nil {
		return err
	}

	log.Debugf("wrote %d caverns to %s", c.Count(), path)
	return nil
}

// WriteBytes stores an already encoded document at path. The bytes go to a
// temporary file next to path that is renamed into place, so a failed write
// never leaves a partial artifact behind.
func WriteBytes(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	defer func() {
		if err != nil {
			tmp.Close()           //nolint:errcheck
			os.Remove(tmp.Name()) //nolint:errcheck
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil { //nolint:mnd
		return fmt.Errorf("failed to set mode on %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move output into %s: %w", path, err)
	}

	log.Debugf("wrote %d bytes to %s", len(data), path)
	return nil
}

// Decode parses a .cav document. Leading and trailing whitespace is
// ignored.
func Decode(r io.Reader) (*cave.Cave, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Unmarshal(raw)
}

// Unmarshal parses an encoded cave.
func Unmarshal(raw []byte) (*cave.Cave, error) {
	doc := strings.TrimSpace(string(raw))
	if doc == "" {
		return nil, &FormatError{Field: 0, Reason: "empty document"}
	}
	fields := strings.Split(doc, ",")

	count, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return nil, &FormatError{Field: 0, Reason: fmt.Sprintf("count %q is not an integer", fields[0])}
	}
	if count < 0 {
		return nil, &FormatError{Field: 0, Reason: fmt.Sprintf("count %d is negative", count)}
	}

	want := 1 + 2*count + count*count
	if len(fields) != want {
		return nil, &FormatError{
			Field:  len(fields),
			Reason: fmt.Sprintf("expected %d fields for %d caverns, found %d", want, count, len(fields)),
		}
	}

	caverns := make([]cave.Cavern, count)
	for n := range caverns {
		fx, fy := 1+2*n, 2+2*n
		x, err := strconv.Atoi(strings.TrimSpace(fields[fx]))
		if err != nil {
			return nil, &FormatError{Field: fx, Reason: fmt.Sprintf("x %q is not an integer", fields[fx])}
		}
		y, err := strconv.Atoi(strings.TrimSpace(fields[fy]))
		if err != nil {
			return nil, &FormatError{Field: fy, Reason: fmt.Sprintf("y %q is not an integer", fields[fy])}
		}
		caverns[n] = cave.Cavern{X: x, Y: y}
	}

	m := cave.NewMatrix(count)
	offset := 1 + 2*count
	for k, f := range fields[offset:] {
		switch strings.TrimSpace(f) {
		case "0":
		case "1":
			m.Set(k/count, k%count, 1)
		default:
			return nil, &FormatError{Field: offset + k, Reason: fmt.Sprintf("matrix value %q is not 0 or 1", f)}
		}
	}

	return &cave.Cave{Caverns: caverns, Matrix: m}, nil
}

// ReadFile decodes the cave stored at path.
func ReadFile(path string) (*cave.Cave, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
