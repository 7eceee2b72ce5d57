package ising

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"ising-ca/internal/core"
)

// ErrFormat reports a malformed state dump.
var ErrFormat = errors.New("malformed state dump")

// Format selects the state dump encoding.
type Format int

const (
	// FormatBinary is a 4-byte header (rows, cols as big-endian uint16)
	// followed by one signed byte per spin in row-major order.
	FormatBinary Format = iota
	// FormatText writes one lattice row per line as space-separated spins.
	FormatText
)

// ParseFormat maps "binary" or "text" to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "binary", "bin":
		return FormatBinary, nil
	case "text", "txt":
		return FormatText, nil
	}
	return 0, fmt.Errorf("unknown dump format %q", s)
}

// WriteState encodes the lattice to w.
func WriteState(w io.Writer, lat *core.Lattice, f Format) error {
	switch f {
	case FormatBinary:
		return writeBinary(w, lat)
	case FormatText:
		return writeText(w, lat)
	}
	return fmt.Errorf("unknown dump format %d", f)
}

// ReadState decodes a dump in either format, detecting which from the content.
func ReadState(r io.Reader) (*core.Lattice, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read state: %w", err)
	}
	if isText(data) {
		return readText(data)
	}
	return readBinary(data)
}

func writeBinary(w io.Writer, lat *core.Lattice) error {
	if lat.Rows() > math.MaxUint16 || lat.Cols() > math.MaxUint16 {
		return fmt.Errorf("lattice %dx%d too large for binary dump", lat.Rows(), lat.Cols())
	}
	var header [4]byte
	binary.BigEndian.PutUint16(header[0:2], uint16(lat.Rows()))
	binary.BigEndian.PutUint16(header[2:4], uint16(lat.Cols()))
	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	spins := lat.Spins()
	buf := make([]byte, len(spins))
	for i, s := range spins {
		buf[i] = byte(s)
	}
	_, err := w.Write(buf)
	return err
}

func writeText(w io.Writer, lat *core.Lattice) error {
	bw := bufio.NewWriter(w)
	for r := 0; r < lat.Rows(); r++ {
		for c := 0; c < lat.Cols(); c++ {
			if c > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.Itoa(int(lat.Get(r, c))))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func readBinary(data []byte) (*core.Lattice, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("binary header truncated: %w", ErrFormat)
	}
	rows := int(binary.BigEndian.Uint16(data[0:2]))
	cols := int(binary.BigEndian.Uint16(data[2:4]))
	body := data[4:]
	if len(body) != rows*cols {
		return nil, fmt.Errorf("binary body has %d spins, header says %dx%d: %w", len(body), rows, cols, ErrFormat)
	}
	lat, err := core.NewLattice(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrFormat)
	}
	spins := make([]int8, len(body))
	for i, b := range body {
		spins[i] = int8(b)
	}
	if err := lat.CopyFrom(spins); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrFormat)
	}
	return lat, nil
}

func readText(data []byte) (*core.Lattice, error) {
	var spins []int8
	rows, cols := 0, 0
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1<<24)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if rows == 0 {
			cols = len(fields)
		} else if len(fields) != cols {
			return nil, fmt.Errorf("row %d has %d spins, want %d: %w", rows, len(fields), cols, ErrFormat)
		}
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: %v: %w", rows, err, ErrFormat)
			}
			if v != 1 && v != -1 {
				return nil, fmt.Errorf("row %d: spin %s is not +1 or -1: %w", rows, f, ErrFormat)
			}
			spins = append(spins, int8(v))
		}
		rows++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan text dump: %w", err)
	}
	lat, err := core.NewLattice(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrFormat)
	}
	if err := lat.CopyFrom(spins); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrFormat)
	}
	return lat, nil
}

// isText reports whether data only holds characters a text dump can contain.
// Binary spins are 0x01 and 0xff, neither of which qualifies.
func isText(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	for _, b := range data {
		switch {
		case b >= '0' && b <= '9':
		case b == '-', b == '+', b == '.', b == 'e', b == 'E':
		case b == ' ', b == '\t', b == '\r', b == '\n':
		default:
			return false
		}
	}
	return true
}

// Load replaces the world's spins with lat, which must match the world size.
func (w *World) Load(lat *core.Lattice) error {
	if lat.Rows() != w.lattice.Rows() || lat.Cols() != w.lattice.Cols() {
		return fmt.Errorf("state is %dx%d, world is %dx%d", lat.Rows(), lat.Cols(), w.lattice.Rows(), w.lattice.Cols())
	}
	return w.lattice.CopyFrom(lat.Spins())
}
