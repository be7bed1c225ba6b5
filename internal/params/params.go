// Package params provides the parameter (attribute) definition sources
// used to warm up the attribute stack-type table.
//
// A definition is stored in the game cache as a small opcode stream; the
// stores here either decode such payloads (SQLite dumps of the cache) or
// read already decoded records (YAML fixtures).
package params

import (
	"encoding/binary"
	"errors"
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// Record is a decoded parameter definition.
type Record struct {
	ID            int
	StackType     rune // compact descriptor character, 0 when absent
	DefaultInt    int32
	DefaultString string
	AutoDisable   bool
}

// Store yields parameter definitions in a stable order.
type Store interface {
	Records() ([]Record, error)
}

// Records is an in-memory Store.
type Records []Record

func (r Records) Records() ([]Record, error) {
	out := make([]Record, len(r))
	copy(out, r)
	return out, nil
}

// Definition opcodes.
const (
	opEnd           = 0
	opStackType     = 1
	opDefaultInt    = 2
	opNoAutoDisable = 4
	opDefaultString = 5
)

var ErrTruncated = errors.New("params: truncated definition")

// Decode parses the opcode stream of parameter id.
func Decode(id int, data []byte) (Record, error) {
	rec := Record{ID: id, AutoDisable: true}
	pos := 0
	for {
		if pos >= len(data) {
			return rec, fmt.Errorf("param %d: %w", id, ErrTruncated)
		}
		op := data[pos]
		pos++
		switch op {
		case opEnd:
			return rec, nil
		case opStackType:
			if pos >= len(data) {
				return rec, fmt.Errorf("param %d: stack type: %w", id, ErrTruncated)
			}
			rec.StackType = charmap.Windows1252.DecodeByte(data[pos])
			pos++
		case opDefaultInt:
			if pos+4 > len(data) {
				return rec, fmt.Errorf("param %d: default int: %w", id, ErrTruncated)
			}
			rec.DefaultInt = int32(binary.BigEndian.Uint32(data[pos:]))
			pos += 4
		case opNoAutoDisable:
			rec.AutoDisable = false
		case opDefaultString:
			s, n, err := readString(data[pos:])
			if err != nil {
				return rec, fmt.Errorf("param %d: default string: %w", id, err)
			}
			rec.DefaultString = s
			pos += n
		default:
			return rec, fmt.Errorf("param %d: unknown opcode %d at offset %d", id, op, pos-1)
		}
	}
}

// readString reads a NUL-terminated Windows-1252 string and returns it
// with the number of bytes consumed including the terminator.
func readString(data []byte) (string, int, error) {
	for i, b := range data {
		if b == 0 {
			s, err := charmap.Windows1252.NewDecoder().Bytes(data[:i])
			if err != nil {
				return "", 0, err
			}
			return string(s), i + 1, nil
		}
	}
	return "", 0, ErrTruncated
}
