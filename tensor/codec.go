package tensor

import (
	"encoding/binary"
	"fmt"
	"io"
)

// maxNameLen caps the name length accepted by Read, so a corrupt
// stream fails instead of triggering a huge allocation.
const maxNameLen = 1 << 20

// Write serializes the complete persistent state of the Index in a
// fixed field order: id (uint64), prime level (int32), bond dimension
// (int64), type ordinal (int32), and the raw name prefixed with its
// uint32 length. All fixed-width fields are little-endian. The order
// and widths are part of the persisted format and must not change.
func (i *Index) Write(w io.Writer) error {
	fields := []any{
		i.id,
		int32(i.primeLevel),
		i.Dim(),
		int32(i.typ),
		uint32(len(i.rawName)),
	}

	for _, f := range fields {
		if err := binary.Write(w, binary.LittleEndian, f); err != nil {
			return fmt.Errorf("writing index %q: %w", i.rawName, err)
		}
	}

	if _, err := io.WriteString(w, i.rawName); err != nil {
		return fmt.Errorf("writing index name %q: %w", i.rawName, err)
	}

	return nil
}

// Read restores an Index previously serialized with Write,
// overwriting the receiver. Reading back a written Index reproduces a
// value equal to the original under both Equals and NoPrimeEquals,
// with identical name, dimension, and type. A truncated or corrupt
// stream surfaces as an error and leaves the receiver unmodified.
func (i *Index) Read(r io.Reader) error {
	var (
		id      uint64
		plev    int32
		m       int64
		typ     int32
		nameLen uint32
	)

	for _, f := range []any{&id, &plev, &m, &typ, &nameLen} {
		if err := binary.Read(r, binary.LittleEndian, f); err != nil {
			return fmt.Errorf("reading index: %w", err)
		}
	}

	if typ < 0 || IndexType(typ) >= All {
		return fmt.Errorf("reading index: invalid type ordinal %d", typ)
	}

	if nameLen > maxNameLen {
		return fmt.Errorf(
			"reading index: name length %d exceeds %d", nameLen, maxNameLen)
	}

	name := make([]byte, nameLen)
	if _, err := io.ReadFull(r, name); err != nil {
		return fmt.Errorf("reading index name: %w", err)
	}

	i.id = id
	i.primeLevel = int(plev)
	i.m = m
	i.typ = IndexType(typ)
	i.rawName = string(name)

	return nil
}
