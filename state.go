package scanner

import (
	"encoding/binary"
	"fmt"
)

// Serialize encodes the scanner's junction stack per spec §4.6:
//
//	byte 0:        depth (0-255)
//	depth records: 1 byte kind, 2 bytes column (little-endian)
//
// The returned slice is owned by the caller; Serialize never returns
// more than 1+255*3 bytes.
func (s *Scanner) Serialize() []byte {
	depth := s.stack.Depth()
	if depth > maxJunctionDepth {
		depth = maxJunctionDepth // spec §7: never write more than fits a byte
	}
	buf := make([]byte, 1+depth*3)
	buf[0] = byte(depth)
	for i := 0; i < depth; i++ {
		rec := s.stack.records[i]
		off := 1 + i*3
		buf[off] = byte(rec.kind)
		binary.LittleEndian.PutUint16(buf[off+1:], uint16(rec.column))
	}
	return buf
}

// Deserialize restores the scanner's junction stack from a buffer
// produced by Serialize. Per spec §7, "on violation reset to the
// empty stack": any malformed buffer resets the scanner to its
// initial state and returns a wrapped ErrMalformedState rather than
// leaving the scanner half-updated.
func (s *Scanner) Deserialize(buf []byte) error {
	if len(buf) == 0 {
		s.stack.reset()
		return nil
	}

	depth := int(buf[0])
	want := 1 + depth*3
	if len(buf) < want {
		s.stack.reset()
		return fmt.Errorf("scanner: %w: need %d bytes, have %d", ErrMalformedState, want, len(buf))
	}

	records := make([]junctionRecord, depth)
	for i := 0; i < depth; i++ {
		off := 1 + i*3
		kind := JunctionKind(buf[off])
		if kind != Conjunction && kind != Disjunction {
			s.stack.reset()
			return fmt.Errorf("scanner: %w: invalid junction kind %d", ErrMalformedState, buf[off])
		}
		column := int16(binary.LittleEndian.Uint16(buf[off+1:]))
		records[i] = junctionRecord{kind: kind, column: column}
	}
	if !monotone(records) {
		s.stack.reset()
		return fmt.Errorf("scanner: %w: columns not strictly increasing", ErrMalformedState)
	}

	s.stack.records = records
	return nil
}

func monotone(records []junctionRecord) bool {
	for i := 1; i < len(records); i++ {
		if records[i].column <= records[i-1].column {
			return false
		}
	}
	return true
}
