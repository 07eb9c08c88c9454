package scanner

import "unsafe"

// StringToBytes converts a string to a byte slice without allocating.
// See https://github.com/golang/go/issues/53003#issuecomment-1140276077.
// The returned slice must never be mutated.
func StringToBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// BytesToString converts a byte slice to a string without allocating.
// See https://github.com/golang/go/issues/53003#issuecomment-1140276077.
// The returned string must not be used after b is mutated.
func BytesToString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
