package scanner

import "sync"

// scannerPool recycles Scanner instances: a Scanner's only heap cost
// is its junction-stack slice, so pooling avoids re-growing that slice
// on every file scanfmt's worker pool visits (see
// scanfmt/concurrent.go).
var scannerPool = sync.Pool{New: func() interface{} { return NewScanner() }}

// AcquireScanner returns a Scanner with an empty junction stack,
// reusing a previously released one when available.
func AcquireScanner() *Scanner {
	s := scannerPool.Get().(*Scanner)
	s.Reset()
	return s
}

// ReleaseScanner returns s to the pool. Callers must not use s again
// afterward.
func ReleaseScanner(s *Scanner) {
	scannerPool.Put(s)
}
