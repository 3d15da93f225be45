package proxy

import "errors"

// Sentinel errors for iterator/reference misuse. These are only ever
// surfaced through the debug-mode checks gated behind the drdebug
// build tag — see debug.go and nodebug.go.
var (
	// ErrDifferentContainers indicates two iterators being compared
	// (ordered, subtracted) belong to different containers.
	ErrDifferentContainers = errors.New("proxy: iterators belong to different containers")

	// ErrSingularIterator indicates a dereference of an iterator with no
	// backing container (the zero Iterator value).
	ErrSingularIterator = errors.New("proxy: dereference of a singular iterator")
)
