//go:build !drdebug

package proxy

// Production build: iterator identity/singularity checks compile out
// entirely, so the hot-path arithmetic in iterator.go stays
// branch-free.

func checkSameContainer[C comparable](a, b C) {}

func checkNonSingular[C comparable](c C) {}
