//go:build drdebug

package proxy

// Debug-mode iterator checks: detect an invalid iterator operation
// (comparing/subtracting iterators over different containers,
// dereferencing a singular iterator) that the production build lets
// through uncaught. Built only under -tags drdebug; see nodebug.go for
// the production no-op variant.

func checkSameContainer[C comparable](a, b C) {
	if a != b {
		panic(ErrDifferentContainers)
	}
}

func checkNonSingular[C comparable](c C) {
	var zero C
	if c == zero {
		panic(ErrSingularIterator)
	}
}
