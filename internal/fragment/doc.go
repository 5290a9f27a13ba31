// Package fragment parses media fragment locators of the kind embedded in
// canvas identifiers and annotation selectors.
//
// It owns the temporal (t=start[,end]) and spatial (xywh=...) micro-grammars
// and the dispatch between plain URI strings and structured SpecificResource
// references. The manifest resolver reuses the same grammar functions so both
// entry points share one parsing rule.
//
// Malformed input never produces an error: an unparseable sub-fragment is
// simply absent from the result.
package fragment
