package validation

import (
	"sort"
	"sync"

	"golang.org/x/text/currency"
)

// CodeSet is an immutable set of ISO 4217 currency codes.
type CodeSet struct {
	codes map[string]struct{}
}

// NewCodeSet builds a set from the given codes.
func NewCodeSet(codes ...string) CodeSet {
	m := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		m[c] = struct{}{}
	}
	return CodeSet{codes: m}
}

// Contains reports whether code is in the set.
func (s CodeSet) Contains(code string) bool {
	_, ok := s.codes[code]
	return ok
}

// Len returns the number of codes in the set.
func (s CodeSet) Len() int {
	return len(s.codes)
}

// Codes returns the codes in ascending order.
func (s CodeSet) Codes() []string {
	out := make([]string, 0, len(s.codes))
	for c := range s.codes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// regionlessCodes are ISO 4217 codes bound to no region, so region queries miss them.
var regionlessCodes = []string{
	"XAG", "XAU", "XBA", "XBB", "XBC", "XBD", "XDR", "XPD", "XPT", "XSU", "XTS", "XUA", "XXX",
}

// DefaultCodeSet returns every currency known to the CLDR tables, across all
// regions, including historical and non-tender units. Built on first use.
var DefaultCodeSet = sync.OnceValue(func() CodeSet {
	var codes []string
	it := currency.Query(currency.Historical, currency.NonTender)
	for it.Next() {
		codes = append(codes, it.Unit().String())
	}
	for _, code := range regionlessCodes {
		if unit, err := currency.ParseISO(code); err == nil {
			codes = append(codes, unit.String())
		}
	}
	return NewCodeSet(codes...)
})
