package core

import "strings"

// SpecSet is a deduplicated set of specialization codes with
// case-insensitive identity. The zero value is not usable; construct with
// NewSpecSet.
type SpecSet struct {
	codes map[string]string // lower-cased code -> original code
}

// NewSpecSet returns an empty set.
func NewSpecSet() SpecSet {
	return SpecSet{codes: make(map[string]string)}
}

// Add inserts a code, keeping the first spelling seen.
func (s SpecSet) Add(code string) {
	key := strings.ToLower(code)
	if _, ok := s.codes[key]; !ok {
		s.codes[key] = code
	}
}

// Has reports membership ignoring case.
func (s SpecSet) Has(code string) bool {
	_, ok := s.codes[strings.ToLower(code)]
	return ok
}

// Len returns the number of distinct codes.
func (s SpecSet) Len() int { return len(s.codes) }

// Values returns the codes in unspecified order.
func (s SpecSet) Values() []string {
	out := make([]string, 0, len(s.codes))
	for _, c := range s.codes {
		out = append(out, c)
	}
	return out
}

// ResolveSpecializations scans every trigger of the table against the
// lower-cased texts and unions the specializations of every trigger found
// as a substring. All matches accumulate; there is no trigger priority and
// no early exit.
func ResolveSpecializations(table map[string][]string, texts ...string) SpecSet {
	lowered := make([]string, len(texts))
	for i, t := range texts {
		lowered[i] = strings.ToLower(t)
	}
	set := NewSpecSet()
	for trigger, specs := range table {
		for _, text := range lowered {
			if strings.Contains(text, trigger) {
				for _, s := range specs {
					set.Add(s)
				}
				break
			}
		}
	}
	return set
}
