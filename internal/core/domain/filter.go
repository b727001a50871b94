package domain

import "strconv"

// FilterClause constrains one metadata field. Exactly one of the two forms is
// set: Equals for a single required value, OneOf for an accepted set.
type FilterClause struct {
	Equals string
	OneOf  []string
	isSet  bool
}

// Filter maps metadata field names to clauses. A nil or empty filter matches
// every document. Supported field names: "surah", "ayah_from", "ayah_to".
type Filter map[string]FilterClause

// Equals builds a clause that requires the field to equal value. Numeric
// values pass through canonicalization so that "2" and 2 compare equal.
func Equals(value string) FilterClause {
	return FilterClause{Equals: canonical(value), isSet: true}
}

// EqualsInt builds an Equals clause from a number.
func EqualsInt(value int) FilterClause {
	return FilterClause{Equals: strconv.Itoa(value), isSet: true}
}

// OneOf builds a clause satisfied by any of the given values.
func OneOf(values ...string) FilterClause {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = canonical(v)
	}
	return FilterClause{OneOf: out, isSet: true}
}

// OneOfInts builds a OneOf clause from surah or ayah numbers.
func OneOfInts(values ...int) FilterClause {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strconv.Itoa(v)
	}
	return FilterClause{OneOf: out, isSet: true}
}

// canonical normalizes a filter value so digit strings compare equal to the
// integers stored in metadata ("002" matches surah 2).
func canonical(value string) string {
	if n, err := strconv.Atoi(value); err == nil {
		return strconv.Itoa(n)
	}
	return value
}

func (c FilterClause) matches(value string) bool {
	if !c.isSet {
		return true
	}
	value = canonical(value)
	if c.OneOf != nil {
		for _, want := range c.OneOf {
			if value == want {
				return true
			}
		}
		return false
	}
	return value == c.Equals
}

// Matches reports whether the metadata satisfies every clause of the filter.
// Unknown field names never match, so a typo'd filter yields zero results
// rather than silently matching everything.
func (f Filter) Matches(m Metadata) bool {
	for field, clause := range f {
		var value string
		switch field {
		case "surah":
			value = strconv.Itoa(m.Surah)
		case "ayah_from":
			value = strconv.Itoa(m.AyahFrom)
		case "ayah_to":
			value = strconv.Itoa(m.AyahTo)
		default:
			if m.Extra == nil {
				return false
			}
			v, ok := m.Extra[field]
			if !ok {
				return false
			}
			value = v
		}
		if !clause.matches(value) {
			return false
		}
	}
	return true
}
