// SPDX-License-Identifier: MIT

package builder

import "strconv"

// NameFn maps a zero-based city index to a city name. Same index, same name.
type NameFn func(idx int) string

// DecimalNames names cities "0", "1", "2", ...
func DecimalNames(idx int) string { return strconv.Itoa(idx) }

// LetterNames names cities like spreadsheet columns: A..Z, AA..AZ, BA, ...
// Panics on a negative index.
func LetterNames(idx int) string {
	if idx < 0 {
		panic("builder: LetterNames(negative index)")
	}
	var buf [16]byte
	i := len(buf)
	for n := idx + 1; n > 0; n /= 26 {
		n--
		i--
		buf[i] = byte('A' + n%26)
	}

	return string(buf[i:])
}

// PrefixNames names cities prefix0, prefix1, ...
func PrefixNames(prefix string) NameFn {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}

// WithNames sets the city naming scheme. Panics on nil.
func WithNames(fn NameFn) BuilderOption {
	if fn == nil {
		panic("builder: WithNames(nil)")
	}

	return func(c *builderConfig) { c.nameFn = fn }
}

// WithLetterNames is WithNames(LetterNames).
func WithLetterNames() BuilderOption { return WithNames(LetterNames) }

// WithPrefixNames is WithNames(PrefixNames(prefix)).
func WithPrefixNames(prefix string) BuilderOption { return WithNames(PrefixNames(prefix)) }
