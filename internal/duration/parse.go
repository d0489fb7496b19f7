// Package duration converts between free-form duration text and whole seconds.
//
// Parsing never fails: each parser in the chain reports whether it matched,
// and text that no parser accepts resolves to zero.
package duration

import (
	"strconv"
	"strings"
	"unicode"
)

// parser attempts to read a duration from trimmed text.
type parser func(text string) (int64, bool)

// chain is tried in order; the first match wins.
var chain = []parser{
	parseTokens,
	parseColons,
	parseDigits,
}

// Parse reads text such as "1h 20m 5s", "90:05", "01:30:00" or "45" and
// returns the number of seconds it denotes. Empty or unparsable text is 0.
func Parse(text string) int64 {
	t := strings.TrimSpace(text)
	if t == "" {
		return 0
	}
	for _, p := range chain {
		if secs, ok := p(t); ok {
			return max(secs, 0)
		}
	}
	return 0
}

// unitOrder lists token units in the only order they may appear.
var unitOrder = []struct {
	unit rune
	secs int64
}{
	{'h', 3600},
	{'m', 60},
	{'s', 1},
}

// parseTokens accepts optional "<n>h", "<n>m", "<n>s" segments. The grammar is
// anchored at the end of the text; the leftmost suffix that matches is used,
// so leading noise is ignored.
func parseTokens(text string) (int64, bool) {
	lower := strings.ToLower(text)
	for start := 0; start < len(lower); start++ {
		if secs, segments, ok := matchTokenSuffix(lower[start:]); ok {
			if segments == 0 {
				return 0, false
			}
			return secs, true
		}
	}
	return 0, false
}

// matchTokenSuffix reports whether s, in full, is a sequence of token
// segments in h, m, s order separated by optional whitespace.
func matchTokenSuffix(s string) (total int64, segments int, ok bool) {
	next := 0 // index into unitOrder of the earliest unit still allowed
	i := skipSpace(s, 0)
	for i < len(s) {
		j := i
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j == i {
			return 0, 0, false
		}
		n, err := strconv.ParseInt(s[i:j], 10, 32)
		if err != nil {
			return 0, 0, false
		}
		j = skipSpace(s, j)
		if j >= len(s) {
			return 0, 0, false
		}
		matched := false
		for k := next; k < len(unitOrder); k++ {
			if rune(s[j]) == unitOrder[k].unit {
				total += n * unitOrder[k].secs
				segments++
				next = k + 1
				matched = true
				break
			}
		}
		if !matched {
			return 0, 0, false
		}
		i = skipSpace(s, j+1)
	}
	return total, segments, true
}

// parseColons accepts "S", "M:S" and "H:M:S". Empty parts are ignored.
// With four or more parts only the first counts, as seconds.
func parseColons(text string) (int64, bool) {
	var nums []int64
	for _, part := range strings.Split(text, ":") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if !allDigits(part) {
			return 0, false
		}
		n, err := strconv.ParseInt(part, 10, 32)
		if err != nil {
			return 0, false
		}
		nums = append(nums, n)
	}

	switch len(nums) {
	case 0:
		return 0, false
	case 2:
		return nums[0]*60 + nums[1], true
	case 3:
		return nums[0]*3600 + nums[1]*60 + nums[2], true
	default:
		return nums[0], true
	}
}

// parseDigits strips every non-digit and reads what remains as seconds.
func parseDigits(text string) (int64, bool) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, text)
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func skipSpace(s string, i int) int {
	for i < len(s) && unicode.IsSpace(rune(s[i])) {
		i++
	}
	return i
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return s != ""
}
