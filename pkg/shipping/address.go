package shipping

import (
	"strings"
)

// ParseAddressLines extracts a street line, city, state and postal code
// from a free-text multi-line address blob.
//
// The extraction is positional over newline-split lines: line 1 (or
// line 0 when only one line exists) becomes the street line, line 2 the
// city, and line 3 is split on single spaces into state and postal
// code. Anything absent defaults to the empty string. This is a
// best-effort heuristic, not an address parser; callers depend on its
// exact behavior for blobs outside the four-line convention, so it must
// not be tightened.
func ParseAddressLines(raw string) Address {
	lines := strings.Split(raw, "\n")

	var addr Address
	if len(lines) > 1 {
		addr.Line1 = lines[1]
	} else if len(lines) > 0 {
		addr.Line1 = lines[0]
	}
	if len(lines) > 2 {
		addr.City = lines[2]
	}
	if len(lines) > 3 {
		tokens := strings.Split(lines[3], " ")
		if len(tokens) > 0 {
			addr.State = tokens[0]
		}
		if len(tokens) > 1 {
			addr.PostalCode = tokens[1]
		}
	}
	return addr
}
