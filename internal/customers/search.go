package customers

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// fold normalises s for matching. NFKC maps full-width ASCII to ASCII and
// half-width kana (including split voiced marks) to full-width kana; case is
// folded afterwards.
func fold(s string) string {
	return cases.Fold().String(norm.NFKC.String(strings.TrimSpace(s)))
}

// Matches reports whether q is a substring of any searchable field of c.
// An empty query matches everything.
func Matches(c Customer, q string) bool {
	needle := fold(q)
	if needle == "" {
		return true
	}
	fields := []string{c.Name}
	for _, p := range []*string{c.Code, c.Kana, c.Phone, c.Address1, c.Address2} {
		if p != nil {
			fields = append(fields, *p)
		}
	}
	for _, f := range fields {
		if strings.Contains(fold(f), needle) {
			return true
		}
	}
	return false
}

// Filter keeps the customers matching q, preserving order.
func Filter(list []Customer, q string) []Customer {
	if strings.TrimSpace(q) == "" {
		return list
	}
	out := make([]Customer, 0, len(list))
	for _, c := range list {
		if Matches(c, q) {
			out = append(out, c)
		}
	}
	return out
}
