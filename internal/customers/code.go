package customers

import (
	"fmt"
	"regexp"
	"strconv"
)

// CodeLookback is how many of the most recent codes feed the next number.
const CodeLookback = 50

var codePattern = regexp.MustCompile(`C(\d{6})`)

// NextCode returns C + (max numeric suffix among recent + 1), zero-padded to
// six digits. Codes without a C###### portion are ignored.
func NextCode(recent []string) string {
	max := 0
	for _, code := range recent {
		m := codePattern.FindStringSubmatch(code)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("C%06d", max+1)
}
