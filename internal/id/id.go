// Package id formats posting references like "EXP-001".
package id

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatReference returns a reference like "EXP-001".
func FormatReference(prefix string, seq int) string {
	return fmt.Sprintf("%s-%03d", prefix, seq)
}

// ParseReference parses "EXP-001" into prefix and sequence.
func ParseReference(ref string) (prefix string, seq int, err error) {
	i := strings.LastIndex(ref, "-")
	if i <= 0 || i == len(ref)-1 {
		return "", 0, fmt.Errorf("invalid reference format: %q", ref)
	}

	seq, err = strconv.Atoi(ref[i+1:])
	if err != nil {
		return "", 0, fmt.Errorf("invalid sequence in reference %q: %w", ref, err)
	}
	return ref[:i], seq, nil
}
