package process

import (
	"strings"
	"unicode/utf8"
)

// splitLines decodes a drained stream into lines. An empty buffer and a
// buffer that is not valid UTF-8 both yield an empty, non-nil slice.
// Trailing line terminators are dropped before splitting on '\n', so "\n"
// yields a single empty line.
func splitLines(b []byte) []string {
	if len(b) == 0 || !utf8.Valid(b) {
		return []string{}
	}
	return strings.Split(strings.TrimRight(string(b), "\r\n"), "\n")
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
