package scoring

import (
	"regexp"
	"strings"
)

var tokenStripRe = regexp.MustCompile(`[^a-z0-9+#.\- ]`)

// NormalizeToken lowercases t and replaces every character outside
// [a-z0-9+#.- ] with a space before trimming.
func NormalizeToken(t string) string {
	return strings.TrimSpace(tokenStripRe.ReplaceAllString(strings.ToLower(t), " "))
}

// NormalizeSkills normalizes a skill list into an ordered set, dropping
// entries that normalize to nothing.
func NormalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		n := NormalizeToken(s)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// Standardize trims every line of extracted text and drops blank lines and
// page markers ("Page 2 of 3").
func Standardize(text string) string {
	var kept []string
	for _, line := range splitLines(text) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(strings.ToLower(line), "page ") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// lowerASCII lowercases A-Z only so byte offsets stay aligned with the input.
func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
