package services

import (
	"strings"
	"unicode/utf8"
)

// ChunkText packs paragraphs into chunks of at most maxRunes runes.
// Paragraphs longer than maxRunes are split on line breaks, then hard-cut.
func ChunkText(text string, maxRunes int) []string {
	if maxRunes <= 0 {
		maxRunes = 1000
	}

	var (
		chunks  []string
		current strings.Builder
		size    int
	)

	flush := func() {
		if size > 0 {
			chunks = append(chunks, strings.TrimSpace(current.String()))
			current.Reset()
			size = 0
		}
	}

	add := func(piece string) {
		n := utf8.RuneCountInString(piece)
		if size > 0 && size+n+1 > maxRunes {
			flush()
		}
		if size > 0 {
			current.WriteString("\n")
			size++
		}
		current.WriteString(piece)
		size += n
	}

	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		if utf8.RuneCountInString(para) <= maxRunes {
			add(para)
			continue
		}

		for _, line := range strings.Split(para, "\n") {
			line = strings.TrimSpace(line)
			for utf8.RuneCountInString(line) > maxRunes {
				flush()
				runes := []rune(line)
				chunks = append(chunks, string(runes[:maxRunes]))
				line = string(runes[maxRunes:])
			}
			if line != "" {
				add(line)
			}
		}
	}
	flush()

	return chunks
}
