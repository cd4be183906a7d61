package scoring

import "regexp"

const (
	EmailPlaceholder = "[EMAIL]"
	PhonePlaceholder = "[PHONE]"
	NamePlaceholder  = "[NAME]"
)

var (
	emailRe    = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneRe    = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?(\d{3,5}[-.\s]?\d{3,4}[-.\s]?\d{3,4})`)
	nameHintRe = regexp.MustCompile(`(?i)Name\s*:\s*(.+)`)
)

// RedactionCounts records how many substitutions Anonymize made per category.
type RedactionCounts struct {
	Emails int `json:"emails"`
	Phones int `json:"phones"`
	Names  int `json:"names"`
}

// Total is the number of substitutions across all categories.
func (c RedactionCounts) Total() int {
	return c.Emails + c.Phones + c.Names
}

// Anonymize redacts email addresses, phone numbers and the value of a
// labelled "Name:" line. Running it on its own output changes nothing.
func Anonymize(text string) (string, RedactionCounts) {
	var counts RedactionCounts

	text = emailRe.ReplaceAllStringFunc(text, func(string) string {
		counts.Emails++
		return EmailPlaceholder
	})

	text = phoneRe.ReplaceAllStringFunc(text, func(string) string {
		counts.Phones++
		return PhonePlaceholder
	})

	text = nameHintRe.ReplaceAllStringFunc(text, func(match string) string {
		sub := nameHintRe.FindStringSubmatch(match)
		if len(sub) > 1 && sub[1] != NamePlaceholder {
			counts.Names++
		}
		return "Name: " + NamePlaceholder
	})

	return text, counts
}
