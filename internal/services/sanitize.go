package services

import "strings"

// Markdown fence markers removed from generated text before JSON decoding.
// The opening marker must be stripped first since it contains the closing one.
const (
	OpeningFence = "```json"
	ClosingFence = "```"
)

// StripCodeFences removes every occurrence of the opening and closing fence
// markers, wherever they appear in text. Surrounding text is left in place.
func StripCodeFences(text string) string {
	text = strings.ReplaceAll(text, OpeningFence, "")
	return strings.ReplaceAll(text, ClosingFence, "")
}

// FencedBody returns the text between the first opening fence and the
// closing fence that follows it. ok is false when there is no such pair.
func FencedBody(text string) (body string, ok bool) {
	_, after, found := strings.Cut(text, OpeningFence)
	if !found {
		return "", false
	}
	body, _, found = strings.Cut(after, ClosingFence)
	if !found {
		return "", false
	}
	return body, true
}
