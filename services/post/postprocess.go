package post

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Reading speed used for the estimated read time.
const wordsPerMinute = 200

const ellipsis = "..."

// truncateAtWord enforces the character cap. Text over the limit is cut at
// the nearest preceding word boundary and marked with an ellipsis; the
// result never exceeds max runes and never splits a word.
func truncateAtWord(text string, max int) string {
	if max <= 0 || utf8.RuneCountInString(text) <= max {
		return text
	}

	runes := []rune(text)
	cut := max - len(ellipsis)
	if cut <= 0 {
		return ellipsis[:max]
	}

	// Walk back to the last boundary so no word is split.
	boundary := cut
	for boundary > 0 && !unicode.IsSpace(runes[boundary-1]) {
		boundary--
	}
	if boundary == 0 {
		// A single word longer than the cap; cut it hard.
		boundary = cut
	}

	return strings.TrimRight(string(runes[:boundary]), " \t\n") + ellipsis
}

// NormalizeHashtags trims each requested tag, guarantees the leading "#",
// and drops empties and duplicates while preserving order.
func NormalizeHashtags(tags []string) []string {
	seen := make(map[string]struct{})
	normalized := make([]string, 0, len(tags))

	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		tag = strings.TrimLeft(tag, "#")
		if tag == "" {
			continue
		}
		tag = "#" + tag
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		normalized = append(normalized, tag)
	}

	return normalized
}

// hashtagsUsed reports which requested hashtags appear verbatim in the
// content, in the caller's original order. A tag only counts when it is not
// a prefix of a longer tag ("#ai" must not match inside "#aiart").
func hashtagsUsed(content string, requested []string) []string {
	used := make([]string, 0, len(requested))
	for _, tag := range requested {
		pattern := regexp.MustCompile(regexp.QuoteMeta(tag) + `(\W|$)`)
		if pattern.MatchString(content) {
			used = append(used, tag)
		}
	}
	return used
}

// readTime labels the estimated reading time from the word count.
func readTime(wordCount int) string {
	if wordCount < wordsPerMinute {
		return "Less than a minute"
	}

	minutes := (wordCount + wordsPerMinute - 1) / wordsPerMinute
	if minutes == 1 {
		return "About 1 minute"
	}
	return fmt.Sprintf("About %d minutes", minutes)
}
