package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SplitByLength splits s into two parts at a word boundary. The first part is
// the longest whole-word prefix that fits within limit runes; the remainder
// becomes the second part. Words are never broken in the middle, so if the
// first word alone exceeds limit it becomes the whole first part.
func SplitByLength(s string, limit int) (string, string) {
	words := strings.Split(s, " ")
	part1 := ""
	part2 := ""

	for i, word := range words {
		test := word
		if part1 != "" {
			test = part1 + " " + word
		}
		if utf8.RuneCountInString(test) > limit && part1 != "" {
			part2 = strings.Join(words[i:], " ")
			break
		}
		if utf8.RuneCountInString(test) > limit && part1 == "" {
			// First word longer than the limit: keep it whole.
			part1 = word
			if i+1 < len(words) {
				part2 = strings.Join(words[i+1:], " ")
			}
			break
		}
		part1 = test
	}

	return strings.TrimSpace(part1), strings.TrimSpace(part2)
}

// RemoveDuplicateSegments drops token segments that repeat verbatim later in
// the string. At each position it looks for the longest segment starting there
// that also occurs in the remaining text; if found the segment is skipped
// entirely, otherwise the token is kept and the scan advances by one. Used to
// clean addresses that were concatenated with overlapping fragments.
func RemoveDuplicateSegments(text string) string {
	tokens := strings.Fields(text)
	var result []string

	i := 0
	for i < len(tokens) {
		found := false
		for length := len(tokens) - i; length > 0; length-- {
			segment := strings.Join(tokens[i:i+length], " ")
			remaining := strings.Join(tokens[i+length:], " ")
			if remaining != "" && strings.Contains(remaining, segment) {
				i += length
				found = true
				break
			}
		}
		if !found {
			result = append(result, tokens[i])
			i++
		}
	}

	return strings.Join(result, " ")
}

// RemoveAfterKeyword truncates text at the first keyword that occurs in it,
// checking keywords in order. The keyword itself is removed.
func RemoveAfterKeyword(text string, keywords []string) string {
	for _, keyword := range keywords {
		if keyword == "" {
			continue
		}
		if idx := strings.Index(text, keyword); idx != -1 {
			return strings.TrimSpace(text[:idx])
		}
	}
	return text
}

// ToCamelCase converts a header like "Order ID" to "orderId".
func ToCamelCase(s string) string {
	lowered := strings.ToLower(s)
	var b strings.Builder
	pending := false
	for _, r := range lowered {
		if !isAlphanumeric(r) {
			pending = true
			continue
		}
		if pending && b.Len() > 0 {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(r)
		}
		pending = false
	}
	return b.String()
}

// ToSnakeCase converts "Order ID" or "orderId" to "order_id". Runs of
// uppercase letters collapse into one word so "ID" does not split.
func ToSnakeCase(s string) string {
	var b strings.Builder
	prevLower := false
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			if b.Len() > 0 && !strings.HasSuffix(b.String(), "_") {
				b.WriteRune('_')
			}
			prevLower = false
		case unicode.IsUpper(r):
			if prevLower {
				b.WriteRune('_')
			}
			b.WriteRune(unicode.ToLower(r))
			prevLower = false
		default:
			b.WriteRune(r)
			prevLower = true
		}
	}
	return strings.Trim(b.String(), "_")
}

// ToPascalCase converts "order id" to "OrderId".
func ToPascalCase(s string) string {
	words := strings.Fields(s)
	var b strings.Builder
	for _, word := range words {
		r, size := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(strings.ToLower(word[size:]))
	}
	return b.String()
}

// ToKebabCase converts "Order ID" to "order-id".
func ToKebabCase(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(s))), "-")
}

// ToTitleCase uppercases the first letter of every word.
func ToTitleCase(s string) string {
	lowered := strings.ToLower(s)
	var b strings.Builder
	startOfWord := true
	for _, r := range lowered {
		if unicode.IsSpace(r) {
			startOfWord = true
			b.WriteRune(r)
			continue
		}
		if startOfWord {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(r)
		}
		startOfWord = false
	}
	return b.String()
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
