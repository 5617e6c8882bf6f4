// Package textutil provides stateless text processing helpers: pattern
// extraction, slug generation, counting, and masking.
package textutil

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	emailRe    = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	emailOnly  = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	urlRe      = regexp.MustCompile(`https?://[^\s<>"{}|\\^` + "`" + `\[\]]+`)
	wordRe     = regexp.MustCompile(`\b[a-zA-Z]+\b`)
	anyWordRe  = regexp.MustCompile(`\b\w+\b`)
	sentenceRe = regexp.MustCompile(`[.!?]+`)
	hashtagRe  = regexp.MustCompile(`#(\w+)`)
	mentionRe  = regexp.MustCompile(`@(\w+)`)
	phoneRes   = map[string]*regexp.Regexp{
		"US": regexp.MustCompile(`[+]?[(]?[0-9]{3}[)]?[-\s.]?[0-9]{3}[-\s.]?[0-9]{4}`),
		"UK": regexp.MustCompile(`[+]?[0-9]{2}[-\s]?[0-9]{4}[-\s]?[0-9]{6}`),
	}
)

// ExtractEmails returns all email addresses found in text, in order.
func ExtractEmails(text string) []string {
	return emailRe.FindAllString(text, -1)
}

// ExtractURLs returns all http/https URLs found in text, in order.
func ExtractURLs(text string) []string {
	return urlRe.FindAllString(text, -1)
}

// ExtractPhoneNumbers returns phone numbers matching the given country's
// pattern. Unknown country codes fall back to the US pattern.
func ExtractPhoneNumbers(text, countryCode string) []string {
	re, ok := phoneRes[countryCode]
	if !ok {
		re = phoneRes["US"]
	}
	return re.FindAllString(text, -1)
}

// WordCount pairs a word with its occurrence count.
type WordCount struct {
	Word  string
	Count int
}

// WordFrequency counts alphabetic words in text. With ignoreCase the
// text is lowercased first.
func WordFrequency(text string, ignoreCase bool) map[string]int {
	if ignoreCase {
		text = strings.ToLower(text)
	}
	counts := make(map[string]int)
	for _, word := range wordRe.FindAllString(text, -1) {
		counts[word]++
	}
	return counts
}

// TopWords returns the n most frequent words, most frequent first; ties
// break alphabetically. n <= 0 returns all words.
func TopWords(text string, n int, ignoreCase bool) []WordCount {
	counts := WordFrequency(text, ignoreCase)
	words := make([]WordCount, 0, len(counts))
	for word, count := range counts {
		words = append(words, WordCount{Word: word, Count: count})
	}
	sort.Slice(words, func(i, j int) bool {
		if words[i].Count != words[j].Count {
			return words[i].Count > words[j].Count
		}
		return words[i].Word < words[j].Word
	})
	if n > 0 && len(words) > n {
		words = words[:n]
	}
	return words
}

var nonSlugRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts text to a URL-friendly slug: unicode folded to ASCII
// via NFKD, lowercased, runs of non-alphanumerics collapsed into the
// separator. maxLength <= 0 means unlimited.
func Slugify(text, separator string, maxLength int) string {
	if separator == "" {
		separator = "-"
	}

	// Decompose accented characters and drop the combining marks.
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	if folded, _, err := transform.String(t, text); err == nil {
		text = folded
	}
	// Strip everything that didn't fold down to ASCII.
	text = strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, text)

	text = strings.ToLower(text)
	text = nonSlugRe.ReplaceAllString(text, separator)
	text = strings.Trim(text, separator)

	if maxLength > 0 && len(text) > maxLength {
		text = strings.TrimRight(text[:maxLength], separator)
	}
	return text
}

// ValidateEmail reports whether the whole string is a plausible email
// address.
func ValidateEmail(email string) bool {
	return emailOnly.MatchString(email)
}

// Truncate shortens text to maxLength runes including the suffix.
func Truncate(text string, maxLength int, suffix string) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	cut := maxLength - len([]rune(suffix))
	if cut < 0 {
		cut = 0
	}
	return string(runes[:cut]) + suffix
}

// NormalizeWhitespace collapses all whitespace runs into single spaces
// and trims the ends.
func NormalizeWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// CountWords counts word tokens in text.
func CountWords(text string) int {
	return len(anyWordRe.FindAllString(text, -1))
}

// CountSentences counts sentence-terminating punctuation runs with
// non-blank content before them.
func CountSentences(text string) int {
	count := 0
	for _, part := range sentenceRe.Split(text, -1) {
		if strings.TrimSpace(part) != "" {
			count++
		}
	}
	return count
}

// ExtractHashtags returns hashtag words without the leading '#'.
func ExtractHashtags(text string) []string {
	return captures(hashtagRe, text)
}

// ExtractMentions returns @-mention names without the leading '@'.
func ExtractMentions(text string) []string {
	return captures(mentionRe, text)
}

func captures(re *regexp.Regexp, text string) []string {
	matches := re.FindAllStringSubmatch(text, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}

var (
	maskEmailRe = regexp.MustCompile(`([a-zA-Z0-9._%+-]+)@([a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`)
	maskPhoneRe = regexp.MustCompile(`\b(\d{3})[-.]?(\d{3})[-.]?(\d{4})\b`)
)

// MaskSensitive replaces email local parts and the leading digits of
// phone numbers with the mask character.
func MaskSensitive(text, maskChar string) string {
	if maskChar == "" {
		maskChar = "*"
	}

	text = maskEmailRe.ReplaceAllStringFunc(text, func(m string) string {
		parts := maskEmailRe.FindStringSubmatch(m)
		return strings.Repeat(maskChar, len(parts[1])) + "@" + parts[2]
	})

	text = maskPhoneRe.ReplaceAllStringFunc(text, func(m string) string {
		parts := maskPhoneRe.FindStringSubmatch(m)
		return strings.Repeat(maskChar, 3) + "-" + strings.Repeat(maskChar, 3) + "-" + parts[3]
	})

	return text
}

var alnumOnlyRe = regexp.MustCompile(`[^a-zA-Z0-9]`)

// IsPalindrome reports whether the alphanumeric content of text reads
// the same in both directions.
func IsPalindrome(text string, ignoreCase bool) bool {
	if ignoreCase {
		text = strings.ToLower(text)
	}
	text = alnumOnlyRe.ReplaceAllString(text, "")

	runes := []rune(text)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}
	return true
}
