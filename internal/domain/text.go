package domain

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

// WordsPerMinute is the read-aloud pace used for reading time estimates.
const WordsPerMinute = 150

// MaxNameLength bounds parent names and baby nicknames.
const MaxNameLength = 50

var (
	missingSpaceRe = regexp.MustCompile(`([.!?])([A-Z])`)
	spaceBeforeRe  = regexp.MustCompile(`\s+([.,!?])`)
	namePattern    = regexp.MustCompile(`^[a-zA-Z0-9\s\-']+$`)
)

// CountWords returns the number of whitespace-separated words in text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// EstimateReadingMinutes rounds words/WordsPerMinute up.
func EstimateReadingMinutes(words int) int {
	if words <= 0 {
		return 0
	}
	return int(math.Ceil(float64(words) / WordsPerMinute))
}

// NormalizePunctuation inserts a space between sentence-ending punctuation
// and a following capital letter, and drops whitespace before punctuation.
func NormalizePunctuation(text string) string {
	text = missingSpaceRe.ReplaceAllString(text, "$1 $2")
	return spaceBeforeRe.ReplaceAllString(text, "$1")
}

// CheckName returns a validation message for a display name, or "" if the
// name is acceptable. Names are interpolated into prompts, so only letters,
// digits, whitespace, hyphens and apostrophes are allowed.
func CheckName(name string) string {
	if utf8.RuneCountInString(name) > MaxNameLength {
		return fmt.Sprintf("max %d characters", MaxNameLength)
	}
	if !namePattern.MatchString(name) {
		return "may contain only letters, digits, spaces, hyphens, and apostrophes"
	}
	return ""
}
