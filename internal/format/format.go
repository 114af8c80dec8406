package format

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Fence is the line emitted to open and close a code block.
const Fence = "```"

const (
	headingPrefix = "## "
	indentSpaces  = "    "
	indentTab     = "\t"
)

// headingPrefixes are the literal line prefixes that mark a heading.
var headingPrefixes = []string{"Section", "Chapter", "Part"}

// quotedPattern matches a double-quoted span with at least one character
// and no embedded quote.
var quotedPattern = regexp.MustCompile(`"([^"]+)"`)

// Options selects which heuristics Format applies.
type Options struct {
	Headings   bool `json:"headings"    yaml:"headings"`
	Bold       bool `json:"bold"        yaml:"bold"`
	Italics    bool `json:"italics"     yaml:"italics"`
	CodeBlocks bool `json:"code_blocks" yaml:"code_blocks"`
}

// DefaultOptions returns Options with every heuristic enabled.
func DefaultOptions() Options {
	return Options{
		Headings:   true,
		Bold:       true,
		Italics:    true,
		CodeBlocks: true,
	}
}

// Format converts plain text to markdown. It never fails: every string,
// including the empty string, has a deterministic result.
func Format(text string, opts Options) string {
	lines := strings.Split(text, "\n")
	result := make([]string, 0, len(lines)+2)
	inCodeBlock := false

	for _, line := range lines {
		if opts.Headings && isHeading(line) {
			line = headingPrefix + line
		}

		if opts.CodeBlocks && isIndented(line) {
			if !inCodeBlock {
				result = append(result, Fence)
				inCodeBlock = true
			}
			line = stripIndent(line)
		} else if inCodeBlock {
			result = append(result, Fence)
			inCodeBlock = false
		}

		if opts.Bold {
			line = emphasizeCaps(line)
		}

		if opts.Italics {
			line = italicizeQuotes(line)
		}

		result = append(result, line)
	}

	if inCodeBlock {
		result = append(result, Fence)
	}

	return strings.Join(result, "\n")
}

// isHeading reports whether a raw line looks like a section heading.
func isHeading(line string) bool {
	if strings.HasSuffix(line, ":") {
		return true
	}
	for _, prefix := range headingPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// isIndented reports whether a line starts with four spaces or a tab.
func isIndented(line string) bool {
	return strings.HasPrefix(line, indentSpaces) || strings.HasPrefix(line, indentTab)
}

// stripIndent removes one level of indentation: four spaces if present,
// otherwise a single tab.
func stripIndent(line string) string {
	if rest, ok := strings.CutPrefix(line, indentSpaces); ok {
		return rest
	}
	return strings.TrimPrefix(line, indentTab)
}

// emphasizeCaps wraps all-caps words in ** and rejoins the words with
// single spaces.
func emphasizeCaps(line string) string {
	words := strings.Fields(line)
	for i, word := range words {
		if isShouting(word) {
			words[i] = "**" + word + "**"
		}
	}
	return strings.Join(words, " ")
}

// isShouting reports whether a word is longer than one character, has at
// least one upper-case letter and no lower-case or title-case letter.
// Digits and punctuation do not affect the result, so "ABC123" qualifies and
// "123" does not.
func isShouting(word string) bool {
	if utf8.RuneCountInString(word) <= 1 {
		return false
	}
	hasUpper := false
	for _, r := range word {
		if isLowerCased(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.Is(unicode.Other_Uppercase, r) {
			hasUpper = true
		}
	}
	return hasUpper
}

// isLowerCased reports whether r is a letter with a lower-case or title-case
// form, including ordinals such as 'ª' and letters such as 'ß' that have no
// single-rune upper-case mapping.
func isLowerCased(r rune) bool {
	return unicode.IsLower(r) || unicode.IsTitle(r) || unicode.Is(unicode.Other_Lowercase, r)
}

// italicizeQuotes replaces every "span" with *span*.
func italicizeQuotes(line string) string {
	return quotedPattern.ReplaceAllString(line, "*${1}*")
}
