package format

import (
	"strings"
	"testing"
)

func TestFormat_AllHeuristics(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "mixed document",
			input: "Section 1:\nHello WORLD\n    code line\nDone",
			want:  "## Section 1:\nHello **WORLD**\n```\ncode line\n```\nDone",
		},
		{
			name:  "quoted span",
			input: `He said "hello" to me`,
			want:  "He said *hello* to me",
		},
		{
			name:  "input ends inside code block",
			input: "intro\n    x = 1",
			want:  "intro\n```\nx = 1\n```",
		},
		{
			name:  "tab indented code",
			input: "\tfoo()",
			want:  "```\nfoo()\n```",
		},
		{
			name:  "consecutive indented lines share one fence",
			input: "a\n    b\n    c\nd",
			want:  "a\n```\nb\nc\n```\nd",
		},
		{
			name:  "blank line closes a block",
			input: "    a\n\n    b",
			want:  "```\na\n```\n\n```\nb\n```",
		},
		{
			name:  "trailing newline closes final block",
			input: "a\n\te\n",
			want:  "a\n```\ne\n```\n",
		},
		{
			name:  "whitespace only line collapses",
			input: "   ",
			want:  "",
		},
		{
			name:  "chapter prefix",
			input: "Chapter One",
			want:  "## Chapter One",
		},
		{
			name:  "prefix match is not word aware",
			input: "Partial results",
			want:  "## Partial results",
		},
		{
			name:  "prefix match is case sensitive",
			input: "section two",
			want:  "section two",
		},
		{
			name:  "quoted caps are bolded then italicized",
			input: `say "HELLO"`,
			want:  "say ***HELLO***",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.input, DefaultOptions())
			if got != tt.want {
				t.Errorf("Format(%q) =\n%q\nwant\n%q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormat_SingleHeuristic(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  Options
		want  string
	}{
		{
			name:  "headings only",
			input: "Overview:\nbody",
			opts:  Options{Headings: true},
			want:  "## Overview:\nbody",
		},
		{
			name:  "heading is never fenced",
			input: "    Summary:",
			opts:  Options{Headings: true, CodeBlocks: true},
			want:  "##     Summary:",
		},
		{
			name:  "only one indent prefix is removed",
			input: "    \tx",
			opts:  Options{CodeBlocks: true},
			want:  "```\n\tx\n```",
		},
		{
			name:  "eight spaces lose four",
			input: "        nested",
			opts:  Options{CodeBlocks: true},
			want:  "```\n    nested\n```",
		},
		{
			name:  "three spaces are not code",
			input: "   almost",
			opts:  Options{CodeBlocks: true},
			want:  "   almost",
		},
		{
			name:  "bold qualification",
			input: "NASA and ABC123 and 123 and A and WORLD! and --",
			opts:  Options{Bold: true},
			want:  "**NASA** and **ABC123** and 123 and A and **WORLD!** and --",
		},
		{
			name:  "bold rejects sharp s",
			input: "SSß STRASSE",
			opts:  Options{Bold: true},
			want:  "SSß **STRASSE**",
		},
		{
			name:  "bold rejects lower-case letters without upper form",
			input: "ABĸ ABª ǅX",
			opts:  Options{Bold: true},
			want:  "ABĸ ABª ǅX",
		},
		{
			name:  "bold accepts other upper-case symbols",
			input: "ⒶⒷ ÉCOLE",
			opts:  Options{Bold: true},
			want:  "**ⒶⒷ** **ÉCOLE**",
		},
		{
			name:  "bold normalizes whitespace",
			input: "  hello   big \t WORLD  ",
			opts:  Options{Bold: true},
			want:  "hello big **WORLD**",
		},
		{
			name:  "bold counts characters not bytes",
			input: "É ÉÉ",
			opts:  Options{Bold: true},
			want:  "É **ÉÉ**",
		},
		{
			name:  "italics pairs left to right",
			input: `"a" and "b"`,
			opts:  Options{Italics: true},
			want:  "*a* and *b*",
		},
		{
			name:  "unmatched quote is kept",
			input: `say "hi" and "bye`,
			opts:  Options{Italics: true},
			want:  `say *hi* and "bye`,
		},
		{
			name:  "empty quotes are kept",
			input: `an "" pair`,
			opts:  Options{Italics: true},
			want:  `an "" pair`,
		},
		{
			name:  "adjacent pairs",
			input: `"a""b"`,
			opts:  Options{Italics: true},
			want:  "*a**b*",
		},
		{
			name:  "italics keep whitespace",
			input: `  "a"   b`,
			opts:  Options{Italics: true},
			want:  `  *a*   b`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.input, tt.opts)
			if got != tt.want {
				t.Errorf("Format(%q, %+v) = %q, want %q", tt.input, tt.opts, got, tt.want)
			}
		})
	}
}

// samples covers blank lines, indentation runs, headings and emphasis.
var samples = []string{
	"",
	"\n",
	"plain text",
	"Section 1:\nHello WORLD\n    code line\nDone",
	"a\n    b\n\tc\n\nd\n    e",
	"    starts in code\nthen prose:\n\tand code again",
	"Part A\n  two spaces\n    four spaces\n\t\ttwo tabs\n",
	`He said "hello" to ME`,
	"## Already a heading\n    indented",
}

func TestFormat_NotIdempotent(t *testing.T) {
	once := Format("Hello WORLD", DefaultOptions())
	twice := Format(once, DefaultOptions())

	if once != "Hello **WORLD**" {
		t.Fatalf("first pass = %q", once)
	}
	if twice != "Hello ****WORLD****" {
		t.Errorf("second pass = %q, want double-wrapped bold", twice)
	}
}

func TestFormat_FencesBalanced(t *testing.T) {
	for _, input := range samples {
		got := Format(input, DefaultOptions())
		fences := 0
		for _, line := range strings.Split(got, "\n") {
			if line == Fence {
				fences++
			}
		}
		if fences%2 != 0 {
			t.Errorf("Format(%q) has %d fence lines, want even:\n%s", input, fences, got)
		}
	}
}

func TestFormat_HeadingsDisabled(t *testing.T) {
	opts := DefaultOptions()
	opts.Headings = false

	for _, input := range samples {
		before := 0
		for _, line := range strings.Split(input, "\n") {
			if strings.HasPrefix(strings.TrimSpace(line), headingPrefix) {
				before++
			}
		}

		after := 0
		for _, line := range strings.Split(Format(input, opts), "\n") {
			if strings.HasPrefix(line, headingPrefix) {
				after++
			}
		}

		if after > before {
			t.Errorf("Format(%q) added %d heading lines with headings disabled", input, after-before)
		}
	}
}

func TestFormat_AllDisabledIsIdentity(t *testing.T) {
	for _, input := range append(samples, "  a  \n\tb\n") {
		if got := Format(input, Options{}); got != input {
			t.Errorf("Format(%q, Options{}) = %q, want unchanged", input, got)
		}
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if !opts.Headings || !opts.Bold || !opts.Italics || !opts.CodeBlocks {
		t.Errorf("DefaultOptions() = %+v, want all enabled", opts)
	}
}
