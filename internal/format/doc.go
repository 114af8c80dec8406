// Package format turns plain text into markdown using line-level heuristics.
//
// The formatter makes a single forward pass over the input lines. Each line
// goes through four independent steps, always in this order:
//
//   - Headings: lines ending in ":" or starting with "Section", "Chapter"
//     or "Part" gain a "## " prefix
//   - Code blocks: lines indented by four spaces or a tab are wrapped in
//     ``` fences and lose one level of indentation
//   - Bold: all-caps words longer than one character become **WORD**
//   - Italics: "quoted" spans become *quoted*
//
// Each step can be switched off through Options:
//
//	out := format.Format(text, format.DefaultOptions())
//
//	opts := format.DefaultOptions()
//	opts.Bold = false
//	out = format.Format(text, opts)
//
// The only state carried between lines is whether a code fence is open.
// Every fence that is opened is closed, either before the next unindented
// line or at the end of the input.
//
// The output is not a fixed point: formatting already formatted text wraps
// bold words a second time.
package format
