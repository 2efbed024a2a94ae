// Package render turns the reflection's markdown subset into the inline-styled
// HTML email body.
//
// The subset is deliberately constrained: third-level headings, fully-bold
// heading lines, bold spans, paragraphs, and line breaks. Anything else the
// model emits is treated as plain text, and the final fragment is sanitized so
// model-injected markup can never reach the mail client.
package render

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

const (
	headingStyle   = "margin: 1.5em 0 0.6em 0; font-size: 1.1em; font-weight: 600;"
	paragraphStyle = "margin: 0 0 1.25em 0;"
)

var (
	paragraphRe = regexp.MustCompile(`\n\s*\n`)
	boldRe      = regexp.MustCompile(`\*\*(.+?)\*\*`)
	boldLineRe  = regexp.MustCompile(`^\*\*(.+)\*\*$`)

	// Known section titles the prompt asks for; a bold line opening with one
	// of these is a heading even when the closing ** is missing.
	sectionTitleRe = regexp.MustCompile(`(?i)^\*\*(Advantage|Clear Advantage|Structural Importance|` +
		`Expansion of Future|Contrast with|Contrast / What to be grateful for|Trajectory conclusion|` +
		`Fact to retain|Sources \(Fact IDs\)|Verification links)\b`)

	// Only these three are escaped; quotes stay literal in text.
	htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

	fragmentPolicy = newFragmentPolicy()
)

func newFragmentPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("h3", "p", "strong", "br")
	p.AllowAttrs("style").OnElements("h3", "p")
	return p
}

// isHeadingLine reports whether the line looks like a section heading.
func isHeadingLine(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	if strings.HasPrefix(line, "### ") {
		return true
	}
	if strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**") && strings.Count(line, "**") == 2 {
		return true
	}
	return sectionTitleRe.MatchString(line)
}

// headingToHTML renders a single heading line (strips ### or **).
func headingToHTML(line string) string {
	raw := strings.TrimSpace(line)
	var content string
	if strings.HasPrefix(raw, "### ") {
		content = strings.TrimSpace(raw[4:])
	} else {
		content = boldLineRe.ReplaceAllString(raw, "$1")
	}
	return `<h3 style="` + headingStyle + `">` + htmlEscaper.Replace(content) + "</h3>"
}

// paragraphToHTML escapes a text block and applies the inline subset:
// **bold** spans and hard line breaks.
func paragraphToHTML(block string) string {
	safe := htmlEscaper.Replace(block)
	safe = boldRe.ReplaceAllString(safe, "<strong>$1</strong>")
	safe = strings.ReplaceAll(safe, "\n", "<br>")
	return `<p style="` + paragraphStyle + `">` + safe + "</p>"
}

// ReflectionHTML converts the reflection text to an HTML fragment with proper
// paragraph and heading spacing, sanitized to the allowed subset.
func ReflectionHTML(reflection string) string {
	var parts []string
	for _, block := range paragraphRe.Split(reflection, -1) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		var lines []string
		for _, ln := range strings.Split(block, "\n") {
			if ln = strings.TrimSpace(ln); ln != "" {
				lines = append(lines, ln)
			}
		}
		if len(lines) == 0 {
			continue
		}

		if isHeadingLine(lines[0]) {
			parts = append(parts, headingToHTML(lines[0]))
			if rest := strings.Join(lines[1:], "\n"); rest != "" {
				parts = append(parts, paragraphToHTML(rest))
			}
			continue
		}
		parts = append(parts, paragraphToHTML(block))
	}
	return fragmentPolicy.Sanitize(strings.Join(parts, "\n"))
}
