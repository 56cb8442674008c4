package document

import (
	"regexp"
	"strings"
)

var (
	sectionPattern    = regexp.MustCompile(`\\section\{([^}]*)\}`)
	subsectionPattern = regexp.MustCompile(`\\subsection\{([^}]*)\}`)
	itemPattern       = regexp.MustCompile(`^(\s*)\\item(?:\[[^\]]*\])?\s*(.*)$`)
	pagebreakPattern  = regexp.MustCompile(`\\newpage|\\pagebreak`)
)

// Parse builds a Document from LaTeX source. A line is either a section
// heading, a bullet, or plain content; headings win over bullets when a line
// somehow matches both.
func Parse(text string) *Document {
	lines := splitLines(text)
	doc := &Document{Lines: lines}

	for idx, line := range lines {
		if match := sectionPattern.FindStringSubmatch(line); match != nil {
			doc.Sections = append(doc.Sections, Section{
				Name:      strings.ToLower(strings.TrimSpace(match[1])),
				LineIndex: idx,
			})
			continue
		}
		if match := subsectionPattern.FindStringSubmatch(line); match != nil {
			doc.Sections = append(doc.Sections, Section{
				Name:      strings.ToLower(strings.TrimSpace(match[1])),
				LineIndex: idx,
			})
			continue
		}
		if match := itemPattern.FindStringSubmatch(line); match != nil {
			doc.Bullets = append(doc.Bullets, Bullet{
				LineIndex: idx,
				Leading:   match[1],
				Content:   strings.TrimSpace(match[2]),
			})
		}
	}

	return doc
}

// splitLines splits on newlines without producing a trailing empty line for
// input ending in a newline, matching how the document is rendered back.
func splitLines(text string) []string {
	if text == "" {
		return []string{}
	}
	trimmed := strings.TrimSuffix(text, "\n")
	return strings.Split(trimmed, "\n")
}
