// Package document provides a minimal line-oriented LaTeX model sufficient
// for bullet-level rewriting: it tracks item lines, section headings, and
// enough layout signal to estimate page count.
package document

import (
	"strings"
)

// approxLinesPerPage drives the length-based page estimate
const approxLinesPerPage = 55

// Bullet is a single \item line. LineIndex is stable for the life of the
// document, so a bullet can be replaced in place after editing.
type Bullet struct {
	LineIndex int
	Leading   string
	Content   string
}

// Section is a \section or \subsection heading, lowercased
type Section struct {
	Name      string
	LineIndex int
}

// Document holds the source split into lines plus the parsed bullets and
// sections. Only ReplaceBullet mutates it.
type Document struct {
	Lines    []string
	Bullets  []Bullet
	Sections []Section
}

// ReplaceBullet swaps the content of the bullet at index, rewriting its
// source line while preserving the original indentation.
func (d *Document) ReplaceBullet(index int, newContent string) {
	bullet := d.Bullets[index]
	d.Lines[bullet.LineIndex] = bullet.Leading + "\\item " + newContent
	d.Bullets[index] = Bullet{
		LineIndex: bullet.LineIndex,
		Leading:   bullet.Leading,
		Content:   newContent,
	}
}

// Render joins the lines back into full LaTeX source
func (d *Document) Render() string {
	return strings.Join(d.Lines, "\n")
}

// BulletTexts returns the content of every bullet in document order
func (d *Document) BulletTexts() []string {
	texts := make([]string, len(d.Bullets))
	for i, bullet := range d.Bullets {
		texts[i] = bullet.Content
	}
	return texts
}

// SectionNames returns every section heading in document order
func (d *Document) SectionNames() []string {
	names := make([]string, len(d.Sections))
	for i, section := range d.Sections {
		names[i] = section.Name
	}
	return names
}

// PageEstimate combines explicit page breaks with a length heuristic. The
// result is always at least 1.
func (d *Document) PageEstimate() int {
	pageBreaks := 0
	for _, line := range d.Lines {
		if pagebreakPattern.MatchString(line) {
			pageBreaks++
		}
	}
	pagesByLength := (len(d.Lines) + approxLinesPerPage - 1) / approxLinesPerPage
	if pagesByLength < 1 {
		pagesByLength = 1
	}
	if pageBreaks+1 > pagesByLength {
		return pageBreaks + 1
	}
	return pagesByLength
}
