package text

import (
	"strings"
)

type Line struct {
	Text   string
	Number int // 1-based
}

// Null Object pattern.
var MissingLine = Line{
	Text:   "",
	Number: -1,
}

func (l Line) IsBlank() bool {
	return IsBlank(l.Text)
}

// LineIterator implements the Iterator pattern to iterate over text lines.
type LineIterator struct {
	index int
	lines []string
}

func NewLineIteratorFromText(text string) *LineIterator {
	return &LineIterator{
		index: 0,
		lines: strings.Split(text, "\n"),
	}
}

func (l *LineIterator) HasNext() bool {
	return l.index < len(l.lines)
}

// Same as Next but does not move the iterator
func (l *LineIterator) Peek() Line {
	if l.HasNext() {
		return Line{Text: l.lines[l.index], Number: l.index + 1}
	}
	return MissingLine
}

func (l *LineIterator) Next() Line {
	line := l.Peek()
	if line != MissingLine {
		l.index++
	}
	return line
}

// SkipBlankLines moves the iterator to the next non-blank line.
func (l *LineIterator) SkipBlankLines() {
	for l.HasNext() && l.Peek().IsBlank() {
		l.index++
	}
}
