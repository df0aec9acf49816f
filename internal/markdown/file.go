package markdown

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/julien-sobczak/the-quizwriter/pkg/text"
)

type File struct {
	AbsolutePath string
	Content      []byte
	FrontMatter  FrontMatter
	Body         Document
	BodyLine     int
}

func (m File) String() string {
	return fmt.Sprintf("Markdown file %q", m.AbsolutePath)
}

// ParseFile parses a Markdown file.
func ParseFile(path string) (*File, error) {
	contentAsBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	file := ParseContent(contentAsBytes)
	file.AbsolutePath = path
	return file, nil
}

// ParseContent splits a Markdown content into its Front Matter and its body.
func ParseContent(contentAsBytes []byte) *File {
	var rawFrontMatter bytes.Buffer
	var rawBody bytes.Buffer
	frontMatterStarted := false
	frontMatterEnded := false
	bodyStarted := false
	bodyLine := 0
	for i, line := range strings.Split(strings.TrimSuffix(string(contentAsBytes), "\n"), "\n") {
		if strings.HasPrefix(line, "---") && !bodyStarted && !frontMatterEnded {
			if !frontMatterStarted {
				frontMatterStarted = true
			} else {
				frontMatterEnded = true
			}
			continue
		}

		if frontMatterStarted && !frontMatterEnded {
			rawFrontMatter.WriteString(line)
			rawFrontMatter.WriteString("\n")
		} else {
			if !text.IsBlank(line) && !bodyStarted {
				bodyStarted = true
				bodyLine = i + 1
			}
			if bodyStarted {
				rawBody.WriteString(line)
				rawBody.WriteString("\n")
			}
		}
	}

	return &File{
		Content:     contentAsBytes,
		FrontMatter: FrontMatter(rawFrontMatter.String()),
		Body:        Document(rawBody.String()),
		BodyLine:    bodyLine,
	}
}
