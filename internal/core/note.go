package core

import (
	"fmt"

	"github.com/julien-sobczak/the-quizwriter/internal/markdown"
	"github.com/julien-sobczak/the-quizwriter/internal/quiz"
)

// Note is a Markdown file containing answer tokens.
type Note struct {
	Path string
	File *markdown.File
	// Policy after applying the Front Matter overrides
	Policy quiz.RevealPolicy
}

// Front Matter attributes overriding the reveal policy.
//
//	---
//	quiz:
//	  mode: read
//	  hidden: 80
//	---
type noteAttributes struct {
	Quiz struct {
		Mode   string `yaml:"mode"`
		Hidden *int   `yaml:"hidden"`
	} `yaml:"quiz"`
}

// LoadNote parses a note file and determines its reveal policy.
func LoadNote(path string, defaults quiz.RevealPolicy) (*Note, error) {
	file, err := markdown.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return NewNote(path, file, defaults)
}

// NewNote determines the reveal policy of an already parsed file.
func NewNote(path string, file *markdown.File, defaults quiz.RevealPolicy) (*Note, error) {
	policy, err := notePolicy(file.FrontMatter, defaults)
	if err != nil {
		return nil, fmt.Errorf("invalid front matter in %q: %w", path, err)
	}
	return &Note{
		Path:   path,
		File:   file,
		Policy: policy,
	}, nil
}

func notePolicy(frontMatter markdown.FrontMatter, defaults quiz.RevealPolicy) (quiz.RevealPolicy, error) {
	policy := defaults

	var attributes noteAttributes
	if err := frontMatter.Decode(&attributes); err != nil {
		return policy, err
	}

	if attributes.Quiz.Mode != "" {
		mode, err := quiz.ParseMode(attributes.Quiz.Mode)
		if err != nil {
			return policy, err
		}
		policy.Mode = mode
	}
	if attributes.Quiz.Hidden != nil {
		hidden := *attributes.Quiz.Hidden
		if hidden < 0 || hidden > 100 {
			return policy, fmt.Errorf("hidden must be between 0 and 100, got %d", hidden)
		}
		policy.HiddenPercent = hidden
	}

	return policy, nil
}

func (n *Note) String() string {
	return fmt.Sprintf("note %q", n.Path)
}
