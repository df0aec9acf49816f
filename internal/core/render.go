package core

import (
	"context"
	"sync"

	"github.com/julien-sobczak/the-quizwriter/internal/helpers"
	"github.com/julien-sobczak/the-quizwriter/internal/markdown"
	"github.com/julien-sobczak/the-quizwriter/internal/quiz"
	"golang.org/x/sync/errgroup"
)

// Rendered is a note after transformation.
type Rendered struct {
	Note   *Note
	Result quiz.Result
}

// Renderer transforms notes, possibly concurrently.
//
// Results are memoized by (markdown, policy). The engine output only depends on them.
type Renderer struct {
	defaults  quiz.RevealPolicy
	overrides []func(*quiz.RevealPolicy)
	parallel  int

	mu    sync.Mutex
	cache map[string]quiz.Result
}

// NewRenderer creates a renderer using the given default policy.
func NewRenderer(defaults quiz.RevealPolicy, opts ...func(*Renderer)) *Renderer {
	r := &Renderer{
		defaults: defaults,
		parallel: 1,
		cache:    make(map[string]quiz.Result),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// WithParallel sets the number of notes rendered concurrently.
func WithParallel(n int) func(*Renderer) {
	return func(r *Renderer) {
		if n > 0 {
			r.parallel = n
		}
	}
}

// WithMode forces the mode, ignoring Front Matter.
func WithMode(mode quiz.Mode) func(*Renderer) {
	return func(r *Renderer) {
		r.overrides = append(r.overrides, func(p *quiz.RevealPolicy) { p.Mode = mode })
	}
}

// WithHiddenPercent forces the percentage of hidden tokens, ignoring Front Matter.
func WithHiddenPercent(percent int) func(*Renderer) {
	return func(r *Renderer) {
		r.overrides = append(r.overrides, func(p *quiz.RevealPolicy) { p.HiddenPercent = percent })
	}
}

// RenderFile loads and renders a single note.
func (r *Renderer) RenderFile(path string) (*Rendered, error) {
	note, err := LoadNote(path, r.defaults)
	if err != nil {
		return nil, err
	}
	return r.RenderNote(note), nil
}

// RenderNote renders an already loaded note.
func (r *Renderer) RenderNote(note *Note) *Rendered {
	policy := note.Policy
	for _, override := range r.overrides {
		override(&policy)
	}
	CurrentLogger().Debugf("Rendering %s using policy %s", note, policy)
	return &Rendered{
		Note:   note,
		Result: r.Render(note.File.Body, policy),
	}
}

// Render transforms a Markdown document, reusing a previous result when possible.
func (r *Renderer) Render(md markdown.Document, policy quiz.RevealPolicy) quiz.Result {
	md = md.MustTransform(quiz.OutsideCode(markdown.StripHTMLComments(), markdown.SquashBlankLines()))
	key := helpers.HashParts(md.String(), policy.String())

	r.mu.Lock()
	result, ok := r.cache[key]
	r.mu.Unlock()
	if ok {
		CurrentLogger().Tracef("Cache hit for %s", key)
		return result
	}

	result = quiz.Transform(md, policy)

	r.mu.Lock()
	r.cache[key] = result
	r.mu.Unlock()
	return result
}

// RenderFiles renders notes concurrently. Results are returned in the order of paths.
func (r *Renderer) RenderFiles(ctx context.Context, paths []string) ([]*Rendered, error) {
	results := make([]*Rendered, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallel)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rendered, err := r.RenderFile(path)
			if err != nil {
				return err
			}
			results[i] = rendered
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
