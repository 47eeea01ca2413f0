// Package paginate iterates the pages of a list-style operation, following
// continuation tokens until the service stops returning them.
package paginate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Tim020/botocore/botoerr"
	"github.com/Tim020/botocore/search"
)

// Fetcher returns the parsed page for a continuation token. An empty token
// fetches the first page.
type Fetcher func(ctx context.Context, token string) (map[string]any, error)

// Paginator walks pages one at a time. It is single-use and not safe for
// concurrent iteration.
type Paginator struct {
	fetch     Fetcher
	resultKey *search.Expression
	tokenKey  *search.Expression
	log       *slog.Logger

	token string
	done  bool
	seen  map[string]struct{}
}

// Option configures a Paginator.
type Option func(*Paginator)

// WithLogger sets the logger used to trace page fetches.
func WithLogger(l *slog.Logger) Option {
	return func(p *Paginator) {
		if l != nil {
			p.log = l
		}
	}
}

// New creates a Paginator. resultKey and tokenKey are dotted expressions
// into each page; a malformed expression fails here with an
// InvalidExpressionError, before anything is fetched.
func New(fetch Fetcher, resultKey, tokenKey string, opts ...Option) (*Paginator, error) {
	rk, err := search.Compile(resultKey)
	if err != nil {
		return nil, err
	}
	tk, err := search.Compile(tokenKey)
	if err != nil {
		return nil, err
	}
	p := &Paginator{
		fetch:     fetch,
		resultKey: rk,
		tokenKey:  tk,
		log:       slog.Default(),
		seen:      make(map[string]struct{}),
	}
	for _, o := range opts {
		o(p)
	}
	return p, nil
}

// Next fetches the next page and returns its results. ok is false once the
// final page has been consumed. A continuation token of the wrong type, or
// the same token arriving twice, fails with a PaginationError.
func (p *Paginator) Next(ctx context.Context) (results []any, ok bool, err error) {
	if p.done {
		return nil, false, nil
	}
	page, err := p.fetch(ctx, p.token)
	if err != nil {
		return nil, false, err
	}
	p.log.Debug("page fetched", slog.String("token", p.token))

	results = resultsOf(p.resultKey.Search(page))

	next := p.tokenKey.Search(page)
	if next == nil {
		p.done = true
		return results, true, nil
	}
	token, isString := next.(string)
	if !isString || token == "" {
		p.done = true
		return nil, false, botoerr.NewPaginationError(
			fmt.Sprintf("Bad continuation token %v for key %s", next, p.tokenKey))
	}
	if _, dup := p.seen[token]; dup {
		p.done = true
		return nil, false, botoerr.NewPaginationError(
			fmt.Sprintf("The same next token was received twice: %s", token))
	}
	p.seen[token] = struct{}{}
	p.token = token
	return results, true, nil
}

// All drains the paginator and returns every result.
func (p *Paginator) All(ctx context.Context) ([]any, error) {
	var all []any
	for {
		results, ok, err := p.Next(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			return all, nil
		}
		all = append(all, results...)
	}
}

func resultsOf(v any) []any {
	if v == nil {
		return nil
	}
	if items, ok := v.([]any); ok {
		return items
	}
	return []any{v}
}
