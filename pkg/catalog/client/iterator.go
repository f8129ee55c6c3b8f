package client

import (
	"context"
	"iter"

	"github.com/diwise/people-catalog/pkg/catalog"
	"github.com/diwise/people-catalog/pkg/catalog/errors"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"
)

// Iterator walks a chain of next-linked pages lazily. A page is fetched only when the
// values of the previous page have been consumed. It is single pass.
type Iterator[T any] struct {
	client    *catalogClient
	extract   func(catalog.Record) (T, error)
	traversal string

	link    string
	buffer  []T
	pending error
	current T

	pages int
	errs  []error
	err   error
	done  bool
}

func newIterator[T any](c *catalogClient, startURL string, extract func(catalog.Record) (T, error)) *Iterator[T] {
	return &Iterator[T]{
		client:    c,
		extract:   extract,
		traversal: uuid.NewString(),
		link:      startURL,
	}
}

// Next advances to the next value, fetching the next page when needed. It returns false
// when the chain is exhausted or the traversal was aborted.
func (it *Iterator[T]) Next(ctx context.Context) bool {
	for !it.done {
		if len(it.buffer) > 0 {
			it.current = it.buffer[0]
			it.buffer = it.buffer[1:]
			return true
		}

		if it.pending != nil {
			err := it.pending
			it.pending = nil

			if !it.handle(ctx, err) {
				it.done = true
			}
			continue
		}

		if it.link == "" {
			it.done = true
			continue
		}

		if err := ctx.Err(); err != nil {
			it.err = err
			it.done = true
			continue
		}

		it.fetch(ctx)
	}

	return false
}

func (it *Iterator[T]) Value() T {
	return it.current
}

// Err returns the error that aborted the traversal, if any.
func (it *Iterator[T]) Err() error {
	return it.err
}

// Errors returns the errors gathered under the Collect policy.
func (it *Iterator[T]) Errors() []error {
	return it.errs
}

func (it *Iterator[T]) PagesFetched() int {
	return it.pages
}

func (it *Iterator[T]) All(ctx context.Context) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it.Next(ctx) {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

func (it *Iterator[T]) fetch(ctx context.Context) {
	link := it.link
	it.link = ""

	ctx = logging.NewContextWithLogger(ctx, logging.GetFromContext(ctx), "traversal", it.traversal)

	if it.client.debug {
		logging.GetFromContext(ctx).Debug("fetching page", "link", link, "page", it.pages+1)
	}

	page, err := it.client.FetchPage(ctx, link)
	if err != nil {
		it.pending = err
		return
	}

	it.pages++
	it.link = page.Next

	for _, r := range page.Results {
		v, err := it.extract(r)
		if err != nil {
			// the remaining records of this page are dropped
			it.pending = errors.NewLinkError(link, err)
			return
		}
		it.buffer = append(it.buffer, v)
	}
}

func (it *Iterator[T]) handle(ctx context.Context, err error) bool {
	ctx = logging.NewContextWithLogger(ctx, logging.GetFromContext(ctx), "traversal", it.traversal)
	it.client.report(ctx, err)

	switch it.client.policy {
	case Abort:
		it.err = err
		return false
	case Collect:
		it.errs = append(it.errs, err)
	}

	return true
}

// CollectAll drains the iterator. Values produced before an abort are returned together
// with the error.
func CollectAll[T any](ctx context.Context, it *Iterator[T]) ([]T, error) {
	result := make([]T, 0)

	for it.Next(ctx) {
		result = append(result, it.Value())
	}

	return result, it.Err()
}
