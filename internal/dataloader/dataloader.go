// Package dataloader batches the lookups needed to render a list. A Resolver
// creates fresh loaders for every render so names are never served from a
// previous render's cache.
package dataloader

import (
	"context"
	"fmt"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/minervactl/internal/domain"
)

const wait = 2 * time.Millisecond

type categoryLister interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// Loaders holds the per-render loader instances.
type Loaders struct {
	CategoryByID *dataloader.Loader[int64, domain.Category]
}

// NewLoaders creates a set of loaders backed by src.
func NewLoaders(src categoryLister) *Loaders {
	return &Loaders{
		CategoryByID: newLoader(newCategoryBatchFn(src)),
	}
}

// newLoader creates a loader without a batch cap: one category listing
// answers any number of ids.
func newLoader[V any](batchFn dataloader.BatchFunc[int64, V]) *dataloader.Loader[int64, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[int64, V](wait),
	)
}

// newCategoryBatchFn resolves a batch of ids with a single category listing.
// Unknown ids resolve to a Category with an empty name.
func newCategoryBatchFn(src categoryLister) dataloader.BatchFunc[int64, domain.Category] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[domain.Category] {
		categories, err := src.ListCategories(ctx)
		if err != nil {
			return errorResults[domain.Category](len(keys), err)
		}

		byID := make(map[int64]domain.Category, len(categories))
		for _, c := range categories {
			byID[c.ID] = c
		}

		results := make([]*dataloader.Result[domain.Category], len(keys))
		for i, key := range keys {
			c, ok := byID[key]
			if !ok {
				c = domain.Category{ID: key}
			}
			results[i] = &dataloader.Result[domain.Category]{Data: c}
		}
		return results
	}
}

// errorResults returns a slice of error results for all keys.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// Resolver fills in category names for links whose categories arrived as
// bare ids.
type Resolver struct {
	src categoryLister
}

// NewResolver creates a Resolver backed by src.
func NewResolver(src categoryLister) *Resolver {
	return &Resolver{src: src}
}

// Resolve returns copies of links with every resolvable category name filled
// in. No request is made when all names are already present. On failure the
// input is returned unchanged together with the error.
func (r *Resolver) Resolve(ctx context.Context, links []domain.Link) ([]domain.Link, error) {
	var (
		keys []int64
		seen = make(map[int64]struct{})
	)
	for _, l := range links {
		for _, ref := range l.Categories {
			if ref.Resolved() {
				continue
			}
			if _, ok := seen[ref.ID]; ok {
				continue
			}
			seen[ref.ID] = struct{}{}
			keys = append(keys, ref.ID)
		}
	}
	if len(keys) == 0 {
		return links, nil
	}

	loaders := NewLoaders(r.src)
	categories, errs := loaders.CategoryByID.LoadMany(ctx, keys)()
	for _, err := range errs {
		if err != nil {
			return links, fmt.Errorf("resolve categories: %w", err)
		}
	}

	names := make(map[int64]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	out := make([]domain.Link, len(links))
	for i, l := range links {
		refs := make([]domain.CategoryRef, len(l.Categories))
		for j, ref := range l.Categories {
			if !ref.Resolved() {
				ref.Name = names[ref.ID]
			}
			refs[j] = ref
		}
		l.Categories = refs
		out[i] = l
	}
	return out, nil
}
