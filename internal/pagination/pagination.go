// Package pagination computes page metadata and page content for any filtered,
// id-ordered collection. Every listing endpoint goes through Paginate.
package pagination

import (
	"context"
	"strconv"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 10
)

// Source is one filtered collection of a single entity kind.
// Fetch must return records in insertion order.
type Source[T any] interface {
	Count(ctx context.Context) (int64, error)
	Fetch(ctx context.Context, offset, limit int) ([]T, error)
}

type Request struct {
	Page    int
	PerPage int
}

type Meta struct {
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
	Page  int   `json:"page"`
}

type Page[T any] struct {
	Meta Meta
	Data []T
}

// ParseRequest reads raw query values. An empty, non-numeric or zero perPage
// falls back to DefaultPerPage; a page below 1 becomes 1.
func ParseRequest(page, perPage string) Request {
	req := Request{Page: DefaultPage, PerPage: DefaultPerPage}
	if p, err := strconv.Atoi(page); err == nil && p >= 1 {
		req.Page = p
	}
	if n, err := strconv.Atoi(perPage); err == nil && n != 0 {
		req.PerPage = n
	}
	return req
}

// TotalPages is ceil(total/perPage), or 0 when perPage is not positive.
func TotalPages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	// 不用 (total+pp-1)/pp，perPage 很大时会溢出
	pp := int64(perPage)
	q := total / pp
	if total%pp != 0 {
		q++
	}
	return int(q)
}

// Paginate counts the source, clamps the page into [1, max(pages,1)] and
// fetches that page.
func Paginate[T any](ctx context.Context, src Source[T], req Request) (*Page[T], error) {
	total, err := src.Count(ctx)
	if err != nil {
		return nil, err
	}

	perPage := req.PerPage
	pages := TotalPages(total, perPage)
	page := clamp(req.Page, 1, max(pages, 1))

	out := &Page[T]{
		Meta: Meta{Total: total, Pages: pages, Page: page},
		Data: []T{},
	}
	if perPage <= 0 || total == 0 {
		return out, nil
	}

	items, err := src.Fetch(ctx, (page-1)*perPage, perPage)
	if err != nil {
		return nil, err
	}

	// 理论上不会出现，取到的条数超过 perPage 时往后翻页重取，最多 pages 次
	for i := 0; len(items) > perPage && page < pages && i < pages; i++ {
		page++
		items, err = src.Fetch(ctx, (page-1)*perPage, perPage)
		if err != nil {
			return nil, err
		}
	}
	if len(items) > perPage {
		items = items[:perPage]
	}

	out.Meta.Page = page
	if items != nil {
		out.Data = items
	}
	return out, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
