package pagination

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sliceSource struct {
	items   []int
	fetches int
}

func (s *sliceSource) Count(_ context.Context) (int64, error) {
	return int64(len(s.items)), nil
}

func (s *sliceSource) Fetch(_ context.Context, offset, limit int) ([]int, error) {
	s.fetches++
	if offset >= len(s.items) {
		return nil, nil
	}
	end := min(offset+limit, len(s.items))
	return s.items[offset:end], nil
}

// overfetchSource ignores the limit on its first fetch.
type overfetchSource struct {
	sliceSource
}

func (s *overfetchSource) Fetch(ctx context.Context, offset, limit int) ([]int, error) {
	if s.fetches == 0 {
		s.fetches++
		return s.items, nil
	}
	return s.sliceSource.Fetch(ctx, offset, limit)
}

type failingSource struct {
	countErr error
	fetchErr error
}

func (s *failingSource) Count(_ context.Context) (int64, error) { return 3, s.countErr }
func (s *failingSource) Fetch(_ context.Context, _, _ int) ([]int, error) {
	return nil, s.fetchErr
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestParseRequest(t *testing.T) {
	tests := []struct {
		name    string
		page    string
		perPage string
		want    Request
	}{
		{"defaults", "", "", Request{Page: 1, PerPage: 10}},
		{"explicit", "3", "25", Request{Page: 3, PerPage: 25}},
		{"non numeric per page", "2", "abc", Request{Page: 2, PerPage: 10}},
		{"zero per page", "1", "0", Request{Page: 1, PerPage: 10}},
		{"negative per page kept", "1", "-5", Request{Page: 1, PerPage: -5}},
		{"page below one", "0", "10", Request{Page: 1, PerPage: 10}},
		{"garbage page", "x", "10", Request{Page: 1, PerPage: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRequest(tt.page, tt.perPage))
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 0, TotalPages(11, 0))
	assert.Equal(t, 0, TotalPages(11, -3))
	assert.Equal(t, 1, TotalPages(2, math.MaxInt))
	assert.Equal(t, 1, TotalPages(math.MaxInt64, math.MaxInt))
}

func TestPaginate_HugePerPage(t *testing.T) {
	src := &sliceSource{items: seq(2)}
	p, err := Paginate[int](context.Background(), src, Request{Page: 1, PerPage: math.MaxInt})
	require.NoError(t, err)

	assert.Equal(t, Meta{Total: 2, Pages: 1, Page: 1}, p.Meta)
	assert.Equal(t, []int{1, 2}, p.Data)
}

func TestPaginate_Empty(t *testing.T) {
	src := &sliceSource{}
	p, err := Paginate[int](context.Background(), src, Request{Page: 1, PerPage: 10})
	require.NoError(t, err)

	assert.Equal(t, Meta{Total: 0, Pages: 0, Page: 1}, p.Meta)
	assert.NotNil(t, p.Data)
	assert.Empty(t, p.Data)
	assert.Zero(t, src.fetches)
}

func TestPaginate_NonPositivePerPage(t *testing.T) {
	src := &sliceSource{items: seq(7)}
	p, err := Paginate[int](context.Background(), src, Request{Page: 4, PerPage: -2})
	require.NoError(t, err)

	assert.Equal(t, Meta{Total: 7, Pages: 0, Page: 1}, p.Meta)
	assert.Empty(t, p.Data)
	assert.Zero(t, src.fetches)
}

func TestPaginate_MetaMatchesCeil(t *testing.T) {
	for total := 0; total <= 23; total++ {
		for perPage := 1; perPage <= 7; perPage++ {
			src := &sliceSource{items: seq(total)}
			p, err := Paginate[int](context.Background(), src, Request{Page: 1, PerPage: perPage})
			require.NoError(t, err)

			wantPages := (total + perPage - 1) / perPage
			assert.Equal(t, wantPages, p.Meta.Pages, "total=%d perPage=%d", total, perPage)
			assert.Equal(t, int64(total), p.Meta.Total)
			assert.GreaterOrEqual(t, p.Meta.Page, 1)
			assert.LessOrEqual(t, p.Meta.Page, max(p.Meta.Pages, 1))
		}
	}
}

func TestPaginate_PagesConcatenateToCollection(t *testing.T) {
	for _, total := range []int{0, 1, 9, 10, 11, 37} {
		for _, perPage := range []int{1, 3, 10, 50} {
			src := &sliceSource{items: seq(total)}
			pages := TotalPages(int64(total), perPage)

			var all []int
			for page := 1; page <= pages; page++ {
				p, err := Paginate[int](context.Background(), src, Request{Page: page, PerPage: perPage})
				require.NoError(t, err)
				assert.LessOrEqual(t, len(p.Data), perPage)
				assert.Equal(t, page, p.Meta.Page)
				all = append(all, p.Data...)
			}
			if total == 0 {
				assert.Empty(t, all)
				continue
			}
			assert.Equal(t, seq(total), all, "total=%d perPage=%d", total, perPage)
		}
	}
}

func TestPaginate_PageBeyondLastIsClamped(t *testing.T) {
	src := &sliceSource{items: seq(12)}
	p, err := Paginate[int](context.Background(), src, Request{Page: 9, PerPage: 5})
	require.NoError(t, err)

	assert.Equal(t, Meta{Total: 12, Pages: 3, Page: 3}, p.Meta)
	assert.Equal(t, []int{11, 12}, p.Data)
}

func TestPaginate_OverfetchAdvancesPage(t *testing.T) {
	src := &overfetchSource{sliceSource{items: seq(12)}}
	p, err := Paginate[int](context.Background(), src, Request{Page: 1, PerPage: 5})
	require.NoError(t, err)

	assert.Equal(t, 2, p.Meta.Page)
	assert.Equal(t, []int{6, 7, 8, 9, 10}, p.Data)
}

func TestPaginate_OverfetchOnLastPageIsTruncated(t *testing.T) {
	src := &overfetchSource{sliceSource{items: seq(6)}}
	p, err := Paginate[int](context.Background(), src, Request{Page: 2, PerPage: 4})
	require.NoError(t, err)

	assert.Equal(t, 2, p.Meta.Page)
	assert.Len(t, p.Data, 4)
}

func TestPaginate_Errors(t *testing.T) {
	boom := errors.New("boom")

	_, err := Paginate[int](context.Background(), &failingSource{countErr: boom}, Request{Page: 1, PerPage: 10})
	assert.ErrorIs(t, err, boom)

	_, err = Paginate[int](context.Background(), &failingSource{fetchErr: boom}, Request{Page: 1, PerPage: 10})
	assert.ErrorIs(t, err, boom)
}
