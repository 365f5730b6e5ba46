package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var blogSortable = map[string]bool{"created_at": true, "title": true, "views": true}

func TestNormalize_Clamping(t *testing.T) {
	t.Run("limit above cap", func(t *testing.T) {
		p := Params{Page: 1, Limit: 500}
		p.Normalize(10, blogSortable)
		assert.Equal(t, 100, p.Limit)
	})

	t.Run("zero limit takes endpoint default", func(t *testing.T) {
		p := Params{Page: 1}
		p.Normalize(10, blogSortable)
		assert.Equal(t, 10, p.Limit)
	})

	t.Run("page zero and negative clamp to 1", func(t *testing.T) {
		for _, page := range []int{0, -5} {
			p := Params{Page: page, Limit: 10}
			p.Normalize(10, blogSortable)
			assert.Equal(t, 1, p.Page)
		}
	})

	t.Run("unknown sort column falls back to created_at", func(t *testing.T) {
		p := Params{Page: 1, Limit: 10, SortBy: "password; DROP TABLE blogs"}
		p.Normalize(10, blogSortable)
		assert.Equal(t, "created_at", p.SortBy)
		assert.Equal(t, Desc, p.SortOrder)
	})

	t.Run("whitelisted sort survives", func(t *testing.T) {
		p := Params{Page: 1, Limit: 10, SortBy: "title", SortOrder: Asc}
		p.Normalize(10, blogSortable)
		assert.Equal(t, "title", p.SortBy)
		assert.Equal(t, Asc, p.SortOrder)
	})

	t.Run("lowercase direction is accepted", func(t *testing.T) {
		for raw, want := range map[SortOrder]SortOrder{"asc": Asc, "desc": Desc, "Asc": Asc} {
			p := Params{Page: 1, Limit: 10, SortBy: "title", SortOrder: raw}
			p.Normalize(10, blogSortable)
			assert.Equal(t, want, p.SortOrder)
		}
	})
}

func TestOffset(t *testing.T) {
	p := Params{Page: 3, Limit: 10}
	assert.Equal(t, 20, p.Offset())
}

func TestBuildWhere(t *testing.T) {
	t.Run("no filters", func(t *testing.T) {
		p := Params{}
		where, args, next := p.BuildWhere(1)
		assert.Equal(t, "TRUE", where)
		assert.Empty(t, args)
		assert.Equal(t, 1, next)
	})

	t.Run("equality filters are ANDed", func(t *testing.T) {
		p := Params{Filters: []Filter{
			Eq("status", "published"),
			Eq("category", "News"),
		}}
		where, args, next := p.BuildWhere(1)
		assert.Equal(t, "status = $1 AND category = $2", where)
		assert.Equal(t, []interface{}{"published", "News"}, args)
		assert.Equal(t, 3, next)
	})

	t.Run("text search expands to OR block", func(t *testing.T) {
		p := Params{Filters: []Filter{
			Eq("status", "published"),
			Search("launch", "title", "content", "excerpt"),
		}}
		where, args, _ := p.BuildWhere(1)
		assert.Equal(t, "status = $1 AND (title ILIKE $2 OR content ILIKE $3 OR excerpt ILIKE $4)", where)
		assert.Equal(t, []interface{}{"published", "%launch%", "%launch%", "%launch%"}, args)
	})

	t.Run("empty search term is dropped", func(t *testing.T) {
		p := Params{Filters: []Filter{Search("", "title")}}
		where, args, _ := p.BuildWhere(1)
		assert.Equal(t, "TRUE", where)
		assert.Empty(t, args)
	})

	t.Run("range bounds are inclusive and independently optional", func(t *testing.T) {
		from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

		p := Params{Filters: []Filter{Between("created_at", from, to)}}
		where, args, _ := p.BuildWhere(1)
		assert.Equal(t, "created_at >= $1 AND created_at <= $2", where)
		assert.Len(t, args, 2)

		p = Params{Filters: []Filter{Between("created_at", from, nil)}}
		where, args, _ = p.BuildWhere(1)
		assert.Equal(t, "created_at >= $1", where)
		assert.Len(t, args, 1)

		p = Params{Filters: []Filter{Between("created_at", nil, to)}}
		where, _, _ = p.BuildWhere(1)
		assert.Equal(t, "created_at <= $1", where)
	})

	t.Run("membership matches array columns", func(t *testing.T) {
		p := Params{Filters: []Filter{Contains("tags", "go")}}
		where, args, _ := p.BuildWhere(1)
		assert.Equal(t, "$1 = ANY(tags)", where)
		assert.Equal(t, []interface{}{"go"}, args)
	})

	t.Run("arg indexes continue from offset", func(t *testing.T) {
		p := Params{Filters: []Filter{Eq("status", "new")}}
		where, _, next := p.BuildWhere(3)
		assert.Equal(t, "status = $3", where)
		assert.Equal(t, 4, next)
	})
}

func TestHasEquality(t *testing.T) {
	p := Params{Filters: []Filter{Eq("status", "draft"), Search("x", "title")}}
	assert.True(t, p.HasEquality("status"))
	assert.False(t, p.HasEquality("category"))
}

func TestNewPagination(t *testing.T) {
	t.Run("middle page", func(t *testing.T) {
		pg := NewPagination(2, 10, 25)
		assert.Equal(t, 3, pg.TotalPages)
		assert.True(t, pg.HasNextPage)
		assert.True(t, pg.HasPrevPage)
	})

	t.Run("last page", func(t *testing.T) {
		pg := NewPagination(3, 10, 25)
		assert.False(t, pg.HasNextPage)
		assert.True(t, pg.HasPrevPage)
	})

	t.Run("exact multiple", func(t *testing.T) {
		pg := NewPagination(2, 10, 20)
		assert.Equal(t, 2, pg.TotalPages)
		assert.False(t, pg.HasNextPage)
	})

	t.Run("empty result", func(t *testing.T) {
		pg := NewPagination(1, 10, 0)
		assert.Equal(t, 0, pg.TotalPages)
		assert.False(t, pg.HasNextPage)
		assert.False(t, pg.HasPrevPage)
	})

	// hasNextPage is true iff page < ceil(total/limit), for every page.
	t.Run("page concatenation law", func(t *testing.T) {
		total, limit := 47, 10
		seen := 0
		for page := 1; ; page++ {
			pg := NewPagination(page, limit, total)
			remaining := total - (page-1)*limit
			if remaining > limit {
				remaining = limit
			}
			if remaining < 0 {
				remaining = 0
			}
			seen += remaining
			if !pg.HasNextPage {
				break
			}
		}
		assert.Equal(t, total, seen)
	})
}
