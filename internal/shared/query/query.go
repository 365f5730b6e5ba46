// Package query translates request parameters into bounded,
// deterministic read plans: tagged filters compiled into a WHERE clause
// with positional args, a whitelisted ORDER BY, and clamped
// LIMIT/OFFSET pagination. Repositories consume the output; handlers
// build the input; neither side concatenates SQL from raw user input.
package query

import (
	"fmt"
	"strings"
)

type FilterKind int

const (
	// KindEquality matches a column against a single value.
	KindEquality FilterKind = iota
	// KindTextSearch matches a term case-insensitively across a fixed
	// set of text columns, ORed together.
	KindTextSearch
	// KindRange bounds a column inclusively; either bound may be nil.
	KindRange
	// KindMembership matches array columns containing a value.
	KindMembership
)

type Filter struct {
	Kind    FilterKind
	Column  string
	Value   interface{}
	Columns []string // text search targets
	Term    string
	Min     interface{}
	Max     interface{}
}

func Eq(column string, value interface{}) Filter {
	return Filter{Kind: KindEquality, Column: column, Value: value}
}

func Search(term string, columns ...string) Filter {
	return Filter{Kind: KindTextSearch, Term: term, Columns: columns}
}

// Between bounds column inclusively. Pass nil for an open end.
func Between(column string, min, max interface{}) Filter {
	return Filter{Kind: KindRange, Column: column, Min: min, Max: max}
}

// Contains matches text[] columns holding value.
func Contains(column string, value string) Filter {
	return Filter{Kind: KindMembership, Column: column, Value: value}
}

type SortOrder string

const (
	Asc  SortOrder = "ASC"
	Desc SortOrder = "DESC"
)

const (
	MinLimit = 1
	MaxLimit = 100
)

// Params is one list request's full read plan.
type Params struct {
	Filters   []Filter
	SortBy    string
	SortOrder SortOrder
	Page      int
	Limit     int
}

// Normalize clamps pagination and validates the sort column against
// the entity's whitelist. Page below 1 is clamped to 1 (not rejected);
// limit is clamped into [MinLimit, MaxLimit] with zero meaning the
// endpoint default.
func (p *Params) Normalize(defaultLimit int, sortable map[string]bool) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
	if p.Limit < MinLimit {
		p.Limit = MinLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.SortBy == "" || !sortable[p.SortBy] {
		p.SortBy = "created_at"
	}
	// Direction is accepted case-insensitively ("asc" and "ASC" alike).
	switch SortOrder(strings.ToUpper(string(p.SortOrder))) {
	case Asc:
		p.SortOrder = Asc
	default:
		p.SortOrder = Desc
	}
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// OrderBy renders the ORDER BY clause. The id tie-break keeps paging
// deterministic when many rows share a created_at.
func (p Params) OrderBy() string {
	return fmt.Sprintf("ORDER BY %s %s, id ASC", p.SortBy, p.SortOrder)
}

// BuildWhere compiles the filters into a WHERE fragment with $N
// placeholders starting at argIndex. It returns the fragment (without
// the WHERE keyword, "TRUE" when no filters apply), the args, and the
// next free placeholder index.
func (p Params) BuildWhere(argIndex int) (string, []interface{}, int) {
	conditions := []string{}
	args := []interface{}{}

	for _, f := range p.Filters {
		switch f.Kind {
		case KindEquality:
			conditions = append(conditions, fmt.Sprintf("%s = $%d", f.Column, argIndex))
			args = append(args, f.Value)
			argIndex++

		case KindTextSearch:
			if f.Term == "" || len(f.Columns) == 0 {
				continue
			}
			ors := make([]string, 0, len(f.Columns))
			for _, col := range f.Columns {
				ors = append(ors, fmt.Sprintf("%s ILIKE $%d", col, argIndex))
				args = append(args, "%"+f.Term+"%")
				argIndex++
			}
			conditions = append(conditions, "("+strings.Join(ors, " OR ")+")")

		case KindRange:
			if f.Min != nil {
				conditions = append(conditions, fmt.Sprintf("%s >= $%d", f.Column, argIndex))
				args = append(args, f.Min)
				argIndex++
			}
			if f.Max != nil {
				conditions = append(conditions, fmt.Sprintf("%s <= $%d", f.Column, argIndex))
				args = append(args, f.Max)
				argIndex++
			}

		case KindMembership:
			conditions = append(conditions, fmt.Sprintf("$%d = ANY(%s)", argIndex, f.Column))
			args = append(args, f.Value)
			argIndex++
		}
	}

	if len(conditions) == 0 {
		return "TRUE", args, argIndex
	}
	return strings.Join(conditions, " AND "), args, argIndex
}

// HasEquality reports whether a filter already targets column; list
// endpoints use it to decide whether the public-visibility default
// applies.
func (p Params) HasEquality(column string) bool {
	for _, f := range p.Filters {
		if f.Kind == KindEquality && f.Column == column {
			return true
		}
	}
	return false
}

// Pagination is the response envelope computed from the independent
// total count.
type Pagination struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

func NewPagination(page, limit, total int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{
		Page:        page,
		Limit:       limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}
