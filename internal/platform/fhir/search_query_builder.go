package fhir

import (
	"fmt"
)

// SearchParamType defines the FHIR search parameter type.
type SearchParamType int

const (
	SearchParamToken  SearchParamType = iota // exact match on a code column
	SearchParamString                        // case-insensitive prefix match, supports :exact, :contains
)

// SearchParamConfig maps a FHIR search parameter to its database column.
// Columns lists every column a string parameter is matched against (OR-ed).
// Normalize, when set, rewrites a token value before it is bound. Subquery,
// when set, is a format string with one %s that receives the column match,
// for parameters that live on a child table.
type SearchParamConfig struct {
	Type      SearchParamType
	Columns   []string
	Normalize func(string) (string, bool)
	Subquery  string
}

// SearchQuery builds SQL WHERE clauses from FHIR search parameters.
type SearchQuery struct {
	table   string
	cols    string
	where   string
	args    []interface{}
	idx     int
	orderBy string
}

func NewSearchQuery(table, cols string) *SearchQuery {
	return &SearchQuery{
		table: table,
		cols:  cols,
		idx:   1,
	}
}

// Add appends a raw WHERE clause fragment (without leading "AND").
func (q *SearchQuery) Add(clause string, args ...interface{}) {
	q.where += " AND " + clause
	q.args = append(q.args, args...)
	q.idx += len(args)
}

// Idx returns the next available placeholder index.
func (q *SearchQuery) Idx() int { return q.idx }

// ApplyParam applies a single search parameter. A token value that Normalize
// rejects forces the query to return no rows.
func (q *SearchQuery) ApplyParam(config SearchParamConfig, value string, modifier SearchModifier) {
	switch config.Type {
	case SearchParamToken:
		if config.Normalize != nil {
			v, ok := config.Normalize(value)
			if !ok {
				q.where += " AND FALSE"
				return
			}
			value = v
		}
		clause := fmt.Sprintf("%s = $%d", config.Columns[0], q.idx)
		q.args = append(q.args, value)
		q.idx++
		q.where += " AND " + wrap(config.Subquery, clause)
	case SearchParamString:
		var ors string
		for i, col := range config.Columns {
			clause, args, next := StringSearchClause(col, value, modifier, q.idx)
			if i > 0 {
				ors += " OR "
			}
			ors += clause
			q.args = append(q.args, args...)
			q.idx = next
		}
		q.where += " AND " + wrap(config.Subquery, "("+ors+")")
	}
}

func wrap(subquery, clause string) string {
	if subquery == "" {
		return clause
	}
	return fmt.Sprintf(subquery, clause)
}

// ApplyParams applies every parameter that has a config; unknown ones are ignored.
func (q *SearchQuery) ApplyParams(params map[string]string, configs map[string]SearchParamConfig) {
	for raw, value := range params {
		name, modifier := ParseParamModifier(raw)
		if config, ok := configs[name]; ok {
			q.ApplyParam(config, value, modifier)
		}
	}
}

// OrderBy sets the ORDER BY clause (without the "ORDER BY" keyword).
func (q *SearchQuery) OrderBy(orderBy string) {
	q.orderBy = orderBy
}

// SQL returns the data query. Searches are unpaged.
func (q *SearchQuery) SQL() string {
	sql := fmt.Sprintf("SELECT %s FROM %s WHERE 1=1%s", q.cols, q.table, q.where)
	if q.orderBy != "" {
		sql += " ORDER BY " + q.orderBy
	}
	return sql
}

// Args returns the bound arguments in placeholder order.
func (q *SearchQuery) Args() []interface{} {
	return q.args
}
