// Package listing turns optional filter inputs into concrete SQL conditions
// and carries the pagination types shared by every list endpoint.
//
// Every filter value is a pointer: nil means "no constraint" and must be a
// true no-op, never an accidental exclusion. Conditions are AND-combined in
// insertion order so bound-parameter numbering is deterministic.
package listing

import (
	"strconv"
	"strings"
	"time"
)

// Conditions is an order-preserving list of SQL fragments with their bound
// arguments. Fragments use '?' markers which Where renders as PostgreSQL
// $n placeholders.
type Conditions struct {
	exprs []string
	args  []any
}

// Add appends a raw fragment; the number of '?' markers must match the
// number of args.
func (c *Conditions) Add(expr string, args ...any) {
	c.exprs = append(c.exprs, expr)
	c.args = append(c.args, args...)
}

// AddEq appends an exact-match condition when v is non-nil.
func AddEq[T any](c *Conditions, col string, v *T) {
	if v == nil {
		return
	}
	c.Add(col+" = ?", *v)
}

// AddILike appends a case-insensitive substring condition when v is non-nil.
func (c *Conditions) AddILike(col string, v *string) {
	if v == nil {
		return
	}
	c.Add(col+" ILIKE ?", "%"+*v+"%")
}

// AddBetween appends a closed range condition only when BOTH endpoints are
// present. A one-sided range is ignored entirely rather than treated as a
// one-sided constraint; callers depend on that reading, so do not "fix" it
// here.
func (c *Conditions) AddBetween(col string, start, end *time.Time) {
	if start == nil || end == nil {
		return
	}
	c.Add(col+" BETWEEN ? AND ?", *start, *end)
}

// Len returns the number of conditions.
func (c *Conditions) Len() int { return len(c.exprs) }

// Args returns the bound arguments in placeholder order.
func (c *Conditions) Args() []any { return c.args }

// Where renders the conditions as a " WHERE a = $n AND b ILIKE $n+1 ..."
// clause, numbering placeholders from start. With zero conditions it
// returns the empty string, i.e. the unfiltered query.
func (c *Conditions) Where(start int) string {
	if len(c.exprs) == 0 {
		return ""
	}

	n := start
	var b strings.Builder
	b.WriteString(" WHERE ")
	for i, expr := range c.exprs {
		if i > 0 {
			b.WriteString(" AND ")
		}
		for _, r := range expr {
			if r == '?' {
				b.WriteString("$" + strconv.Itoa(n))
				n++
				continue
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}
