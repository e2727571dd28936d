package postgres

import (
	"fmt"
	"strings"
)

// setList accumulates SET assignments for a partial update, one per patch
// field that is actually present. updated_at is always refreshed, so the
// clause is never empty even for an all-nil patch.
type setList struct {
	parts []string
	args  []any
}

func (s *setList) add(column string, value any) {
	s.args = append(s.args, value)
	s.parts = append(s.parts, fmt.Sprintf("%s = $%d", column, len(s.args)))
}

func (s *setList) clause() string {
	return strings.Join(append(s.parts, "updated_at = now()"), ", ")
}

// next returns the placeholder index for the argument following the SET
// list, used for the WHERE clause.
func (s *setList) next() int {
	return len(s.args) + 1
}
