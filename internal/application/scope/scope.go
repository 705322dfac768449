// Package scope computes the set of district ids an actor may read or write.
// Every repository list/get applies a Scope uniformly instead of rebuilding
// role checks per query.
package scope

// Scope is an access predicate over districts. It is either unbounded (Admin),
// a concrete id set (Zone, Woreda) or empty (deny everything).
type Scope struct {
	unbounded bool
	ids       []int64
}

// All returns the unbounded scope: every district is in reach.
func All() Scope { return Scope{unbounded: true} }

// None returns the empty scope. Nothing matches; queries return no rows.
func None() Scope { return Scope{} }

// Of returns a scope covering exactly the given district ids.
func Of(ids ...int64) Scope {
	return Scope{ids: append([]int64(nil), ids...)}
}

// Unbounded reports whether the scope covers all districts.
func (s Scope) Unbounded() bool { return s.unbounded }

// Empty reports whether the scope matches nothing.
func (s Scope) Empty() bool { return !s.unbounded && len(s.ids) == 0 }

// IDs returns the concrete district ids. Meaningless when Unbounded.
func (s Scope) IDs() []int64 { return s.ids }

// Contains reports whether the district id is inside the scope.
func (s Scope) Contains(id int64) bool {
	if s.unbounded {
		return true
	}
	for _, v := range s.ids {
		if v == id {
			return true
		}
	}
	return false
}
