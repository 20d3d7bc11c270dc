package routes

import (
	"sort"
	"strings"

	"heimdall/infra/arena"
)

// Route is one routing rule inside a built table. Its strings live in
// the owning snapshot's region.
type Route struct {
	Prefix  string
	Backend string
	Weight  int32
}

// Table is an immutable routing table. Routes are ordered by
// descending prefix length so the first match is the longest one.
type Table struct {
	Routes []Route
}

// Build interns rules into region and returns the table. The input
// rules are not retained.
func Build(region *arena.Region, rules []Rule) Table {
	rs := make([]Route, 0, len(rules))
	for _, r := range rules {
		rs = append(rs, Route{
			Prefix:  region.InternString(r.Prefix),
			Backend: region.InternString(r.Backend),
			Weight:  r.Weight,
		})
	}

	sort.SliceStable(rs, func(i, j int) bool {
		return len(rs[i].Prefix) > len(rs[j].Prefix)
	})

	return Table{Routes: rs}
}

// Match returns the route with the longest prefix matching path.
func (t *Table) Match(path string) (Route, bool) {
	for _, r := range t.Routes {
		if strings.HasPrefix(path, r.Prefix) {
			return r, true
		}
	}
	return Route{}, false
}

// Len reports the number of routes.
func (t *Table) Len() int {
	return len(t.Routes)
}
