package tags

import (
	"sort"
	"sync"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var (
	Sprite = donburi.NewTag().SetName("Sprite")
	Region = donburi.NewTag().SetName("Region")
)

var (
	mu     sync.Mutex
	groups = map[string]donburi.IComponentType{}
)

// Group returns the tag backing the named entity group, creating it on first
// use. Group membership is tag membership.
func Group(name string) donburi.IComponentType {
	mu.Lock()
	defer mu.Unlock()

	g, ok := groups[name]
	if !ok {
		g = donburi.NewTag().SetName("group:" + name)
		groups[name] = g
	}
	return g
}

// Groups returns the names of every group created so far, sorted.
func Groups() []string {
	mu.Lock()
	defer mu.Unlock()

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Join adds e to the named groups.
func Join(e *donburi.Entry, names ...string) {
	for _, name := range names {
		g := Group(name)
		if !e.HasComponent(g) {
			e.AddComponent(g)
		}
	}
}

// Leave removes e from the named groups.
func Leave(e *donburi.Entry, names ...string) {
	for _, name := range names {
		g := Group(name)
		if e.HasComponent(g) {
			e.RemoveComponent(g)
		}
	}
}

// LeaveAll removes e from every group it belongs to.
func LeaveAll(e *donburi.Entry) {
	Leave(e, MemberOf(e)...)
}

// MemberOf returns the names of the groups e belongs to.
func MemberOf(e *donburi.Entry) []string {
	var names []string
	for _, name := range Groups() {
		if e.HasComponent(Group(name)) {
			names = append(names, name)
		}
	}
	return names
}

// Members returns a snapshot of the named group. Entries added or removed
// while the caller iterates the snapshot are not reflected in it.
func Members(w donburi.World, name string) []*donburi.Entry {
	var out []*donburi.Entry
	donburi.NewQuery(filter.Contains(Group(name))).Each(w, func(e *donburi.Entry) {
		out = append(out, e)
	})
	return out
}
