package mesh

import "sort"

// TagSet maps tag names to the ordered element indices registered under them.
type TagSet map[string][]int

func NewTagSet() TagSet {
	return make(TagSet)
}

// Register appends index to the set registered under name, creating the tag
// on first use.
func (ts TagSet) Register(name string, index int) {
	ts[name] = append(ts[name], index)
}

// RegisteredIndexes returns the indices registered under name in
// registration order.
func (ts TagSet) RegisteredIndexes(name string) (indexes []int, ok bool) {
	indexes, ok = ts[name]
	return
}

// Names returns the registered tag names, sorted.
func (ts TagSet) Names() (names []string) {
	for name := range ts {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
