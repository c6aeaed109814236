// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// configs stores the tunable parameters of a Table.
type configs struct {
	nodesize  int // initial capacity of the node slice
	cachesize int // initial capacity of the memoization caches
}

func makeconfigs() *configs {
	return &configs{
		nodesize:  1024,
		cachesize: 1024,
	}
}

// Option configures a Table at construction time.
type Option func(*configs)

// Nodesize is a configuration option. Used as a parameter to NewTable it
// sets a preferred initial capacity for the node table. The table still
// grows on demand; this only avoids early reallocation for callers that
// know roughly how many nodes a session will produce.
func Nodesize(size int) Option {
	return func(c *configs) {
		if size > 2 {
			c.nodesize = size
		}
	}
}

// Cachesize is a configuration option. Used as a parameter to NewTable it
// sets the initial capacity of the Apply, Not and quantifier memoization
// caches.
func Cachesize(size int) Option {
	return func(c *configs) {
		if size > 0 {
			c.cachesize = size
		}
	}
}
