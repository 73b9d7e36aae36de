// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ztree

// engineConfig is used to store the values of the different parameters of an
// Engine, set through EngineOption at construction time.
type engineConfig struct {
	nodeCapacity  int // initial capacity of the node table
	cacheCapacity int // initial capacity of each operation cache (cu and un)
}

func makeconfig(opts []EngineOption) engineConfig {
	c := engineConfig{
		nodeCapacity:  _DEFAULTNODECAP,
		cacheCapacity: _DEFAULTCACHECAP,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// EngineOption is a configuration option (function) for NewEngine.
type EngineOption func(*engineConfig)

// WithNodeCapacity is a configuration option. Used as a parameter in
// NewEngine it sets a preferred initial capacity for the node table. The
// table grows on demand as more ZDD nodes are produced; this option only
// avoids repeated reallocation when the final size of a computation is known
// in advance.
func WithNodeCapacity(n int) EngineOption {
	return func(c *engineConfig) {
		if n > 2 {
			c.nodeCapacity = n
		}
	}
}

// WithCacheCapacity is a configuration option. Used as a parameter in
// NewEngine it sets a preferred initial capacity for the crossUnion and
// union operation caches. Like WithNodeCapacity, this is purely a sizing
// hint: the caches grow on demand and are never evicted (see package doc).
func WithCacheCapacity(n int) EngineOption {
	return func(c *engineConfig) {
		if n > 0 {
			c.cacheCapacity = n
		}
	}
}
