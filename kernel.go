// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ztree

// zddBot and zddTop are the handles of the two sink nodes. They are never
// entered in the unique table and are always valid, regardless of which
// Engine is in play: handle equality for a sink is equality with one of these
// two constants.
const (
	zddBot int = 0
	zddTop int = 1
)

// _DEFAULTNODECAP and _DEFAULTCACHECAP are the default initial capacities used
// by NewEngine when the caller supplies no EngineOption. They are sized for
// small, interactive expressions; long-running callers that plan to lower
// large expressions should supply WithNodeCapacity/WithCacheCapacity.
const _DEFAULTNODECAP int = 256
const _DEFAULTCACHECAP int = 256
