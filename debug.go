// Copyright 2021. Silvano DAL ZILIO.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

//go:build debug

package ztree

import "github.com/sirupsen/logrus"

// logTable dumps the node table and the cache hit/miss counters through
// logrus, structured by field. This is the ztree equivalent of rudd's
// (*buddy).logTable, unlocked by the same `debug` build tag but backed by
// logrus (as operator-lifecycle-manager is, throughout its controllers)
// instead of the standard library's log package.
func (e *Engine) logTable() {
	for id, n := range e.nodes {
		if id < 2 {
			continue
		}
		logrus.WithFields(logrus.Fields{
			"node":     id,
			"variable": n.variable,
			"hi":       n.hi,
			"lo":       n.lo,
		}).Debug("ztree: node")
	}
	logrus.WithFields(logrus.Fields{
		"produced":     e.stats.produced,
		"uniqueAccess": e.stats.uniqueAccess,
		"uniqueHit":    e.stats.uniqueHit,
		"uniqueMiss":   e.stats.uniqueMiss,
		"crossUnion":   e.cu.String(),
		"union":        e.un.String(),
	}).Debug("ztree: engine stats")
}
