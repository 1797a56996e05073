/*
Copyright 2026 The Druid-Go Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package planning

import (
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/petermarshallio/druid/go/druid/datasource"
	"github.com/petermarshallio/druid/go/druid/log"
)

// AnalysisCache memoizes analyses keyed by the structural fingerprint of the
// input tree. Analyze itself is cheap, but planners re-analyze the same
// datasource once per segment on hot query paths, so callers that hold a
// cache skip the repeated tree walks.
//
// The zero value is not usable; construct with NewAnalysisCache. All methods
// are safe for concurrent use.
type AnalysisCache struct {
	backing *cache.Cache
}

// cacheEntry pairs the analysis with the exact tree that produced it, so a
// fingerprint collision can be detected instead of served.
type cacheEntry struct {
	input    datasource.DataSource
	analysis *DataSourceAnalysis
}

// NewAnalysisCache returns a cache whose entries expire after the given
// duration and are swept on the given interval. A non-positive expiration
// keeps entries forever.
func NewAnalysisCache(expiration, cleanupInterval time.Duration) *AnalysisCache {
	if expiration <= 0 {
		expiration = cache.NoExpiration
	}
	return &AnalysisCache{
		backing: cache.New(expiration, cleanupInterval),
	}
}

// Analyze returns the analysis of ds, computing and storing it on a miss.
func (ac *AnalysisCache) Analyze(ds datasource.DataSource) *DataSourceAnalysis {
	fingerprint, err := datasource.Fingerprint(ds)
	if err != nil {
		// Trees the codec cannot encode cannot be keyed; analyze directly.
		log.Warningf("cannot fingerprint datasource %v, bypassing analysis cache: %v", ds, err)
		return Analyze(ds)
	}

	key := strconv.FormatUint(fingerprint, 16)
	if cached, ok := ac.backing.Get(key); ok {
		entry := cached.(*cacheEntry)
		if datasource.Equal(entry.input, ds) {
			return entry.analysis
		}
		// Fingerprint collision: fall through and overwrite.
	}

	analysis := Analyze(ds)
	ac.backing.Set(key, &cacheEntry{input: ds, analysis: analysis}, cache.DefaultExpiration)
	return analysis
}

// Len returns the number of cached analyses, including any not yet swept.
func (ac *AnalysisCache) Len() int {
	return ac.backing.ItemCount()
}

// Flush drops every cached analysis.
func (ac *AnalysisCache) Flush() {
	ac.backing.Flush()
}
