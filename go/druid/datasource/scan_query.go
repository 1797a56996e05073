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

package datasource

// ScanQuery is a minimal concrete Query: a pass-through scan of a
// datasource, optionally restricted to a set of time intervals and a column
// projection. Richer query types belong to the engine; ScanQuery exists so
// specs decoded from JSON and tests have a real query to wrap.
type ScanQuery struct {
	Source    DataSource
	Intervals *SegmentSpec
	Columns   []string
}

var (
	_ Query              = (*ScanQuery)(nil)
	_ IntervalRestricted = (*ScanQuery)(nil)
)

// DataSource implements the Query interface.
func (q *ScanQuery) DataSource() DataSource {
	return q.Source
}

// WithDataSource implements the Query interface.
func (q *ScanQuery) WithDataSource(ds DataSource) Query {
	newQuery := *q
	newQuery.Source = ds
	return &newQuery
}

// QuerySegmentSpec implements the IntervalRestricted interface.
func (q *ScanQuery) QuerySegmentSpec() *SegmentSpec {
	return q.Intervals
}
