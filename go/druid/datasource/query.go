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

import (
	"fmt"

	"github.com/petermarshallio/druid/go/druid/druiderrors"
)

// Query is the minimal view of a query object the datasource model needs:
// every query reads from a datasource, and a query-backed datasource must be
// able to unwrap and rewrap it. Concrete query types live with the engine;
// the model treats them as opaque values.
type Query interface {
	// DataSource returns the datasource the query reads from.
	DataSource() DataSource

	// WithDataSource returns a copy of the query reading from ds instead.
	WithDataSource(ds DataSource) Query
}

// IntervalRestricted is implemented by queries that restrict execution to an
// explicit set of time intervals.
type IntervalRestricted interface {
	// QuerySegmentSpec returns the time-range restriction, or nil if the
	// query is unrestricted.
	QuerySegmentSpec() *SegmentSpec
}

// QueryDataSource is a datasource that is itself the result of running a
// subquery.
type QueryDataSource struct {
	Query Query
}

var _ DataSource = (*QueryDataSource)(nil)

// NewQueryDataSource returns a datasource backed by a subquery.
func NewQueryDataSource(query Query) (*QueryDataSource, error) {
	if query == nil {
		return nil, druiderrors.New(druiderrors.CodeInvalidArgument, "query datasource requires a query")
	}
	return &QueryDataSource{Query: query}, nil
}

// TableNames implements the DataSource interface.
func (q *QueryDataSource) TableNames() []string {
	return q.Query.DataSource().TableNames()
}

// Children implements the DataSource interface.
func (q *QueryDataSource) Children() []DataSource {
	return []DataSource{q.Query.DataSource()}
}

// WithChildren implements the DataSource interface.
func (q *QueryDataSource) WithChildren(children []DataSource) (DataSource, error) {
	if len(children) != 1 {
		return nil, childCountError(q, 1, len(children))
	}
	return &QueryDataSource{Query: q.Query.WithDataSource(children[0])}, nil
}

// IsGlobal implements the DataSource interface. A subquery is global when
// everything it reads from is.
func (q *QueryDataSource) IsGlobal() bool {
	return q.Query.DataSource().IsGlobal()
}

// IsJoin implements the DataSource interface.
func (q *QueryDataSource) IsJoin() bool {
	return false
}

// String implements the DataSource interface.
func (q *QueryDataSource) String() string {
	return fmt.Sprintf("query(%v)", q.Query.DataSource())
}

func (q *QueryDataSource) isDataSource() {}
