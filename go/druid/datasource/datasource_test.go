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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petermarshallio/druid/go/druid/druiderrors"
)

func mustTable(t *testing.T, name string) *TableDataSource {
	t.Helper()
	table, err := NewTableDataSource(name)
	require.NoError(t, err)
	return table
}

func mustLookup(t *testing.T, name string) *LookupDataSource {
	t.Helper()
	lookup, err := NewLookupDataSource(name)
	require.NoError(t, err)
	return lookup
}

func testScanQuery(ds DataSource) *ScanQuery {
	return &ScanQuery{
		Source: ds,
		Intervals: NewSegmentSpec(Interval{
			Start: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(3000, 1, 1, 0, 0, 0, 0, time.UTC),
		}),
	}
}

func TestTableDataSource(t *testing.T) {
	table := mustTable(t, "foo")

	assert.Equal(t, []string{"foo"}, table.TableNames())
	assert.Empty(t, table.Children())
	assert.False(t, table.IsGlobal())
	assert.False(t, table.IsJoin())
	assert.Equal(t, "table(foo)", table.String())

	same, err := table.WithChildren(nil)
	require.NoError(t, err)
	assert.Equal(t, DataSource(table), same)

	_, err = table.WithChildren([]DataSource{mustTable(t, "bar")})
	require.Error(t, err)
	assert.Equal(t, druiderrors.CodeInvalidArgument, druiderrors.Code(err))

	_, err = NewTableDataSource("")
	require.Error(t, err)
	assert.Equal(t, druiderrors.CodeInvalidArgument, druiderrors.Code(err))
}

func TestLookupDataSource(t *testing.T) {
	lookup := mustLookup(t, "lookyloo")

	assert.Empty(t, lookup.TableNames())
	assert.Empty(t, lookup.Children())
	assert.True(t, lookup.IsGlobal())
	assert.False(t, lookup.IsJoin())

	_, err := NewLookupDataSource("")
	require.Error(t, err)
}

func TestInlineDataSource(t *testing.T) {
	inline, err := NewInlineDataSource([]string{"k", "v"}, [][]any{{"a", "b"}, {"c", "d"}})
	require.NoError(t, err)

	assert.Empty(t, inline.TableNames())
	assert.Empty(t, inline.Children())
	assert.True(t, inline.IsGlobal())
	assert.False(t, inline.IsJoin())

	_, err = NewInlineDataSource(nil, nil)
	require.Error(t, err)

	// Row width must match the column count.
	_, err = NewInlineDataSource([]string{"k", "v"}, [][]any{{"a"}})
	require.Error(t, err)
	assert.Equal(t, druiderrors.CodeInvalidArgument, druiderrors.Code(err))
}

func TestUnionDataSource(t *testing.T) {
	foo := mustTable(t, "foo")
	bar := mustTable(t, "bar")

	union, err := NewUnionDataSource([]DataSource{foo, bar})
	require.NoError(t, err)

	assert.Equal(t, []string{"bar", "foo"}, union.TableNames())
	assert.Equal(t, []DataSource{foo, bar}, union.Children())
	assert.False(t, union.IsGlobal())
	assert.False(t, union.IsJoin())

	lookup := mustLookup(t, "lookyloo")
	globalUnion, err := NewUnionDataSource([]DataSource{lookup, lookup})
	require.NoError(t, err)
	assert.True(t, globalUnion.IsGlobal())

	swapped, err := union.WithChildren([]DataSource{bar, foo})
	require.NoError(t, err)
	assert.Equal(t, []DataSource{bar, foo}, swapped.Children())

	_, err = union.WithChildren([]DataSource{foo})
	require.Error(t, err)

	_, err = NewUnionDataSource(nil)
	require.Error(t, err)
}

func TestRestrictedDataSource(t *testing.T) {
	foo := mustTable(t, "foo")

	restricted, err := NewRestrictedDataSource(foo, NoRestrictionPolicy{})
	require.NoError(t, err)

	assert.Equal(t, []string{"foo"}, restricted.TableNames())
	assert.Equal(t, []DataSource{foo}, restricted.Children())
	assert.False(t, restricted.IsGlobal())
	assert.False(t, restricted.IsJoin())

	_, hasFilter := restricted.Policy.RowFilter()
	assert.False(t, hasFilter)

	filtered, err := NewRestrictedDataSource(foo, RowFilterPolicy{Filter: Filter{Expression: "x > 1"}})
	require.NoError(t, err)
	filter, hasFilter := filtered.Policy.RowFilter()
	require.True(t, hasFilter)
	assert.Equal(t, "x > 1", filter.Expression)

	// Only tables can be restricted.
	_, err = NewRestrictedDataSource(mustLookup(t, "lookyloo"), NoRestrictionPolicy{})
	require.Error(t, err)
	assert.Equal(t, druiderrors.CodeInvalidArgument, druiderrors.Code(err))

	_, err = NewRestrictedDataSource(foo, nil)
	require.Error(t, err)
}

func TestQueryDataSource(t *testing.T) {
	foo := mustTable(t, "foo")
	queryDS, err := NewQueryDataSource(testScanQuery(foo))
	require.NoError(t, err)

	assert.Equal(t, []string{"foo"}, queryDS.TableNames())
	assert.Equal(t, []DataSource{foo}, queryDS.Children())
	assert.False(t, queryDS.IsGlobal())
	assert.False(t, queryDS.IsJoin())

	lookupQuery, err := NewQueryDataSource(testScanQuery(mustLookup(t, "lookyloo")))
	require.NoError(t, err)
	assert.True(t, lookupQuery.IsGlobal())

	bar := mustTable(t, "bar")
	rewrapped, err := queryDS.WithChildren([]DataSource{bar})
	require.NoError(t, err)
	assert.Equal(t, []DataSource{bar}, rewrapped.Children())

	_, err = NewQueryDataSource(nil)
	require.Error(t, err)
}

func TestJoinDataSource(t *testing.T) {
	foo := mustTable(t, "foo")
	lookup := mustLookup(t, "lookyloo")
	condition := JoinCondition{Expression: `x == "1.x"`}

	joinDS, err := NewJoinDataSource(foo, lookup, "1.", condition, JoinTypeInner, nil, "")
	require.NoError(t, err)

	// Empty algorithm resolves to the default.
	assert.Equal(t, JoinAlgorithmBroadcast, joinDS.Algorithm)
	assert.Equal(t, []string{"foo"}, joinDS.TableNames())
	assert.Equal(t, []DataSource{foo, lookup}, joinDS.Children())
	assert.False(t, joinDS.IsGlobal())
	assert.True(t, joinDS.IsJoin())

	globalJoin, err := NewJoinDataSource(lookup, lookup, "1.", condition, JoinTypeInner, nil, JoinAlgorithmSortMerge)
	require.NoError(t, err)
	assert.True(t, globalJoin.IsGlobal())

	bar := mustTable(t, "bar")
	rewired, err := joinDS.WithChildren([]DataSource{bar, lookup})
	require.NoError(t, err)
	assert.Equal(t, []DataSource{bar, lookup}, rewired.Children())
	assert.Equal(t, "1.", rewired.(*JoinDataSource).RightPrefix)

	_, err = joinDS.WithChildren([]DataSource{bar})
	require.Error(t, err)

	_, err = NewJoinDataSource(nil, lookup, "1.", condition, JoinTypeInner, nil, "")
	require.Error(t, err)
	_, err = NewJoinDataSource(foo, lookup, "", condition, JoinTypeInner, nil, "")
	require.Error(t, err)
	_, err = NewJoinDataSource(foo, lookup, "1.", condition, "SIDEWAYS", nil, "")
	require.Error(t, err)
	_, err = NewJoinDataSource(foo, lookup, "1.", condition, JoinTypeInner, nil, "hash")
	require.Error(t, err)
}

func TestParseJoinType(t *testing.T) {
	for _, want := range []JoinType{JoinTypeInner, JoinTypeLeft, JoinTypeRight, JoinTypeFull} {
		got, err := ParseJoinType(string(want))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseJoinType("CROSS")
	require.Error(t, err)
	assert.Equal(t, druiderrors.CodeInvalidArgument, druiderrors.Code(err))
}

func TestParseJoinAlgorithm(t *testing.T) {
	got, err := ParseJoinAlgorithm("")
	require.NoError(t, err)
	assert.Equal(t, JoinAlgorithmBroadcast, got)

	got, err = ParseJoinAlgorithm(string(JoinAlgorithmSortMerge))
	require.NoError(t, err)
	assert.Equal(t, JoinAlgorithmSortMerge, got)

	_, err = ParseJoinAlgorithm("hash")
	require.Error(t, err)
}

func TestEqual(t *testing.T) {
	foo := mustTable(t, "foo")
	bar := mustTable(t, "bar")
	lookup := mustLookup(t, "lookyloo")
	condition := JoinCondition{Expression: `x == "1.x"`}

	joinA, err := NewJoinDataSource(foo, lookup, "1.", condition, JoinTypeInner, nil, "")
	require.NoError(t, err)
	joinB, err := NewJoinDataSource(foo, lookup, "1.", condition, JoinTypeInner, nil, "")
	require.NoError(t, err)
	joinC, err := NewJoinDataSource(bar, lookup, "1.", condition, JoinTypeInner, nil, "")
	require.NoError(t, err)
	joinFiltered, err := NewJoinDataSource(foo, lookup, "1.", condition, JoinTypeInner, TrueFilter(), "")
	require.NoError(t, err)

	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(foo, nil))
	assert.True(t, Equal(foo, mustTable(t, "foo")))
	assert.False(t, Equal(foo, bar))
	assert.False(t, Equal(foo, lookup))
	assert.True(t, Equal(joinA, joinB))
	assert.False(t, Equal(joinA, joinC))
	assert.False(t, Equal(joinA, joinFiltered))

	queryA, err := NewQueryDataSource(testScanQuery(foo))
	require.NoError(t, err)
	queryB, err := NewQueryDataSource(testScanQuery(foo))
	require.NoError(t, err)
	queryC, err := NewQueryDataSource(testScanQuery(bar))
	require.NoError(t, err)
	assert.True(t, Equal(queryA, queryB))
	assert.False(t, Equal(queryA, queryC))
	assert.False(t, Equal(queryA, foo))
}
