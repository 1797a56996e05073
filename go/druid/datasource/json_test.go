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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petermarshallio/druid/go/druid/druiderrors"
)

func roundTrip(t *testing.T, ds DataSource) DataSource {
	t.Helper()
	encoded, err := EncodeSpec(ds)
	require.NoError(t, err)
	decoded, err := DecodeSpec(encoded)
	require.NoError(t, err)
	return decoded
}

func TestSpecRoundTrip(t *testing.T) {
	foo := mustTable(t, "foo")
	bar := mustTable(t, "bar")
	lookup := mustLookup(t, "lookyloo")
	condition := JoinCondition{Expression: `x == "1.x"`}

	// JSON numbers decode as float64, so inline fixtures use strings to keep
	// the round trip structurally equal.
	inline, err := NewInlineDataSource([]string{"k", "v"}, [][]any{{"a", "b"}})
	require.NoError(t, err)

	union, err := NewUnionDataSource([]DataSource{foo, bar})
	require.NoError(t, err)

	restricted, err := NewRestrictedDataSource(foo, RowFilterPolicy{Filter: Filter{Expression: "x > 1"}})
	require.NoError(t, err)

	unrestricted, err := NewRestrictedDataSource(foo, NoRestrictionPolicy{})
	require.NoError(t, err)

	queryDS, err := NewQueryDataSource(testScanQuery(foo))
	require.NoError(t, err)

	innerJoin, err := NewJoinDataSource(foo, lookup, "1.", condition, JoinTypeInner, TrueFilter(), "")
	require.NoError(t, err)
	outerJoin, err := NewJoinDataSource(
		innerJoin, queryDS, "2.",
		JoinCondition{Expression: `y == "2.y"`},
		JoinTypeLeft, nil, JoinAlgorithmSortMerge,
	)
	require.NoError(t, err)

	trees := []DataSource{
		foo,
		lookup,
		inline,
		union,
		restricted,
		unrestricted,
		queryDS,
		innerJoin,
		outerJoin,
	}
	for _, ds := range trees {
		decoded := roundTrip(t, ds)
		assert.True(t, Equal(ds, decoded), "round trip changed %v into %v", ds, decoded)
	}
}

func TestDecodeSpecFromLiteral(t *testing.T) {
	decoded, err := DecodeSpec([]byte(`{
		"type": "join",
		"left": {"type": "table", "name": "foo"},
		"right": {"type": "lookup", "lookup": "lookyloo"},
		"rightPrefix": "1.",
		"condition": "x == \"1.x\"",
		"joinType": "INNER"
	}`))
	require.NoError(t, err)

	joinDS, ok := decoded.(*JoinDataSource)
	require.True(t, ok)
	assert.Equal(t, "1.", joinDS.RightPrefix)
	assert.Equal(t, JoinTypeInner, joinDS.JoinType)
	assert.Equal(t, JoinAlgorithmBroadcast, joinDS.Algorithm)
	assert.Nil(t, joinDS.LeftFilter)
	assert.Equal(t, []string{"foo"}, joinDS.TableNames())
}

func TestDecodeSpecErrors(t *testing.T) {
	testCases := []struct {
		name string
		spec string
	}{
		{"no type", `{"name": "foo"}`},
		{"unknown type", `{"type": "cursed"}`},
		{"invalid nested", `{"type": "union", "dataSources": [{"type": "cursed"}]}`},
		{"empty table name", `{"type": "table", "name": ""}`},
		{"bad join type", `{
			"type": "join",
			"left": {"type": "table", "name": "foo"},
			"right": {"type": "lookup", "lookup": "l"},
			"rightPrefix": "1.",
			"condition": "1",
			"joinType": "CROSS"
		}`},
		{"time-shadowing prefix", `{
			"type": "join",
			"left": {"type": "table", "name": "foo"},
			"right": {"type": "lookup", "lookup": "l"},
			"rightPrefix": "__",
			"condition": "1",
			"joinType": "INNER"
		}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeSpec([]byte(tc.spec))
			require.Error(t, err)
		})
	}
}

func TestDecodeUnsupportedQueryType(t *testing.T) {
	_, err := DecodeSpec([]byte(`{
		"type": "query",
		"query": {"queryType": "groupBy", "dataSource": {"type": "table", "name": "foo"}}
	}`))
	require.Error(t, err)
	assert.Equal(t, druiderrors.CodeUnimplemented, druiderrors.Code(err))
}

func TestDecodePolicyErrors(t *testing.T) {
	_, err := decodePolicy([]byte(`{}`))
	require.Error(t, err)

	_, err = decodePolicy([]byte(`{"type": "allowAll"}`))
	require.Error(t, err)
	assert.Equal(t, druiderrors.CodeInvalidArgument, druiderrors.Code(err))
}

func TestSegmentSpecJSON(t *testing.T) {
	interval, err := ParseInterval("2000-01-01T00:00:00Z/3000-01-01T00:00:00Z")
	require.NoError(t, err)

	spec := NewSegmentSpec(interval)
	encoded, err := spec.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `["2000-01-01T00:00:00Z/3000-01-01T00:00:00Z"]`, string(encoded))

	var decoded SegmentSpec
	require.NoError(t, decoded.UnmarshalJSON(encoded))
	assert.Equal(t, *spec, decoded)

	_, err = ParseInterval("not an interval")
	require.Error(t, err)
	_, err = ParseInterval("2000-01-01T00:00:00Z")
	require.Error(t, err)
}
