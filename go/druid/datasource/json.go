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
	"encoding/json"

	"github.com/buger/jsonparser"

	"github.com/petermarshallio/druid/go/druid/druiderrors"
)

// The JSON spec format tags every datasource object with a "type"
// discriminator. The codec lives in this one file so the full set of
// variants is visible in a single switch on both the encode and decode
// paths.
const (
	specTypeTable    = "table"
	specTypeLookup   = "lookup"
	specTypeInline   = "inline"
	specTypeUnion    = "union"
	specTypeRestrict = "restrict"
	specTypeQuery    = "query"
	specTypeJoin     = "join"
)

// EncodeSpec returns the canonical JSON encoding of a datasource tree.
func EncodeSpec(ds DataSource) ([]byte, error) {
	encoded, err := json.Marshal(ds)
	if err != nil {
		return nil, druiderrors.Wrap(err, "cannot encode datasource spec")
	}
	return encoded, nil
}

// DecodeSpec parses a datasource tree from its JSON spec.
func DecodeSpec(data []byte) (DataSource, error) {
	specType, err := jsonparser.GetString(data, "type")
	if err != nil {
		return nil, druiderrors.Wrap(err, "datasource spec has no type")
	}

	switch specType {
	case specTypeTable:
		var spec struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(data, &spec); err != nil {
			return nil, druiderrors.Wrap(err, "invalid table spec")
		}
		return NewTableDataSource(spec.Name)

	case specTypeLookup:
		var spec struct {
			Lookup string `json:"lookup"`
		}
		if err := json.Unmarshal(data, &spec); err != nil {
			return nil, druiderrors.Wrap(err, "invalid lookup spec")
		}
		return NewLookupDataSource(spec.Lookup)

	case specTypeInline:
		var spec struct {
			ColumnNames []string `json:"columnNames"`
			Rows        [][]any  `json:"rows"`
		}
		if err := json.Unmarshal(data, &spec); err != nil {
			return nil, druiderrors.Wrap(err, "invalid inline spec")
		}
		return NewInlineDataSource(spec.ColumnNames, spec.Rows)

	case specTypeUnion:
		var spec struct {
			DataSources []json.RawMessage `json:"dataSources"`
		}
		if err := json.Unmarshal(data, &spec); err != nil {
			return nil, druiderrors.Wrap(err, "invalid union spec")
		}
		sources := make([]DataSource, len(spec.DataSources))
		for i, raw := range spec.DataSources {
			if sources[i], err = DecodeSpec(raw); err != nil {
				return nil, err
			}
		}
		return NewUnionDataSource(sources)

	case specTypeRestrict:
		var spec struct {
			Base   json.RawMessage `json:"base"`
			Policy json.RawMessage `json:"policy"`
		}
		if err := json.Unmarshal(data, &spec); err != nil {
			return nil, druiderrors.Wrap(err, "invalid restrict spec")
		}
		base, err := DecodeSpec(spec.Base)
		if err != nil {
			return nil, err
		}
		policy, err := decodePolicy(spec.Policy)
		if err != nil {
			return nil, err
		}
		return NewRestrictedDataSource(base, policy)

	case specTypeQuery:
		var spec struct {
			Query json.RawMessage `json:"query"`
		}
		if err := json.Unmarshal(data, &spec); err != nil {
			return nil, druiderrors.Wrap(err, "invalid query spec")
		}
		query, err := decodeQuery(spec.Query)
		if err != nil {
			return nil, err
		}
		return NewQueryDataSource(query)

	case specTypeJoin:
		var spec struct {
			Left        json.RawMessage `json:"left"`
			Right       json.RawMessage `json:"right"`
			RightPrefix string          `json:"rightPrefix"`
			Condition   string          `json:"condition"`
			JoinType    string          `json:"joinType"`
			Algorithm   string          `json:"joinAlgorithm"`
			LeftFilter  string          `json:"leftFilter"`
		}
		if err := json.Unmarshal(data, &spec); err != nil {
			return nil, druiderrors.Wrap(err, "invalid join spec")
		}
		left, err := DecodeSpec(spec.Left)
		if err != nil {
			return nil, err
		}
		right, err := DecodeSpec(spec.Right)
		if err != nil {
			return nil, err
		}
		joinType, err := ParseJoinType(spec.JoinType)
		if err != nil {
			return nil, err
		}
		algorithm, err := ParseJoinAlgorithm(spec.Algorithm)
		if err != nil {
			return nil, err
		}
		var leftFilter *Filter
		if spec.LeftFilter != "" {
			leftFilter = &Filter{Expression: spec.LeftFilter}
		}
		return NewJoinDataSource(
			left, right, spec.RightPrefix,
			JoinCondition{Expression: spec.Condition},
			joinType, leftFilter, algorithm,
		)

	default:
		return nil, druiderrors.Errorf(druiderrors.CodeInvalidArgument, "unknown datasource type %q", specType)
	}
}

// MarshalJSON implements the json.Marshaler interface.
func (t *TableDataSource) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Name string `json:"name"`
	}{specTypeTable, t.Name})
}

// MarshalJSON implements the json.Marshaler interface.
func (l *LookupDataSource) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type   string `json:"type"`
		Lookup string `json:"lookup"`
	}{specTypeLookup, l.Name})
}

// MarshalJSON implements the json.Marshaler interface.
func (i *InlineDataSource) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type        string   `json:"type"`
		ColumnNames []string `json:"columnNames"`
		Rows        [][]any  `json:"rows"`
	}{specTypeInline, i.ColumnNames, i.Rows})
}

// MarshalJSON implements the json.Marshaler interface.
func (u *UnionDataSource) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type        string       `json:"type"`
		DataSources []DataSource `json:"dataSources"`
	}{specTypeUnion, u.Sources})
}

// MarshalJSON implements the json.Marshaler interface.
func (r *RestrictedDataSource) MarshalJSON() ([]byte, error) {
	policy, err := encodePolicy(r.Policy)
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Type   string          `json:"type"`
		Base   DataSource      `json:"base"`
		Policy json.RawMessage `json:"policy"`
	}{specTypeRestrict, r.Base, policy})
}

// MarshalJSON implements the json.Marshaler interface.
func (q *QueryDataSource) MarshalJSON() ([]byte, error) {
	marshaler, ok := q.Query.(json.Marshaler)
	if !ok {
		return nil, druiderrors.Errorf(druiderrors.CodeUnimplemented, "query type %T is not encodable", q.Query)
	}
	query, err := marshaler.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return json.Marshal(struct {
		Type  string          `json:"type"`
		Query json.RawMessage `json:"query"`
	}{specTypeQuery, query})
}

// MarshalJSON implements the json.Marshaler interface.
func (j *JoinDataSource) MarshalJSON() ([]byte, error) {
	var leftFilter string
	if j.LeftFilter != nil {
		leftFilter = j.LeftFilter.Expression
	}
	return json.Marshal(struct {
		Type        string     `json:"type"`
		Left        DataSource `json:"left"`
		Right       DataSource `json:"right"`
		RightPrefix string     `json:"rightPrefix"`
		Condition   string     `json:"condition"`
		JoinType    JoinType   `json:"joinType"`
		Algorithm   JoinAlgorithm `json:"joinAlgorithm"`
		LeftFilter  string     `json:"leftFilter,omitempty"`
	}{specTypeJoin, j.Left, j.Right, j.RightPrefix, j.Condition.Expression, j.JoinType, j.Algorithm, leftFilter})
}

const (
	policyTypeNoRestriction = "noRestriction"
	policyTypeRowFilter     = "rowFilter"
)

func encodePolicy(policy Policy) (json.RawMessage, error) {
	switch p := policy.(type) {
	case NoRestrictionPolicy:
		return json.Marshal(struct {
			Type string `json:"type"`
		}{policyTypeNoRestriction})
	case RowFilterPolicy:
		return json.Marshal(struct {
			Type      string `json:"type"`
			RowFilter string `json:"rowFilter"`
		}{policyTypeRowFilter, p.Filter.Expression})
	default:
		return nil, druiderrors.Errorf(druiderrors.CodeUnimplemented, "policy type %T is not encodable", policy)
	}
}

func decodePolicy(data []byte) (Policy, error) {
	policyType, err := jsonparser.GetString(data, "type")
	if err != nil {
		return nil, druiderrors.Wrap(err, "policy spec has no type")
	}
	switch policyType {
	case policyTypeNoRestriction:
		return NoRestrictionPolicy{}, nil
	case policyTypeRowFilter:
		var spec struct {
			RowFilter string `json:"rowFilter"`
		}
		if err := json.Unmarshal(data, &spec); err != nil {
			return nil, druiderrors.Wrap(err, "invalid rowFilter policy")
		}
		return RowFilterPolicy{Filter: Filter{Expression: spec.RowFilter}}, nil
	default:
		return nil, druiderrors.Errorf(druiderrors.CodeInvalidArgument, "unknown policy type %q", policyType)
	}
}

// MarshalJSON implements the json.Marshaler interface.
func (q *ScanQuery) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		QueryType string       `json:"queryType"`
		Source    DataSource   `json:"dataSource"`
		Intervals *SegmentSpec `json:"intervals,omitempty"`
		Columns   []string     `json:"columns,omitempty"`
	}{"scan", q.Source, q.Intervals, q.Columns})
}

// decodeQuery parses a query object. Scan is the only query type the spec
// codec understands; the engine's full query codec handles the rest.
func decodeQuery(data []byte) (Query, error) {
	queryType, err := jsonparser.GetString(data, "queryType")
	if err != nil {
		return nil, druiderrors.Wrap(err, "query spec has no queryType")
	}
	if queryType != "scan" {
		return nil, druiderrors.Errorf(druiderrors.CodeUnimplemented, "query type %q is not supported by the spec codec", queryType)
	}

	var spec struct {
		Source    json.RawMessage `json:"dataSource"`
		Intervals *SegmentSpec    `json:"intervals"`
		Columns   []string        `json:"columns"`
	}
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, druiderrors.Wrap(err, "invalid scan query")
	}
	source, err := DecodeSpec(spec.Source)
	if err != nil {
		return nil, err
	}
	return &ScanQuery{Source: source, Intervals: spec.Intervals, Columns: spec.Columns}, nil
}
