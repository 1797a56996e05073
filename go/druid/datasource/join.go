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

// JoinDataSource joins two datasources. The right-hand side's output columns
// are namespaced under RightPrefix so they cannot collide with left-hand
// columns after the join.
type JoinDataSource struct {
	Left  DataSource
	Right DataSource

	// RightPrefix is prepended to every column the right side produces.
	RightPrefix string

	Condition JoinCondition
	JoinType  JoinType
	Algorithm JoinAlgorithm

	// LeftFilter restricts the left-hand rows before the join is evaluated.
	// May be nil.
	LeftFilter *Filter
}

var _ DataSource = (*JoinDataSource)(nil)

// NewJoinDataSource returns a join of left and right. An empty algorithm
// selects the default, JoinAlgorithmBroadcast.
func NewJoinDataSource(
	left DataSource,
	right DataSource,
	rightPrefix string,
	condition JoinCondition,
	joinType JoinType,
	leftFilter *Filter,
	algorithm JoinAlgorithm,
) (*JoinDataSource, error) {
	if left == nil || right == nil {
		return nil, druiderrors.New(druiderrors.CodeInvalidArgument, "join requires both a left and a right datasource")
	}
	if err := ValidatePrefix(rightPrefix); err != nil {
		return nil, err
	}
	if _, err := ParseJoinType(string(joinType)); err != nil {
		return nil, err
	}
	resolved, err := ParseJoinAlgorithm(string(algorithm))
	if err != nil {
		return nil, err
	}
	return &JoinDataSource{
		Left:        left,
		Right:       right,
		RightPrefix: rightPrefix,
		Condition:   condition,
		JoinType:    joinType,
		Algorithm:   resolved,
		LeftFilter:  leftFilter,
	}, nil
}

// TableNames implements the DataSource interface.
func (j *JoinDataSource) TableNames() []string {
	return mergeTableNames(j.Left, j.Right)
}

// Children implements the DataSource interface. The left child comes first.
func (j *JoinDataSource) Children() []DataSource {
	return []DataSource{j.Left, j.Right}
}

// WithChildren implements the DataSource interface.
func (j *JoinDataSource) WithChildren(children []DataSource) (DataSource, error) {
	if len(children) != 2 {
		return nil, childCountError(j, 2, len(children))
	}
	newJoin := *j
	newJoin.Left = children[0]
	newJoin.Right = children[1]
	return &newJoin, nil
}

// IsGlobal implements the DataSource interface. A join is global only if
// both sides are.
func (j *JoinDataSource) IsGlobal() bool {
	return j.Left.IsGlobal() && j.Right.IsGlobal()
}

// IsJoin implements the DataSource interface.
func (j *JoinDataSource) IsJoin() bool {
	return true
}

// String implements the DataSource interface.
func (j *JoinDataSource) String() string {
	return fmt.Sprintf("join(%v, %v, %q, %s)", j.Left, j.Right, j.RightPrefix, j.JoinType)
}

func (j *JoinDataSource) isDataSource() {}
