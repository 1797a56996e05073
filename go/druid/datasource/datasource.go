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

// Package datasource defines the tree of sources a query reads from.
//
// A datasource is either a leaf (a physical table, a globally replicated
// lookup, an inline row set) or a composition of other datasources (a union,
// an access-restricted wrapper, a subquery, a join). Trees built from these
// variants are immutable values: planning code derives new trees with
// WithChildren rather than mutating in place.
//
// The set of variants is closed. DataSource can only be implemented inside
// this package, so a type switch over all seven variants is exhaustive and
// every new variant becomes a compile-visible obligation in the switches
// that consume the model.
package datasource

import (
	"sort"

	"github.com/petermarshallio/druid/go/druid/druiderrors"
)

// DataSource is one node of a query's source tree.
type DataSource interface {
	// TableNames returns the sorted, de-duplicated names of all physical
	// tables this datasource or any nested datasource reads from.
	TableNames() []string

	// Children returns the direct child datasources. Leaves return nil.
	Children() []DataSource

	// WithChildren returns a copy of this datasource with its children
	// replaced. The number of replacements must match Children().
	WithChildren(children []DataSource) (DataSource, error)

	// IsGlobal reports whether the full contents of this datasource are
	// available identically on every processing node, as opposed to being
	// partitioned across segment-backed storage.
	IsGlobal() bool

	// IsJoin reports whether this datasource is a join of two datasources.
	IsJoin() bool

	// String returns a compact description used in logs and error messages.
	String() string

	// isDataSource restricts implementations to this package, keeping the
	// variant set closed.
	isDataSource()
}

// JoinType is the type of a join: the rows kept when the condition finds no
// match on one side.
type JoinType string

// All the join types.
const (
	JoinTypeInner JoinType = "INNER"
	JoinTypeLeft  JoinType = "LEFT"
	JoinTypeRight JoinType = "RIGHT"
	JoinTypeFull  JoinType = "FULL"
)

// ParseJoinType returns the JoinType for name, or an error if name does not
// spell a supported join type.
func ParseJoinType(name string) (JoinType, error) {
	switch JoinType(name) {
	case JoinTypeInner, JoinTypeLeft, JoinTypeRight, JoinTypeFull:
		return JoinType(name), nil
	default:
		return "", druiderrors.Errorf(druiderrors.CodeInvalidArgument, "unknown join type %q", name)
	}
}

// JoinAlgorithm is a hint for the physical strategy used to evaluate a join.
// The analyzer passes it through unexamined.
type JoinAlgorithm string

// All the join algorithms.
const (
	JoinAlgorithmBroadcast JoinAlgorithm = "broadcast"
	JoinAlgorithmSortMerge JoinAlgorithm = "sortMerge"
)

// ParseJoinAlgorithm returns the JoinAlgorithm for name. The empty string
// parses to the default, JoinAlgorithmBroadcast.
func ParseJoinAlgorithm(name string) (JoinAlgorithm, error) {
	switch JoinAlgorithm(name) {
	case "":
		return JoinAlgorithmBroadcast, nil
	case JoinAlgorithmBroadcast, JoinAlgorithmSortMerge:
		return JoinAlgorithm(name), nil
	default:
		return "", druiderrors.Errorf(druiderrors.CodeInvalidArgument, "unknown join algorithm %q", name)
	}
}

// mergeTableNames merges the table names of the given sources into one
// sorted, de-duplicated list.
func mergeTableNames(sources ...DataSource) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, src := range sources {
		for _, name := range src.TableNames() {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// childCountError is the error returned by WithChildren implementations when
// given the wrong number of replacements.
func childCountError(ds DataSource, want, got int) error {
	return druiderrors.Errorf(
		druiderrors.CodeInvalidArgument,
		"%v expects %d children, got %d", ds, want, got,
	)
}
