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

import "reflect"

// Equal reports whether two datasource trees are structurally equal: the
// same variants with the same values, recursively. Two nils are equal.
func Equal(a, b DataSource) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch a := a.(type) {
	case *TableDataSource:
		other, ok := b.(*TableDataSource)
		return ok && a.Name == other.Name
	case *LookupDataSource:
		other, ok := b.(*LookupDataSource)
		return ok && a.Name == other.Name
	case *InlineDataSource:
		other, ok := b.(*InlineDataSource)
		return ok &&
			reflect.DeepEqual(a.ColumnNames, other.ColumnNames) &&
			reflect.DeepEqual(a.Rows, other.Rows)
	case *UnionDataSource:
		other, ok := b.(*UnionDataSource)
		if !ok || len(a.Sources) != len(other.Sources) {
			return false
		}
		for i := range a.Sources {
			if !Equal(a.Sources[i], other.Sources[i]) {
				return false
			}
		}
		return true
	case *RestrictedDataSource:
		other, ok := b.(*RestrictedDataSource)
		return ok &&
			Equal(a.Base, other.Base) &&
			reflect.DeepEqual(a.Policy, other.Policy)
	case *QueryDataSource:
		other, ok := b.(*QueryDataSource)
		// Queries are opaque; structural comparison is the best available.
		return ok && QueriesEqual(a.Query, other.Query)
	case *JoinDataSource:
		other, ok := b.(*JoinDataSource)
		return ok &&
			a.RightPrefix == other.RightPrefix &&
			a.Condition == other.Condition &&
			a.JoinType == other.JoinType &&
			a.Algorithm == other.Algorithm &&
			filtersEqual(a.LeftFilter, other.LeftFilter) &&
			Equal(a.Left, other.Left) &&
			Equal(a.Right, other.Right)
	default:
		// Unreachable: the variant set is closed.
		return false
	}
}

// QueriesEqual reports whether two opaque query values are structurally
// equal. Two nils are equal.
func QueriesEqual(a, b Query) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return reflect.DeepEqual(a, b)
}

func filtersEqual(a, b *Filter) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
