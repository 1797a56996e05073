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

// Package planning reduces a datasource tree to the canonical form physical
// planning works with: one base datasource plus an ordered chain of join
// clauses applied on top of it.
//
// The reduction happens in two phases. First, subquery layers at the top of
// the tree are unwrapped: the innermost subquery's query is remembered (it
// carries the segment intervals the planner prunes with) and the walk
// descends into its datasource. Second, if the remaining node is a join, its
// left spine is flattened into a list of PreJoinableClauses, nearest to the
// base first. Only the left spine collapses. A right child that is itself a
// join stays intact inside its clause, because flattening it would change
// which prefix governs which columns.
//
// Analyze is a pure function of its input: it performs no I/O, holds no
// shared state, and is safe to call concurrently on independent trees.
package planning

import (
	"fmt"
	"strings"

	"github.com/petermarshallio/druid/go/druid/datasource"
	"github.com/petermarshallio/druid/go/druid/druiderrors"
)

// PreJoinableClause is one join step flattened out of a datasource tree: a
// right-hand datasource to be joined onto everything beneath it, under a
// unique column prefix. "Pre-joinable" because the right side has not yet
// been resolved into a physically joinable entity.
type PreJoinableClause struct {
	prefix     string
	dataSource datasource.DataSource
	joinType   datasource.JoinType
	condition  datasource.JoinCondition
	algorithm  datasource.JoinAlgorithm
}

// NewPreJoinableClause returns a clause joining ds under the given prefix.
func NewPreJoinableClause(
	prefix string,
	ds datasource.DataSource,
	joinType datasource.JoinType,
	condition datasource.JoinCondition,
	algorithm datasource.JoinAlgorithm,
) (PreJoinableClause, error) {
	if err := datasource.ValidatePrefix(prefix); err != nil {
		return PreJoinableClause{}, err
	}
	return PreJoinableClause{
		prefix:     prefix,
		dataSource: ds,
		joinType:   joinType,
		condition:  condition,
		algorithm:  algorithm,
	}, nil
}

// Prefix returns the namespace assigned to the right-hand side's columns.
func (c PreJoinableClause) Prefix() string { return c.prefix }

// DataSource returns the right-hand datasource, unflattened.
func (c PreJoinableClause) DataSource() datasource.DataSource { return c.dataSource }

// JoinType returns the type of the join.
func (c PreJoinableClause) JoinType() datasource.JoinType { return c.joinType }

// Condition returns the join condition, opaque to the analysis.
func (c PreJoinableClause) Condition() datasource.JoinCondition { return c.condition }

// Algorithm returns the join algorithm hint.
func (c PreJoinableClause) Algorithm() datasource.JoinAlgorithm { return c.algorithm }

// Equals reports whether two clauses have equal fields.
func (c PreJoinableClause) Equals(other PreJoinableClause) bool {
	return c.prefix == other.prefix &&
		c.joinType == other.joinType &&
		c.condition == other.condition &&
		c.algorithm == other.algorithm &&
		datasource.Equal(c.dataSource, other.dataSource)
}

func (c PreJoinableClause) String() string {
	return fmt.Sprintf("%s JOIN %v AS %q ON %s", c.joinType, c.dataSource, c.prefix, c.condition.Expression)
}

// DataSourceAnalysis is the result of reducing a datasource tree: the base
// datasource, the join clauses stacked on it, and the classification
// predicates physical planning keys off. It is derived entirely from its
// input tree and never mutated; analyses over structurally equal trees are
// equal.
type DataSourceAnalysis struct {
	// dataSource is the node left after subquery unwrapping, before any
	// join flattening or restricted substitution.
	dataSource datasource.DataSource

	baseDataSource datasource.DataSource

	// baseQuery is the innermost unwrapped subquery's query, nil when the
	// tree had no top-level subquery layers.
	baseQuery datasource.Query

	preJoinableClauses []PreJoinableClause

	// joinBaseTableFilter is the filter of the join adjacent to the base,
	// nil when there is none. Filters on joins further out are not tracked.
	joinBaseTableFilter *datasource.Filter
}

// Analyze reduces a datasource tree to its analysis.
//
// Subquery unwrapping applies only at the top of the tree: once the walk has
// moved past the outermost run of query datasources, a query node found
// deeper (for example as a join's left child) terminates flattening and
// becomes the base as-is.
func Analyze(ds datasource.DataSource) *DataSourceAnalysis {
	var baseQuery datasource.Query
	current := ds
	for {
		queryDS, ok := current.(*datasource.QueryDataSource)
		if !ok {
			break
		}
		// Deeper layers overwrite shallower ones: only the innermost
		// subquery's segment spec restricts what the base scan reads.
		baseQuery = queryDS.Query
		current = queryDS.Query.DataSource()
	}

	analysis := &DataSourceAnalysis{
		dataSource: current,
		baseQuery:  baseQuery,
	}

	switch node := current.(type) {
	case *datasource.JoinDataSource:
		analysis.baseDataSource, analysis.joinBaseTableFilter, analysis.preJoinableClauses = flattenJoin(node)
	case *datasource.RestrictedDataSource:
		// A bare restricted table is transparently the table it wraps. The
		// same node reached as the terminal of a join's left spine is NOT
		// unwrapped (see flattenJoin); that asymmetry is inherited behavior
		// downstream planners rely on, kept intact on purpose.
		if _, ok := node.Base.(*datasource.TableDataSource); ok {
			analysis.baseDataSource = node.Base
		} else {
			analysis.baseDataSource = node
		}
	default:
		analysis.baseDataSource = current
	}

	return analysis
}

// flattenJoin walks the left spine of a join tree, peeling one clause per
// level. Right children are never descended into: a right-leaning join
// subtree rides along whole inside its clause.
func flattenJoin(join *datasource.JoinDataSource) (datasource.DataSource, *datasource.Filter, []PreJoinableClause) {
	var clauses []PreJoinableClause

	current := join
	for {
		clauses = append(clauses, PreJoinableClause{
			prefix:     current.RightPrefix,
			dataSource: current.Right,
			joinType:   current.JoinType,
			condition:  current.Condition,
			algorithm:  current.Algorithm,
		})
		left, ok := current.Left.(*datasource.JoinDataSource)
		if !ok {
			// current is the join adjacent to the base; only its filter
			// survives into the analysis.
			reverse(clauses)
			return current.Left, current.LeftFilter, clauses
		}
		current = left
	}
}

// reverse orders clauses nearest-to-base first. The spine walk collects them
// outermost first.
func reverse(clauses []PreJoinableClause) {
	for i, j := 0, len(clauses)-1; i < j; i, j = i+1, j-1 {
		clauses[i], clauses[j] = clauses[j], clauses[i]
	}
}

// BaseDataSource returns the datasource at the bottom of the reduction: the
// thing ultimately scanned or looked up.
func (a *DataSourceAnalysis) BaseDataSource() datasource.DataSource {
	return a.baseDataSource
}

// BaseTableDataSource returns the base as the single table it must be. It
// fails when the base is anything else: a union (many tables, no single
// answer), a lookup or inline source (not a table), or a restricted wrapper
// that survived as the terminal of a join spine.
func (a *DataSourceAnalysis) BaseTableDataSource() (*datasource.TableDataSource, error) {
	table, ok := a.baseDataSource.(*datasource.TableDataSource)
	if !ok {
		return nil, druiderrors.Errorf(
			druiderrors.CodeInvalidArgument,
			"base datasource %v is not a single table", a.baseDataSource,
		)
	}
	return table, nil
}

// BaseUnionDataSource returns the base as a union, when it is one.
func (a *DataSourceAnalysis) BaseUnionDataSource() (*datasource.UnionDataSource, bool) {
	union, ok := a.baseDataSource.(*datasource.UnionDataSource)
	return union, ok
}

// BaseQuery returns the innermost subquery unwrapped from the top of the
// tree, if any.
func (a *DataSourceAnalysis) BaseQuery() (datasource.Query, bool) {
	return a.baseQuery, a.baseQuery != nil
}

// BaseQuerySegmentSpec returns the time-range restriction carried by the
// base query, if the base query exists and restricts intervals.
func (a *DataSourceAnalysis) BaseQuerySegmentSpec() (*datasource.SegmentSpec, bool) {
	restricted, ok := a.baseQuery.(datasource.IntervalRestricted)
	if !ok {
		return nil, false
	}
	spec := restricted.QuerySegmentSpec()
	return spec, spec != nil
}

// PreJoinableClauses returns the join clauses applied on the base, ordered
// nearest-to-base first.
func (a *DataSourceAnalysis) PreJoinableClauses() []PreJoinableClause {
	return a.preJoinableClauses
}

// JoinBaseTableFilter returns the filter carried by the join adjacent to the
// base, if any.
func (a *DataSourceAnalysis) JoinBaseTableFilter() (*datasource.Filter, bool) {
	return a.joinBaseTableFilter, a.joinBaseTableFilter != nil
}

// IsTableBased reports whether the base datasource is backed by physical
// tables: a table, a union of tables, or a restricted table.
func (a *DataSourceAnalysis) IsTableBased() bool {
	switch base := a.baseDataSource.(type) {
	case *datasource.TableDataSource:
		return true
	case *datasource.RestrictedDataSource:
		_, ok := base.Base.(*datasource.TableDataSource)
		return ok
	case *datasource.UnionDataSource:
		for _, src := range base.Sources {
			if _, ok := src.(*datasource.TableDataSource); !ok {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// IsConcreteBased reports whether the base can be computed directly, via
// scan or local lookup, without first materializing a subquery.
//
// A materialized base (table, union, inline, restricted table) stays
// concrete unless the clause adjacent to it joins on a subquery; clauses
// further out operate on an already-materialized intermediate and cannot
// change the answer. A globally replicated base stays concrete only while
// everything joined onto it is equally global, since joining it to a
// partitioned source drags segment storage back into the computation.
func (a *DataSourceAnalysis) IsConcreteBased() bool {
	switch base := a.baseDataSource.(type) {
	case *datasource.TableDataSource, *datasource.UnionDataSource, *datasource.InlineDataSource:
		return !a.baseAdjacentClauseIsSubquery()
	case *datasource.RestrictedDataSource:
		if _, ok := base.Base.(*datasource.TableDataSource); ok {
			return !a.baseAdjacentClauseIsSubquery()
		}
		return false
	case *datasource.LookupDataSource:
		for _, clause := range a.preJoinableClauses {
			if !clause.dataSource.IsGlobal() {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func (a *DataSourceAnalysis) baseAdjacentClauseIsSubquery() bool {
	if len(a.preJoinableClauses) == 0 {
		return false
	}
	_, ok := a.preJoinableClauses[0].dataSource.(*datasource.QueryDataSource)
	return ok
}

// IsConcreteAndTableBased reports whether the analysis is both concrete and
// table based, the shape eligible for direct segment scanning.
func (a *DataSourceAnalysis) IsConcreteAndTableBased() bool {
	return a.IsConcreteBased() && a.IsTableBased()
}

// IsGlobal reports whether the analyzed tree (after subquery unwrapping) is
// globally replicated.
func (a *DataSourceAnalysis) IsGlobal() bool {
	return a.dataSource.IsGlobal()
}

// IsJoin reports whether the analyzed tree (after subquery unwrapping) is a
// join.
func (a *DataSourceAnalysis) IsJoin() bool {
	return a.dataSource.IsJoin()
}

// IsBaseColumn reports whether a query output column comes through unchanged
// from the base datasource. Columns namespaced by any clause prefix were
// introduced by a join; if a subquery sits over the base, nothing can be
// assumed to pass through unchanged and every column fails the test.
// Prefixes buried inside a clause's unflattened right subtree are invisible
// here: they namespace columns of that subtree's join output, not of this
// analysis's output.
func (a *DataSourceAnalysis) IsBaseColumn(column string) bool {
	if a.baseQuery != nil {
		return false
	}
	for _, clause := range a.preJoinableClauses {
		if datasource.IsPrefixedBy(column, clause.prefix) {
			return false
		}
	}
	return true
}

// Equals reports whether two analyses were produced from structurally equal
// inputs. Fields derived from the analyzed tree are not compared; they are
// functions of it.
func (a *DataSourceAnalysis) Equals(other *DataSourceAnalysis) bool {
	if a == nil || other == nil {
		return a == nil && other == nil
	}
	return datasource.Equal(a.dataSource, other.dataSource) &&
		datasource.QueriesEqual(a.baseQuery, other.baseQuery)
}

func (a *DataSourceAnalysis) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "analysis(base=%v", a.baseDataSource)
	for _, clause := range a.preJoinableClauses {
		fmt.Fprintf(&sb, ", %v", clause)
	}
	sb.WriteString(")")
	return sb.String()
}
