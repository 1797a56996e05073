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

// Policy is the access-control rule enforced by a RestrictedDataSource.
// Policies come from an external authorization layer; planning only carries
// them along.
type Policy interface {
	// RowFilter returns the row-level filter the policy enforces, if any.
	RowFilter() (*Filter, bool)
}

// NoRestrictionPolicy is the policy of a caller allowed to read every row.
type NoRestrictionPolicy struct{}

// RowFilter implements the Policy interface.
func (NoRestrictionPolicy) RowFilter() (*Filter, bool) {
	return nil, false
}

// RowFilterPolicy restricts reads to the rows matching a filter.
type RowFilterPolicy struct {
	Filter Filter
}

// RowFilter implements the Policy interface.
func (p RowFilterPolicy) RowFilter() (*Filter, bool) {
	filter := p.Filter
	return &filter, true
}

// RestrictedDataSource is a table wrapped with an access-control policy.
// Reads go to the underlying table with the policy applied.
type RestrictedDataSource struct {
	Base   DataSource
	Policy Policy
}

var _ DataSource = (*RestrictedDataSource)(nil)

// NewRestrictedDataSource wraps a table datasource with a policy. Only
// tables can be restricted.
func NewRestrictedDataSource(base DataSource, policy Policy) (*RestrictedDataSource, error) {
	if _, ok := base.(*TableDataSource); !ok {
		return nil, druiderrors.Errorf(
			druiderrors.CodeInvalidArgument,
			"only tables can be restricted, got %v", base,
		)
	}
	if policy == nil {
		return nil, druiderrors.New(druiderrors.CodeInvalidArgument, "restricted datasource requires a policy")
	}
	return &RestrictedDataSource{Base: base, Policy: policy}, nil
}

// TableNames implements the DataSource interface.
func (r *RestrictedDataSource) TableNames() []string {
	return r.Base.TableNames()
}

// Children implements the DataSource interface.
func (r *RestrictedDataSource) Children() []DataSource {
	return []DataSource{r.Base}
}

// WithChildren implements the DataSource interface.
func (r *RestrictedDataSource) WithChildren(children []DataSource) (DataSource, error) {
	if len(children) != 1 {
		return nil, childCountError(r, 1, len(children))
	}
	return NewRestrictedDataSource(children[0], r.Policy)
}

// IsGlobal implements the DataSource interface.
func (r *RestrictedDataSource) IsGlobal() bool {
	return r.Base.IsGlobal()
}

// IsJoin implements the DataSource interface.
func (r *RestrictedDataSource) IsJoin() bool {
	return false
}

// String implements the DataSource interface.
func (r *RestrictedDataSource) String() string {
	return fmt.Sprintf("restrict(%v)", r.Base)
}

func (r *RestrictedDataSource) isDataSource() {}
