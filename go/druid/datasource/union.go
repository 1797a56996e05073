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
	"strings"

	"github.com/petermarshallio/druid/go/druid/druiderrors"
)

// UnionDataSource is the ordered concatenation of other datasources. The
// sources are appended, not merged: rows keep their origin order within each
// source.
type UnionDataSource struct {
	Sources []DataSource
}

var _ DataSource = (*UnionDataSource)(nil)

// NewUnionDataSource returns a union over the given sources.
func NewUnionDataSource(sources []DataSource) (*UnionDataSource, error) {
	if len(sources) == 0 {
		return nil, druiderrors.New(druiderrors.CodeInvalidArgument, "union datasource requires at least one source")
	}
	return &UnionDataSource{Sources: sources}, nil
}

// TableNames implements the DataSource interface.
func (u *UnionDataSource) TableNames() []string {
	return mergeTableNames(u.Sources...)
}

// Children implements the DataSource interface.
func (u *UnionDataSource) Children() []DataSource {
	return u.Sources
}

// WithChildren implements the DataSource interface.
func (u *UnionDataSource) WithChildren(children []DataSource) (DataSource, error) {
	if len(children) != len(u.Sources) {
		return nil, childCountError(u, len(u.Sources), len(children))
	}
	return &UnionDataSource{Sources: children}, nil
}

// IsGlobal implements the DataSource interface. A union is global only if
// every source is.
func (u *UnionDataSource) IsGlobal() bool {
	for _, src := range u.Sources {
		if !src.IsGlobal() {
			return false
		}
	}
	return true
}

// IsJoin implements the DataSource interface.
func (u *UnionDataSource) IsJoin() bool {
	return false
}

// String implements the DataSource interface.
func (u *UnionDataSource) String() string {
	parts := make([]string, len(u.Sources))
	for i, src := range u.Sources {
		parts[i] = src.String()
	}
	return fmt.Sprintf("union(%s)", strings.Join(parts, ", "))
}

func (u *UnionDataSource) isDataSource() {}
