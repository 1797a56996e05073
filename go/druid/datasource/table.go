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

// TableDataSource is a physical, segment-backed table, partitioned across
// the cluster by time.
type TableDataSource struct {
	Name string
}

var _ DataSource = (*TableDataSource)(nil)

// NewTableDataSource returns a table datasource for the given table name.
func NewTableDataSource(name string) (*TableDataSource, error) {
	if name == "" {
		return nil, druiderrors.New(druiderrors.CodeInvalidArgument, "table name cannot be empty")
	}
	return &TableDataSource{Name: name}, nil
}

// TableNames implements the DataSource interface.
func (t *TableDataSource) TableNames() []string {
	return []string{t.Name}
}

// Children implements the DataSource interface.
func (t *TableDataSource) Children() []DataSource {
	return nil
}

// WithChildren implements the DataSource interface.
func (t *TableDataSource) WithChildren(children []DataSource) (DataSource, error) {
	if len(children) != 0 {
		return nil, childCountError(t, 0, len(children))
	}
	return t, nil
}

// IsGlobal implements the DataSource interface. Tables are partitioned, not
// replicated, so they are never global.
func (t *TableDataSource) IsGlobal() bool {
	return false
}

// IsJoin implements the DataSource interface.
func (t *TableDataSource) IsJoin() bool {
	return false
}

// String implements the DataSource interface.
func (t *TableDataSource) String() string {
	return fmt.Sprintf("table(%s)", t.Name)
}

func (t *TableDataSource) isDataSource() {}
