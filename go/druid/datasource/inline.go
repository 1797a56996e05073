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

// InlineDataSource is a row set carried inside the query itself. Since the
// rows travel with the query, they are available on every node that
// processes it.
type InlineDataSource struct {
	ColumnNames []string
	Rows        [][]any
}

var _ DataSource = (*InlineDataSource)(nil)

// NewInlineDataSource returns an inline datasource over the given rows.
// Every row must have one value per column.
func NewInlineDataSource(columnNames []string, rows [][]any) (*InlineDataSource, error) {
	if len(columnNames) == 0 {
		return nil, druiderrors.New(druiderrors.CodeInvalidArgument, "inline datasource requires at least one column")
	}
	for i, row := range rows {
		if len(row) != len(columnNames) {
			return nil, druiderrors.Errorf(
				druiderrors.CodeInvalidArgument,
				"inline row %d has %d values, expected %d", i, len(row), len(columnNames),
			)
		}
	}
	return &InlineDataSource{ColumnNames: columnNames, Rows: rows}, nil
}

// TableNames implements the DataSource interface.
func (i *InlineDataSource) TableNames() []string {
	return nil
}

// Children implements the DataSource interface.
func (i *InlineDataSource) Children() []DataSource {
	return nil
}

// WithChildren implements the DataSource interface.
func (i *InlineDataSource) WithChildren(children []DataSource) (DataSource, error) {
	if len(children) != 0 {
		return nil, childCountError(i, 0, len(children))
	}
	return i, nil
}

// IsGlobal implements the DataSource interface.
func (i *InlineDataSource) IsGlobal() bool {
	return true
}

// IsJoin implements the DataSource interface.
func (i *InlineDataSource) IsJoin() bool {
	return false
}

// String implements the DataSource interface.
func (i *InlineDataSource) String() string {
	return fmt.Sprintf("inline(%d columns, %d rows)", len(i.ColumnNames), len(i.Rows))
}

func (i *InlineDataSource) isDataSource() {}
