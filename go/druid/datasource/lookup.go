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

// LookupDataSource is a key/value side table replicated in full to every
// processing node. It is not segment-backed and never needs to be scanned
// remotely.
type LookupDataSource struct {
	Name string
}

var _ DataSource = (*LookupDataSource)(nil)

// NewLookupDataSource returns a lookup datasource for the given lookup name.
func NewLookupDataSource(name string) (*LookupDataSource, error) {
	if name == "" {
		return nil, druiderrors.New(druiderrors.CodeInvalidArgument, "lookup name cannot be empty")
	}
	return &LookupDataSource{Name: name}, nil
}

// TableNames implements the DataSource interface. Lookups are not tables.
func (l *LookupDataSource) TableNames() []string {
	return nil
}

// Children implements the DataSource interface.
func (l *LookupDataSource) Children() []DataSource {
	return nil
}

// WithChildren implements the DataSource interface.
func (l *LookupDataSource) WithChildren(children []DataSource) (DataSource, error) {
	if len(children) != 0 {
		return nil, childCountError(l, 0, len(children))
	}
	return l, nil
}

// IsGlobal implements the DataSource interface.
func (l *LookupDataSource) IsGlobal() bool {
	return true
}

// IsJoin implements the DataSource interface.
func (l *LookupDataSource) IsJoin() bool {
	return false
}

// String implements the DataSource interface.
func (l *LookupDataSource) String() string {
	return fmt.Sprintf("lookup(%s)", l.Name)
}

func (l *LookupDataSource) isDataSource() {}
