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
	"strings"

	"github.com/petermarshallio/druid/go/druid/druiderrors"
)

// TimeColumnName is the reserved primary timestamp column present on every
// row of a segment-backed table.
const TimeColumnName = "__time"

// ValidatePrefix reports whether prefix can namespace the right-hand columns
// of a join. Prefixes must be non-empty and must not shadow the reserved
// time column.
func ValidatePrefix(prefix string) error {
	if prefix == "" {
		return druiderrors.New(druiderrors.CodeInvalidArgument, "join prefix cannot be empty")
	}
	if prefix == TimeColumnName || IsPrefixedBy(TimeColumnName, prefix) {
		return druiderrors.Errorf(
			druiderrors.CodeInvalidArgument,
			"join prefix %q would shadow the %s column", prefix, TimeColumnName,
		)
	}
	return nil
}

// IsPrefixedBy reports whether columnName is namespaced under prefix. A
// column exactly equal to the prefix does not count: stripping the prefix
// would leave an empty column name.
func IsPrefixedBy(columnName, prefix string) bool {
	return len(columnName) > len(prefix) && strings.HasPrefix(columnName, prefix)
}

// Unprefix strips prefix from columnName. Callers must first check
// IsPrefixedBy.
func Unprefix(columnName, prefix string) string {
	return columnName[len(prefix):]
}
