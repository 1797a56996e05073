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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petermarshallio/druid/go/druid/druiderrors"
)

func TestValidatePrefix(t *testing.T) {
	for _, prefix := range []string{"1.", "j0.", "abc", "__timeZZZ"} {
		assert.NoError(t, ValidatePrefix(prefix), prefix)
	}

	testCases := []struct {
		prefix string
		reason string
	}{
		{"", "empty"},
		{TimeColumnName, "equals the time column"},
		{"__", "shadows the time column"},
		{"_", "shadows the time column"},
		{"__tim", "shadows the time column"},
	}
	for _, tc := range testCases {
		err := ValidatePrefix(tc.prefix)
		require.Errorf(t, err, "%q: %s", tc.prefix, tc.reason)
		assert.Equal(t, druiderrors.CodeInvalidArgument, druiderrors.Code(err))
	}
}

func TestIsPrefixedBy(t *testing.T) {
	assert.True(t, IsPrefixedBy("1.foo", "1."))
	assert.True(t, IsPrefixedBy("1.", "1"))
	assert.False(t, IsPrefixedBy("foo", "1."))

	// A column exactly equal to the prefix is not prefixed by it: stripping
	// the prefix would leave nothing.
	assert.False(t, IsPrefixedBy("1.", "1."))
	assert.False(t, IsPrefixedBy("", ""))
}

func TestUnprefix(t *testing.T) {
	assert.Equal(t, "foo", Unprefix("1.foo", "1."))
	assert.Equal(t, "x", Unprefix("j.x", "j."))
}
