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

package druiderrors

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "no error"))
	assert.Nil(t, Wrapf(nil, "no error %d", 1))
}

func TestWrap(t *testing.T) {
	tests := []struct {
		err         error
		message     string
		wantMessage string
		wantCode    ErrCode
	}{
		{io.EOF, "read error", "read error: EOF", CodeUnknown},
		{New(CodeAlreadyExists, "oops"), "client error", "client error: oops", CodeAlreadyExists},
		{Errorf(CodeInvalidArgument, "bad value %d", 42), "validation", "validation: bad value 42", CodeInvalidArgument},
	}

	for _, tt := range tests {
		got := Wrap(tt.err, tt.message)
		require.Error(t, got)
		assert.Equal(t, tt.wantMessage, got.Error())
		assert.Equal(t, tt.wantCode, Code(got))
	}
}

func TestCode(t *testing.T) {
	assert.Equal(t, CodeOK, Code(nil))
	assert.Equal(t, CodeUnknown, Code(io.EOF))
	assert.Equal(t, CodeFailedPrecondition, Code(New(CodeFailedPrecondition, "error")))
	assert.Equal(t, CodeFailedPrecondition, Code(Wrap(Wrap(New(CodeFailedPrecondition, "error"), "a"), "b")))
}

func TestRootCause(t *testing.T) {
	assert.Equal(t, io.EOF, RootCause(Wrap(io.EOF, "ignored")))
	assert.Equal(t, io.EOF, RootCause(io.EOF))

	x := New(CodeFailedPrecondition, "error")
	assert.Equal(t, x, RootCause(Wrapf(x, "outer %s", "context")))
}
