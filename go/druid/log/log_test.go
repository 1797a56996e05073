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

package log

import (
	"sync/atomic"
	"testing"

	"github.com/golang/glog"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogRotateMaxSizeFlag(t *testing.T) {
	previous := atomic.LoadUint64(&glog.MaxSize)
	defer atomic.StoreUint64(&glog.MaxSize, previous)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)

	flag := fs.Lookup("log-rotate-max-size")
	require.NotNil(t, flag)
	assert.Equal(t, "uint64", flag.Value.Type())

	require.NoError(t, fs.Parse([]string{"--log-rotate-max-size=1024"}))
	assert.Equal(t, uint64(1024), atomic.LoadUint64(&glog.MaxSize))
	assert.Equal(t, "1024", flag.Value.String())

	assert.Error(t, flag.Value.Set("not-a-number"))
}
