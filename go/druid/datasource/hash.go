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
	"github.com/cespare/xxhash/v2"

	"github.com/petermarshallio/druid/go/druid/druiderrors"
)

// Fingerprint returns a 64-bit structural fingerprint of a datasource tree,
// computed over its canonical JSON encoding. Structurally equal trees always
// produce the same fingerprint, so it can key caches of values derived from
// the tree. Collisions are possible; callers that cannot tolerate them must
// confirm with Equal.
func Fingerprint(ds DataSource) (uint64, error) {
	encoded, err := EncodeSpec(ds)
	if err != nil {
		return 0, druiderrors.Wrap(err, "cannot fingerprint datasource")
	}
	return xxhash.Sum64(encoded), nil
}
