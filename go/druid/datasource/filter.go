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

// Filter is a row predicate attached to a join or an access policy.
// Planning treats filters as opaque values, compared only for equality;
// interpreting the expression is the execution engine's job.
type Filter struct {
	Expression string
}

// TrueFilter returns a filter that matches every row.
func TrueFilter() *Filter {
	return &Filter{Expression: "true"}
}

// JoinCondition is the structural condition a join is evaluated under.
// Like Filter, it is opaque to planning and passed through unexamined.
type JoinCondition struct {
	Expression string
}
