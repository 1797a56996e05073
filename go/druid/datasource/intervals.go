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
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/petermarshallio/druid/go/druid/druiderrors"
)

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// ParseInterval parses "start/end" where both sides are RFC 3339 timestamps,
// e.g. "2000-01-01T00:00:00Z/3000-01-01T00:00:00Z".
func ParseInterval(s string) (Interval, error) {
	start, end, ok := strings.Cut(s, "/")
	if !ok {
		return Interval{}, druiderrors.Errorf(druiderrors.CodeInvalidArgument, "interval %q is not of the form start/end", s)
	}
	startTime, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return Interval{}, druiderrors.Wrapf(err, "invalid interval start %q", start)
	}
	endTime, err := time.Parse(time.RFC3339, end)
	if err != nil {
		return Interval{}, druiderrors.Wrapf(err, "invalid interval end %q", end)
	}
	if endTime.Before(startTime) {
		return Interval{}, druiderrors.Errorf(druiderrors.CodeInvalidArgument, "interval %q ends before it starts", s)
	}
	return Interval{Start: startTime, End: endTime}, nil
}

// String formats the interval in the form ParseInterval accepts.
func (i Interval) String() string {
	return i.Start.UTC().Format(time.RFC3339) + "/" + i.End.UTC().Format(time.RFC3339)
}

// MarshalJSON encodes the interval as a "start/end" string.
func (i Interval) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", i.String())), nil
}

// UnmarshalJSON decodes an interval from a "start/end" string.
func (i *Interval) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return druiderrors.Errorf(druiderrors.CodeInvalidArgument, "interval must be a JSON string, got %s", data)
	}
	parsed, err := ParseInterval(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

// SegmentSpec is the set of time intervals a query is restricted to. The
// analyzer carries it through from an unwrapped subquery so the planner can
// prune segments.
type SegmentSpec struct {
	Intervals []Interval
}

// NewSegmentSpec returns a segment spec over the given intervals.
func NewSegmentSpec(intervals ...Interval) *SegmentSpec {
	return &SegmentSpec{Intervals: intervals}
}

// MarshalJSON encodes the spec as a bare array of interval strings.
func (s SegmentSpec) MarshalJSON() ([]byte, error) {
	parts := make([]string, len(s.Intervals))
	for i, interval := range s.Intervals {
		parts[i] = fmt.Sprintf("%q", interval.String())
	}
	return []byte("[" + strings.Join(parts, ",") + "]"), nil
}

// UnmarshalJSON decodes a spec from an array of interval strings.
func (s *SegmentSpec) UnmarshalJSON(data []byte) error {
	var intervals []Interval
	if err := json.Unmarshal(data, &intervals); err != nil {
		return druiderrors.Wrap(err, "invalid segment spec")
	}
	s.Intervals = intervals
	return nil
}

// String formats the spec for logs.
func (s *SegmentSpec) String() string {
	parts := make([]string, len(s.Intervals))
	for i, interval := range s.Intervals {
		parts[i] = interval.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
