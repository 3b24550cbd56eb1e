/*
 * Copyright 2020 grant@lastweekend.com.au
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package doubles

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
)

var tick uint64 //global atomic counter to assist with verifying order of execution across doubles

// RecordedCalls represents a set of recorded calls to be verified.
// Passing a nil Matcher, RecordedCalls or Expectation panics.
type RecordedCalls interface {
	// Matching returns the subset of calls whose credentials match
	Matching(matcher Matcher) RecordedCalls

	/*
		Slice returns a subset of these calls, including call at index from, excluding call at index to (like go slice)

		Bounds beyond NumCalls() are clamped, negative or inverted bounds panic.
		eg to get the last 3 calls - r.Slice(r.NumCalls() -3, r.NumCalls())
	*/
	Slice(from int, to int) RecordedCalls

	// After returns the subset of these calls that were invoked after all of otherCalls
	After(otherCalls RecordedCalls) RecordedCalls

	// Expect asserts the number of calls in this set, reporting a failure via t
	Expect(t T, expect Expectation) bool

	// NumCalls returns the number of calls in this set.
	// Prefer to use Expect() rather than asserting the result of NumCalls()
	NumCalls() int

	// Credentials returns the arguments of each call in the order they were made
	Credentials() []Credentials

	calls() []recordedCall
}

type recordedCall struct {
	tick  uint64
	creds Credentials
}

type callSet struct {
	desc     string
	recorded []recordedCall
}

func (c *callSet) String() string {
	return c.desc
}

func (c *callSet) calls() []recordedCall {
	return c.recorded
}

func (c *callSet) NumCalls() int {
	return len(c.recorded)
}

func (c *callSet) Credentials() []Credentials {
	creds := make([]Credentials, len(c.recorded))
	for i, call := range c.recorded {
		creds[i] = call.creds
	}
	return creds
}

func (c *callSet) Expect(t T, expect Expectation) bool {
	t.Helper()
	if expect == nil {
		panic(fmt.Sprintf("nil Expectation for %v", c))
	}
	count := c.NumCalls()
	if !expect.Met(count) {
		t.Errorf("%v expected %v, found %d calls", c, expect, count)
		return false
	}
	return true
}

func (c *callSet) Matching(matcher Matcher) RecordedCalls {
	if matcher == nil {
		panic(fmt.Sprintf("nil Matcher for %v", c))
	}
	var subset []recordedCall
	for _, call := range c.recorded {
		if matcher.Matches(call.creds) {
			subset = append(subset, call)
		}
	}
	return c.subset(subset, fmt.Sprintf("calls matching %v within", matcher))
}

func (c *callSet) Slice(from int, to int) RecordedCalls {
	if from < 0 || to < 0 || from > to {
		panic(fmt.Sprintf("invalid slice of %v [%d:%d]", c, from, to))
	}
	l := len(c.recorded)
	if from > l {
		return c.subset(nil, fmt.Sprintf("slice [%d>=len():] of", from))
	}
	if to > l {
		return c.subset(c.recorded[from:], fmt.Sprintf("slice [%d:] of", from))
	}
	return c.subset(c.recorded[from:to], fmt.Sprintf("slice [%d:%d] of", from, to))
}

func (c *callSet) After(otherCalls RecordedCalls) RecordedCalls {
	if otherCalls == nil {
		panic(fmt.Sprintf("nil RecordedCalls for calls after within %v", c))
	}
	other := otherCalls.calls()
	desc := fmt.Sprintf("calls after (%v) within", otherCalls)

	// all our calls are considered to be after an empty set
	if len(other) == 0 {
		return c.subset(c.recorded, desc)
	}

	lastTick := other[len(other)-1].tick
	i := sort.Search(len(c.recorded), func(i int) bool { return c.recorded[i].tick > lastTick })
	return c.subset(c.recorded[i:], desc)
}

func (c *callSet) subset(calls []recordedCall, desc string) *callSet {
	return &callSet{desc: desc + " " + c.desc, recorded: calls}
}

// recorder accumulates calls to one method of a double
type recorder struct {
	mutex    sync.Mutex
	name     string
	recorded []recordedCall
}

func newRecorder(name string) *recorder {
	return &recorder{name: name}
}

func (r *recorder) record(creds Credentials) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.recorded = append(r.recorded, recordedCall{tick: atomic.AddUint64(&tick, 1), creds: creds})
}

func (r *recorder) numCalls() int {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return len(r.recorded)
}

// snapshot returns the calls recorded so far. Later calls are not reflected in the result.
func (r *recorder) snapshot() RecordedCalls {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	recorded := make([]recordedCall, len(r.recorded))
	copy(recorded, r.recorded)
	return &callSet{desc: "all calls to " + r.name, recorded: recorded}
}
