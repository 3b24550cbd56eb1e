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

import "fmt"

// An Expectation verifies a count of calls against an expected value
type Expectation interface {
	// Met reports whether count satisfies the expectation
	Met(count int) bool
	fmt.Stringer
}

type calledExactly int

func (n calledExactly) Met(count int) bool {
	return count == int(n)
}

func (n calledExactly) String() string {
	switch n {
	case 0:
		return "never"
	case 1:
		return "once"
	case 2:
		return "twice"
	}
	return fmt.Sprintf("exactly %d", int(n))
}

type calledAtLeast int

func (n calledAtLeast) Met(count int) bool {
	return count >= int(n)
}

func (n calledAtLeast) String() string {
	return fmt.Sprintf("at least %d", int(n))
}

type calledBetween struct {
	atLeast int
	atMost  int
}

func (b calledBetween) Met(count int) bool {
	return count >= b.atLeast && count <= b.atMost
}

func (b calledBetween) String() string {
	if b.atLeast <= 0 {
		return fmt.Sprintf("at most %d", b.atMost)
	}
	return fmt.Sprintf("between %d and %d", b.atLeast, b.atMost)
}

// Exactly returns an expectation to be called exactly n times
func Exactly(n int) Expectation {
	return calledExactly(n)
}

// Once is shorthand for Exactly(1)
func Once() Expectation {
	return Exactly(1)
}

// Twice is shorthand for Exactly(2)
func Twice() Expectation {
	return Exactly(2)
}

// Never is shorthand for Exactly(0)
func Never() Expectation {
	return Exactly(0)
}

// AtLeast returns an expectation to be called at least n times
func AtLeast(n int) Expectation {
	return calledAtLeast(n)
}

// AtMost returns an expectation to be called at most n times
func AtMost(n int) Expectation {
	return Between(0, n)
}

// Between returns an expectation to be called at least min times and at most max times
func Between(min int, max int) Expectation {
	return calledBetween{min, max}
}
