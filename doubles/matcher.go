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
	"strings"
)

// Matcher selects a subset of recorded Credentials
type Matcher interface {
	Matches(c Credentials) bool
}

type funcMatcher struct {
	f           func(Credentials) bool
	explanation string
}

func (f funcMatcher) Matches(c Credentials) bool {
	return f.f(c)
}

func (f funcMatcher) String() string {
	return f.explanation
}

// Func returns a Matcher for an arbitrary predicate.
//
// The explanation is joined with fmt.Sprint and used to describe the matcher in failure messages
func Func(f func(Credentials) bool, explanation ...interface{}) Matcher {
	if len(explanation) == 0 {
		return funcMatcher{f, "Func(...)"}
	}
	return funcMatcher{f, fmt.Sprint(explanation...)}
}

// Username matches attempts for username
func Username(username string) Matcher {
	return Func(func(c Credentials) bool {
		return c.Username == username
	}, "Username(", username, ")")
}

// Password matches attempts made with password. The password is not shown in descriptions.
func Password(password string) Matcher {
	return Func(func(c Credentials) bool {
		return c.Password == password
	}, "Password(***)")
}

// Eql matches attempts with exactly these credentials
func Eql(username, password string) Matcher {
	return And(Username(username), Password(password))
}

type matcherList []Matcher

func (l matcherList) toString(prefix string) string {
	s := strings.Builder{}
	s.WriteString(prefix)
	s.WriteRune('{')
	for i, m := range l {
		if i > 0 {
			s.WriteRune(',')
		}
		s.WriteString(fmt.Sprint(m))
	}
	s.WriteRune('}')
	return s.String()
}

type andMatcher struct {
	matcherList
}

func (a andMatcher) Matches(c Credentials) bool {
	for _, m := range a.matcherList {
		if !m.Matches(c) {
			return false
		}
	}
	return true
}

func (a andMatcher) String() string {
	return a.toString("All")
}

// All matches if all the matchers match (true for no matchers)
func All(matchers ...Matcher) Matcher {
	return andMatcher{matchers}
}

// And is an alias for All
func And(matchers ...Matcher) Matcher {
	return All(matchers...)
}

type orMatcher struct {
	matcherList
}

func (o orMatcher) Matches(c Credentials) bool {
	for _, m := range o.matcherList {
		if m.Matches(c) {
			return true
		}
	}
	return false
}

func (o orMatcher) String() string {
	return o.toString("Any")
}

// Any matches if any one of the matchers match (false for no matchers)
func Any(matchers ...Matcher) Matcher {
	return orMatcher{matchers}
}

// Or is an alias for Any
func Or(matchers ...Matcher) Matcher {
	return Any(matchers...)
}

type notMatcher struct {
	Matcher
}

func (n notMatcher) Matches(c Credentials) bool {
	return !n.Matcher.Matches(c)
}

func (n notMatcher) String() string {
	return fmt.Sprintf("Not(%v)", n.Matcher)
}

// Not negates matcher
func Not(matcher Matcher) Matcher {
	return notMatcher{matcher}
}
