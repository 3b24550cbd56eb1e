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
)

// T is compatible with builtin testing.T
type T interface {
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
	Logf(format string, args ...interface{})
	Helper()
}

// Credentials are the arguments of a single Authenticator.Attempt
type Credentials struct {
	Username string
	Password string
}

// String masks the password so recorded calls can be printed in test output
func (c Credentials) String() string {
	return fmt.Sprintf("%s, ***", c.Username)
}

type settings struct {
	trace T
}

// Option configures a test double at construction
type Option func(*settings)

// WithTrace logs every call received by the double (via T.Logf)
func WithTrace(t T) Option {
	return func(s *settings) {
		s.trace = t
	}
}

func newSettings(opts []Option) settings {
	s := settings{}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func (s settings) tracef(format string, args ...interface{}) {
	if s.trace == nil {
		return
	}
	s.trace.Helper()
	s.trace.Logf(format, args...)
}

// Verifiable is a double with a post-condition check
type Verifiable interface {
	Verify() bool
}

// AssertVerified reports each of testDoubles that fails Verify() via t.Errorf, returning true if all were verified
func AssertVerified(t T, testDoubles ...Verifiable) bool {
	t.Helper()
	verified := true
	for _, td := range testDoubles {
		if !td.Verify() {
			t.Errorf("%v was not verified", td)
			verified = false
		}
	}
	return verified
}
