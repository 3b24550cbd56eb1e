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
	"sync"

	"github.com/lwoggardner/authdoubles/authn"
)

var _ authn.Authenticator = (*Mock)(nil)
var _ Verifiable = (*Mock)(nil)

/*
Mock is an Authenticator with a built in expectation: Logout is called, and performs its redirect.

# Setup phase

Optionally constrain the number of logouts with Expect.

# Exercise phase

Logout marks the logout, then the redirect. Attempt is not an expected interaction; it answers false and is recorded.

# Verify phase

Verify() reports whether the expected interactions happened. Use Attempts() to assert Attempt was never called.
*/
type Mock struct {
	settings
	mutex             sync.Mutex
	logoutWasCalled   bool
	redirectWasCalled bool
	logouts           int
	expect            Expectation
	attempts          *recorder
}

// NewMock returns a Mock expecting at least one Logout
func NewMock(opts ...Option) *Mock {
	return &Mock{
		settings: newSettings(opts),
		expect:   AtLeast(1),
		attempts: newRecorder("Mock.Attempt"),
	}
}

// Expect sets an expectation on the number of logouts, in addition to the logout and redirect having happened.
//
// Verify is therefore always false for an expectation that only accepts zero logouts, such as Never().
// A nil expectation restores the default, AtLeast(1).
func (m *Mock) Expect(expect Expectation) *Mock {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if expect == nil {
		expect = AtLeast(1)
	}
	m.expect = expect
	return m
}

func (m *Mock) Attempt(username, password string) (bool, error) {
	creds := Credentials{username, password}
	m.attempts.record(creds)
	m.tracef("Called Mock.Attempt(%v) => unexpected", creds)
	return false, nil
}

func (m *Mock) Logout() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.logoutWasCalled = true
	m.logouts++
	m.redirect()
	m.tracef("Called Mock.Logout() (%d)", m.logouts)
	return nil
}

func (m *Mock) redirect() {
	m.redirectWasCalled = true
}

// Verify returns true once Logout has been called and has redirected, and the number of logouts meets Expect
func (m *Mock) Verify() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.logoutWasCalled && m.redirectWasCalled && m.expect.Met(m.logouts)
}

// Attempts returns the (unexpected) calls to Attempt recorded so far
func (m *Mock) Attempts() RecordedCalls {
	return m.attempts.snapshot()
}

func (m *Mock) String() string {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return fmt.Sprintf("Mock(logout=%t, redirect=%t) expected logout %v, found %d",
		m.logoutWasCalled, m.redirectWasCalled, m.expect, m.logouts)
}
