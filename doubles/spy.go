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
	"github.com/lwoggardner/authdoubles/authn"
)

var _ authn.Authenticator = (*Spy)(nil)

// Spy is an Authenticator that records every call for verification after the system under test has been exercised.
//
// Attempts are answered as per a Stub, accepting every attempt unless configured with Returning.
type Spy struct {
	settings
	stub     *Stub
	attempts *recorder
	logouts  *recorder
}

// NewSpy returns a Spy with no recorded calls
func NewSpy(opts ...Option) *Spy {
	return &Spy{
		settings: newSettings(opts),
		stub:     NewStub(),
		attempts: newRecorder("Spy.Attempt"),
		logouts:  newRecorder("Spy.Logout"),
	}
}

// Returning sets the results for subsequent attempts, see Stub.Returning
func (s *Spy) Returning(results ...bool) *Spy {
	s.stub.Returning(results...)
	return s
}

func (s *Spy) Attempt(username, password string) (bool, error) {
	creds := Credentials{username, password}
	s.attempts.record(creds)
	ok := s.stub.next()
	s.tracef("Called Spy.Attempt(%v) => %t", creds, ok)
	return ok, nil
}

func (s *Spy) Logout() error {
	s.logouts.record(Credentials{})
	s.tracef("Called Spy.Logout()")
	return nil
}

// AttemptWasCalled is false until the first call to Attempt, and true thereafter
func (s *Spy) AttemptWasCalled() bool {
	return s.attempts.numCalls() > 0
}

// Attempts returns the calls to Attempt recorded so far
func (s *Spy) Attempts() RecordedCalls {
	return s.attempts.snapshot()
}

// Logouts returns the calls to Logout recorded so far. Their Credentials are always empty.
func (s *Spy) Logouts() RecordedCalls {
	return s.logouts.snapshot()
}
