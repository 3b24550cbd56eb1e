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
	"sync"

	"github.com/lwoggardner/authdoubles/authn"
)

var _ authn.Authenticator = (*Stub)(nil)

// Stub is an Authenticator that answers every Attempt with a canned result, whatever the credentials.
// It keeps no call history.
type Stub struct {
	settings
	mutex   sync.Mutex
	results []bool
}

// NewStub returns a Stub that accepts every attempt
func NewStub(opts ...Option) *Stub {
	return &Stub{settings: newSettings(opts)}
}

/*
Returning sets the canned results for subsequent attempts.

Results are handed out in order and the last one repeats indefinitely. With no results the Stub reverts to
accepting every attempt.
*/
func (s *Stub) Returning(results ...bool) *Stub {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.results = append([]bool(nil), results...)
	return s
}

func (s *Stub) next() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if len(s.results) == 0 {
		return true
	}
	result := s.results[0]
	if len(s.results) > 1 {
		s.results = s.results[1:]
	}
	return result
}

func (s *Stub) Attempt(username, password string) (bool, error) {
	ok := s.next()
	s.tracef("Called Stub.Attempt(%v) => %t", Credentials{username, password}, ok)
	return ok, nil
}

func (s *Stub) Logout() error {
	s.tracef("Called Stub.Logout()")
	return nil
}
