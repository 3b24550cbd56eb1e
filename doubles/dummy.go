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
	"github.com/pkg/errors"
)

// ErrUnexpectedInvocation is returned by a Dummy whenever it is used
var ErrUnexpectedInvocation = errors.New("unexpected invocation")

var _ authn.Authenticator = Dummy{}

// Dummy is an Authenticator that must never be exercised.
//
// Every method returns an error wrapping ErrUnexpectedInvocation, so a test that substitutes a Dummy proves the code
// path under test does not touch the collaborator.
type Dummy struct{}

// NewDummy returns a Dummy
func NewDummy() Dummy {
	return Dummy{}
}

func (Dummy) Attempt(username, password string) (bool, error) {
	return false, errors.Wrapf(ErrUnexpectedInvocation, "Dummy.Attempt(%v)", Credentials{username, password})
}

func (Dummy) Logout() error {
	return errors.Wrap(ErrUnexpectedInvocation, "Dummy.Logout()")
}
