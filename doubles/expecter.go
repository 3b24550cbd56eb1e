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
	"github.com/stretchr/testify/mock"
)

var _ authn.Authenticator = (*Expecter)(nil)

/*
Expecter is an Authenticator built on testify's mock package, for tests that prefer declaring expectations
with On() and checking them with AssertExpectations().

	e := &doubles.Expecter{}
	e.On("Attempt", "foo", "bar").Return(true, nil).Once()
	e.On("Logout").Return(nil)
	...
	e.AssertExpectations(t)
*/
type Expecter struct {
	mock.Mock
}

func (e *Expecter) Attempt(username, password string) (bool, error) {
	args := e.Called(username, password)
	return args.Bool(0), args.Error(1)
}

func (e *Expecter) Logout() error {
	args := e.Called()
	return args.Error(0)
}
