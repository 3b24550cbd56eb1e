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

/*
Package authn holds the Authenticator capability set and System, a small system under test that delegates
login and logout to an injected Authenticator.

System is deliberately thin. It exists so that the test doubles in package doubles have something to be
substituted into:

	sys := authn.NewSystem(doubles.NewSpy())
	ok, err := sys.Login("foo", "bar")
*/
package authn

// Authenticator is the collaborator System depends on.
//
// Attempt reports whether the credentials are accepted. A non nil error means the authenticator could not (or
// must not) answer, which is distinct from rejecting the credentials.
type Authenticator interface {
	Attempt(username, password string) (bool, error)
	Logout() error
}
