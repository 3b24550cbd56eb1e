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
Package doubles provides test doubles for authn.Authenticator.

Each double substitutes for a real Authenticator when exercising an authn.System. They differ in what they do when
called and in how a test verifies them.

See the canonical sources...

* http://xunitpatterns.com/Test%20Double.html

* https://martinfowler.com/articles/mocksArentStubs.html

A Dummy is never meant to be called. Any call returns an error wrapping ErrUnexpectedInvocation.

	func Test_Dummy(t *testing.T) {
		sys := authn.NewSystem(doubles.NewDummy())

		if sys.ActiveUsers() != 0 {
			t.Errorf("expected no active users")
		}
	}

A Stub supplies a canned answer, an indirect input to the system under test.

	func Test_Stub(t *testing.T) {
		sys := authn.NewSystem(doubles.NewStub().Returning(true, false))

		first, _ := sys.Login("foo", "bar")  // true
		second, _ := sys.Login("foo", "bar") // false
		third, _ := sys.Login("foo", "bar")  // false, the last result repeats
	}

A Spy records its calls, an indirect output, to be verified after exercising the system under test.

	func Test_Spy(t *testing.T) {
		spy := doubles.NewSpy()
		sys := authn.NewSystem(spy)

		sys.Login("foo", "bar")

		spy.Attempts().Expect(t, doubles.Once())
		spy.Attempts().Matching(doubles.Username("foo")).Expect(t, doubles.Once())
		spy.Logouts().After(spy.Attempts()).Expect(t, doubles.Never())
	}

A Mock carries its expected interactions and checks them itself with Verify.

	func Test_Mock(t *testing.T) {
		mock := doubles.NewMock().Expect(doubles.Once())
		defer doubles.AssertVerified(t, mock)

		authn.NewSystem(mock).Logout()
	}

A Fake is a lightweight working implementation, here an in-memory table of credentials.

	func Test_Fake(t *testing.T) {
		sys := authn.NewSystem(doubles.NewFakeWith(map[string]string{"foo": "bar"}))

		ok, _ := sys.Login("foo", "bar") // true
		ok, _ = sys.Login("foo", "baz")  // false
	}

All doubles accept WithTrace(t) to log each call they receive. Passwords are never logged.
*/
package doubles
