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
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDummy_AlwaysFails(t *testing.T) {
	d := NewDummy()

	for _, creds := range []Credentials{{"foo", "bar"}, {"", ""}, {"nope", "anything"}} {
		ok, err := d.Attempt(creds.Username, creds.Password)
		assert.False(t, ok)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnexpectedInvocation), "expected %v to wrap ErrUnexpectedInvocation", err)
	}

	err := d.Logout()
	assert.ErrorIs(t, err, ErrUnexpectedInvocation)
	assert.Equal(t, "Dummy.Logout(): unexpected invocation", err.Error())
}

func TestDummy_ErrorDoesNotLeakPassword(t *testing.T) {
	_, err := NewDummy().Attempt("foo", "s3cret")
	require.Error(t, err)
	assert.Equal(t, "Dummy.Attempt(foo, ***): unexpected invocation", err.Error())
	assert.False(t, strings.Contains(err.Error(), "s3cret"))
}

func TestStub_AcceptsAnything(t *testing.T) {
	s := NewStub()

	for _, creds := range []Credentials{{"foo", "bar"}, {"", ""}, {"nope", "anything"}} {
		ok, err := s.Attempt(creds.Username, creds.Password)
		assert.True(t, ok)
		assert.NoError(t, err)
	}
	assert.NoError(t, s.Logout())
}

func TestStub_Returning(t *testing.T) {
	s := NewStub().Returning(true, false)

	var got []bool
	for i := 0; i < 4; i++ {
		ok, err := s.Attempt("foo", "bar")
		require.NoError(t, err)
		got = append(got, ok)
	}
	assert.Equal(t, []bool{true, false, false, false}, got)

	s.Returning()
	ok, _ := s.Attempt("foo", "bar")
	assert.True(t, ok, "expected Returning() to revert to accepting")
}

func TestSpy_RecordsAttempt(t *testing.T) {
	s := NewSpy()
	assert.False(t, s.AttemptWasCalled())

	ok, err := s.Attempt("foo", "bar")
	assert.True(t, ok)
	assert.NoError(t, err)
	assert.True(t, s.AttemptWasCalled())

	assert.NoError(t, s.Logout())
	assert.True(t, s.AttemptWasCalled(), "flags never reset")
	assert.Equal(t, 1, s.Logouts().NumCalls())
}

func TestSpy_Returning(t *testing.T) {
	s := NewSpy().Returning(false)

	ok, err := s.Attempt("foo", "bar")
	assert.False(t, ok)
	assert.NoError(t, err)
	assert.True(t, s.AttemptWasCalled())
}

func TestMock_Verify(t *testing.T) {
	m := NewMock()
	assert.False(t, m.Verify())

	assert.NoError(t, m.Logout())
	assert.True(t, m.Verify())

	assert.NoError(t, m.Logout())
	assert.True(t, m.Verify(), "flags never reset")
}

func TestMock_Expect(t *testing.T) {
	m := NewMock().Expect(Once())

	_ = m.Logout()
	assert.True(t, m.Verify())
	_ = m.Logout()
	assert.False(t, m.Verify())
	assert.Equal(t, "Mock(logout=true, redirect=true) expected logout once, found 2", m.String())
}

func TestMock_ExpectNilRestoresDefault(t *testing.T) {
	m := NewMock().Expect(Never()).Expect(nil)

	_ = m.Logout()
	_ = m.Logout()
	assert.True(t, m.Verify())
}

func TestMock_AttemptIsUnexpected(t *testing.T) {
	m := NewMock()

	ok, err := m.Attempt("foo", "bar")
	assert.False(t, ok)
	assert.NoError(t, err)
	assert.False(t, m.Verify())

	rt := newRecordingT(t)
	assert.False(t, m.Attempts().Expect(rt, Never()))
	assert.True(t, matchesAny(`all calls to Mock.Attempt expected never, found 1 calls`, rt.errors))
}

func TestAssertVerified(t *testing.T) {
	verified, unverified := NewMock(), NewMock()
	_ = verified.Logout()

	rt := newRecordingT(t)
	assert.False(t, AssertVerified(rt, verified, unverified))
	require.Len(t, rt.errors, 1)
	assert.Equal(t, "Mock(logout=false, redirect=false) expected logout at least 1, found 0 was not verified", rt.errors[0])

	assert.True(t, AssertVerified(t, verified))
}

func TestFake_Attempt(t *testing.T) {
	f := NewFake()

	tests := []struct {
		username, password string
		expected           bool
	}{
		{"foo", "bar", true},
		{"foo", "wrong", false},
		{"nope", "anything", false},
		{"baz", "qux", true},
		{"baz", "bar", false},
		{"", "", false},
	}

	for _, test := range tests {
		ok, err := f.Attempt(test.username, test.password)
		assert.NoError(t, err)
		assert.Equal(t, test.expected, ok, "Attempt(%s, %s)", test.username, test.password)
	}
	assert.NoError(t, f.Logout())
}

func TestFake_CopiesTable(t *testing.T) {
	users := map[string]string{"alice": "wonderland"}
	f := NewFakeWith(users)
	users["alice"] = "changed"
	users["mallory"] = "sneaky"

	ok, _ := f.Attempt("alice", "wonderland")
	assert.True(t, ok)
	assert.False(t, f.Knows("mallory"))
}

func TestWithTrace(t *testing.T) {
	rt := newRecordingT(t)

	_, _ = NewStub(WithTrace(rt)).Attempt("foo", "s3cret")
	_, _ = NewSpy(WithTrace(rt)).Attempt("foo", "s3cret")
	_ = NewMock(WithTrace(rt)).Logout()
	_, _ = NewFake(WithTrace(rt)).Attempt("foo", "bar")

	assert.Equal(t, []string{
		"Called Stub.Attempt(foo, ***) => true",
		"Called Spy.Attempt(foo, ***) => true",
		"Called Mock.Logout() (1)",
		"Called Fake.Attempt(foo, ***) => true",
	}, rt.logs)
	assert.Empty(t, rt.errors)
}

func TestMock_ExpectZeroLogoutsNeverVerifies(t *testing.T) {
	for _, expect := range []Expectation{Never(), Exactly(0), AtMost(0)} {
		m := NewMock().Expect(expect)
		assert.False(t, m.Verify(), "before logout with %v", expect)

		_ = m.Logout()
		assert.False(t, m.Verify(), "after logout with %v", expect)
	}
}
