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
	"crypto/subtle"
	"io"

	"github.com/lwoggardner/authdoubles/authn"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var _ authn.Authenticator = (*Fake)(nil)

// Fake is a working Authenticator backed by an in-memory table of usernames to passwords.
// The table is fixed at construction.
type Fake struct {
	settings
	users map[string]string
}

// NewFake returns a Fake that knows users foo (password bar) and baz (password qux)
func NewFake(opts ...Option) *Fake {
	return NewFakeWith(map[string]string{
		"foo": "bar",
		"baz": "qux",
	}, opts...)
}

// NewFakeWith returns a Fake that knows a copy of users
func NewFakeWith(users map[string]string, opts ...Option) *Fake {
	f := &Fake{
		settings: newSettings(opts),
		users:    make(map[string]string, len(users)),
	}
	for username, password := range users {
		f.users[username] = password
	}
	return f
}

type credentialsFixture struct {
	Users map[string]string `yaml:"users"`
}

/*
LoadFake returns a Fake that knows the users listed in a YAML document read from r

	users:
	  foo: bar
	  baz: qux

An empty document yields a Fake that knows no one.
*/
func LoadFake(r io.Reader, opts ...Option) (*Fake, error) {
	var fixture credentialsFixture
	if err := yaml.NewDecoder(r).Decode(&fixture); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decoding fake credentials")
	}
	return NewFakeWith(fixture.Users, opts...), nil
}

// Attempt returns true only if username is known and password matches the stored password
func (f *Fake) Attempt(username, password string) (bool, error) {
	stored, known := f.users[username]
	ok := known && subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
	f.tracef("Called Fake.Attempt(%v) => %t", Credentials{username, password}, ok)
	return ok, nil
}

func (f *Fake) Logout() error {
	f.tracef("Called Fake.Logout()")
	return nil
}

// Knows reports whether username is in the table
func (f *Fake) Knows(username string) bool {
	_, known := f.users[username]
	return known
}
