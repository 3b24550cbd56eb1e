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

package authn

import (
	"log/slog"
)

// Option configures a System
type Option func(*System)

// WithLogger sets the logger used to report delegated calls. The default is slog.Default()
func WithLogger(logger *slog.Logger) Option {
	return func(s *System) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// System is the system under test. It owns exactly one Authenticator for its lifetime.
type System struct {
	authenticator Authenticator
	activeUsers   int
	logger        *slog.Logger
}

// NewSystem returns a System delegating to authenticator
func NewSystem(authenticator Authenticator, opts ...Option) *System {
	s := &System{
		authenticator: authenticator,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ActiveUsers returns the number of active users.
//
// Nothing in System increments the counter, so it is always 0. Reading it never touches the Authenticator.
func (s *System) ActiveUsers() int {
	return s.activeUsers
}

// Login delegates to Authenticator.Attempt and returns its results untouched, including any error.
func (s *System) Login(username, password string) (bool, error) {
	ok, err := s.authenticator.Attempt(username, password)
	if err != nil {
		s.logger.Debug("login failed", "username", username, "err", err.Error())
		return ok, err
	}
	s.logger.Debug("login attempted", "username", username, "ok", ok)
	return ok, nil
}

// Logout delegates to Authenticator.Logout and returns its error untouched.
func (s *System) Logout() error {
	if err := s.authenticator.Logout(); err != nil {
		s.logger.Debug("logout failed", "err", err.Error())
		return err
	}
	s.logger.Debug("logout")
	return nil
}
