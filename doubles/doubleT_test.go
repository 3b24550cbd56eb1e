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
	"regexp"
	"testing"
)

// recordingT is a T that records failures instead of failing the enclosing test
type recordingT struct {
	t      *testing.T
	errors []string
	fatals []string
	logs   []string
}

func newRecordingT(t *testing.T) *recordingT {
	return &recordingT{t: t}
}

func (r *recordingT) Errorf(format string, args ...interface{}) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *recordingT) Fatalf(format string, args ...interface{}) {
	r.fatals = append(r.fatals, fmt.Sprintf(format, args...))
}

func (r *recordingT) Logf(format string, args ...interface{}) {
	r.logs = append(r.logs, fmt.Sprintf(format, args...))
}

func (r *recordingT) Helper() {
	r.t.Helper()
}

func matchesAny(re string, messages []string) bool {
	exp := regexp.MustCompile(re)
	for _, msg := range messages {
		if exp.MatchString(msg) {
			return true
		}
	}
	return false
}
