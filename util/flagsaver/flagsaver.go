// Copyright 2017 Google Inc. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package flagsaver saves and restores global flag values in tests.
//
// Example:
//
//	func TestFoo(t *testing.T) {
//	  defer flagsaver.Save().MustRestore()
//	  flagsaver.Set(t, "leaves", "5")
//	} // flags are reset to their original values here.
package flagsaver

import (
	"flag"
	"strings"
	"testing"

	"k8s.io/klog/v2"
)

// Stash holds flag values so that they can be restored at the end of a test.
type Stash struct {
	flags map[string]string
}

// Save returns a Stash that captures the current value of all flags other
// than those owned by the go test runner. log_backtrace_at is skipped too: its
// empty value cannot be set back.
func Save() *Stash {
	s := Stash{flags: make(map[string]string)}
	flag.VisitAll(func(f *flag.Flag) {
		if !strings.HasPrefix(f.Name, "test.") && f.Name != "log_backtrace_at" {
			s.flags[f.Name] = f.Value.String()
		}
	})
	return &s
}

// Restore sets all saved flags to the values they had when the Stash was
// created.
func (s *Stash) Restore() error {
	for name, value := range s.flags {
		if err := flag.Set(name, value); err != nil {
			return err
		}
	}
	return nil
}

// MustRestore calls Restore and exits on failure, since later tests would
// otherwise run with flags in an arbitrary state.
func (s *Stash) MustRestore() {
	if err := s.Restore(); err != nil {
		klog.Fatalf("MustRestore(): failed to restore flags: %v", err)
	}
}

// Set sets a global flag and fails the test if that is not possible.
func Set(t testing.TB, name, value string) {
	t.Helper()
	if err := flag.Set(name, value); err != nil {
		t.Fatalf("flag.Set(%q, %q): %v", name, value, err)
	}
}
