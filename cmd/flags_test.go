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

package cmd

import (
	"flag"
	"os"
	"testing"
)

func TestParseFlags(t *testing.T) {
	var a, b, c string
	flag.StringVar(&a, "a", "", "")
	flag.StringVar(&b, "b", "", "")
	flag.StringVar(&c, "c", "", "")

	flag.CommandLine.Init(os.Args[0], flag.ContinueOnError)

	tests := []struct {
		name        string
		contents    string
		env         map[string]string
		cliArgs     []string
		expectedErr string
		expectedA   string
		expectedB   string
		expectedC   string
	}{
		{
			name:      "two flags per line",
			contents:  "-a one -b two",
			expectedA: "one",
			expectedB: "two",
		},
		{
			name:      "one flag per line",
			contents:  "-a one\n-b two",
			expectedA: "one",
			expectedB: "two",
		},
		{
			name:      "one flag per line, with line continuation",
			contents:  "-a one \\\n-b two",
			expectedA: "one",
			expectedB: "two",
		},
		{
			name:      "one flag in file, one flag on command-line",
			contents:  "-a one",
			cliArgs:   []string{"-b", "two"},
			expectedA: "one",
			expectedB: "two",
		},
		{
			name:      "two flags, one overridden by command-line",
			contents:  "-a one\n-b two",
			cliArgs:   []string{"-b", "three"},
			expectedA: "one",
			expectedB: "three",
		},
		{
			name:      "two flags, one using an environment variable",
			contents:  "-a one\n-b $TEST_VAR",
			env:       map[string]string{"TEST_VAR": "from env"},
			expectedA: "one",
			expectedB: "from env",
		},
		{
			name:      "environment variable with spaces followed by another flag",
			contents:  "-a $TEST_VAR -b two\n-c three",
			env:       map[string]string{"TEST_VAR": "two words"},
			expectedA: "two words",
			expectedB: "two",
			expectedC: "three",
		},
		{
			name:      "quoted environment variable",
			contents:  "-a \"$TEST_VAR\" -b '$TEST_VAR'",
			env:       map[string]string{"TEST_VAR": "x y"},
			expectedA: "x y",
			expectedB: "x y",
		},
		{
			name:      "quoted value with spaces",
			contents:  "-a 'one two' -b \"three four\"",
			expectedA: "one two",
			expectedB: "three four",
		},
		{
			name:        "unclosed quotation",
			contents:    "-a 'one",
			expectedErr: "flag file contains unclosed quotations",
		},
		{
			name:        "three flags, one undefined",
			contents:    "-a one -b two -d three",
			expectedErr: "flag provided but not defined: -d",
		},
	}

	initialArgs := os.Args[:]
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, b, c = "", "", ""
			os.Args = append(initialArgs[:len(initialArgs):len(initialArgs)], tc.cliArgs...)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			err := parseFlags(tc.contents)
			if tc.expectedErr != "" {
				if err == nil || err.Error() != tc.expectedErr {
					t.Errorf("parseFlags() = %v, want %q", err, tc.expectedErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFlags() = %v", err)
			}

			if tc.expectedA != a {
				t.Errorf("flag 'a' not properly set: got %q, want %q", a, tc.expectedA)
			}
			if tc.expectedB != b {
				t.Errorf("flag 'b' not properly set: got %q, want %q", b, tc.expectedB)
			}
			if tc.expectedC != c {
				t.Errorf("flag 'c' not properly set: got %q, want %q", c, tc.expectedC)
			}
		})
	}
	os.Args = initialArgs
}
