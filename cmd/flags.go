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

// Package cmd contains helpers shared by the flattree binaries.
package cmd

import (
	"errors"
	"flag"
	"os"

	"bitbucket.org/creachadair/shell"
)

// ParseFlagFile parses a set of flags from a file at the provided path, then
// re-parses the command line so that flags given there take precedence over
// flags given in the file.
func ParseFlagFile(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return parseFlags(string(file))
}

func parseFlags(file string) error {
	args, valid := shell.Split(file)
	if !valid {
		return errors.New("flag file contains unclosed quotations")
	}
	// Environment variables are expanded within each argument, so a value
	// containing spaces stays a single argument.
	for i, arg := range args {
		args[i] = os.ExpandEnv(arg)
	}
	if err := flag.CommandLine.Parse(args); err != nil {
		return err
	}
	flag.Parse()
	return nil
}
