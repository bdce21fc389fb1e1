// Copyright 2026 Google LLC. All Rights Reserved.
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

// The flattree binary prints flat-tree index relationships.
//
// It describes a single node, given by flat index or by depth and offset, or
// lists the roots of the perfect subtrees covering a range of leaves:
//
//	flattree --index=23
//	flattree --depth=3 --offset=1
//	flattree --leaves=5
//	flattree --begin=1 --end=17
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/google/flattree/cmd"
	"github.com/google/flattree/merkle/flat"
	"k8s.io/klog/v2"
)

var (
	configFile = flag.String("config", "", "Config file containing flags, file contents can be overridden by command line flags")

	index  optionalUint64
	depth  optionalUint64
	offset optionalUint64
	leaves optionalUint64
	begin  optionalUint64
	end    optionalUint64
)

func init() {
	flag.Var(&index, "index", "Flat index of the node to describe")
	flag.Var(&depth, "depth", "Depth of the node to describe, used with --offset")
	flag.Var(&offset, "offset", "Offset of the node to describe, used with --depth")
	flag.Var(&leaves, "leaves", "Number of leaves whose full roots to list")
	flag.Var(&begin, "begin", "First leaf of the range whose roots to list, used with --end (default 0)")
	flag.Var(&end, "end", "End of the leaf range whose roots to list, exclusive")
}

// optionalUint64 is a uint64 flag that remembers whether it was given. Setting
// it to the empty string clears it.
type optionalUint64 struct {
	v  uint64
	ok bool
}

func (o *optionalUint64) String() string {
	if !o.ok {
		return ""
	}
	return strconv.FormatUint(o.v, 10)
}

func (o *optionalUint64) Set(s string) error {
	if s == "" {
		*o = optionalUint64{}
		return nil
	}
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return err
	}
	*o = optionalUint64{v: v, ok: true}
	return nil
}

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	if *configFile != "" {
		if err := cmd.ParseFlagFile(*configFile); err != nil {
			klog.Exitf("Failed to load flags from config file %q: %s", *configFile, err)
		}
	}

	if err := run(os.Stdout); err != nil {
		klog.Exitf("flattree: %v", err)
	}
}

var errMode = errors.New("exactly one of --index, --depth/--offset, --leaves or --begin/--end must be given")

// run executes the mode selected by the flags and writes the result to w.
func run(w io.Writer) error {
	byIndex, byCoord, byLeaves, byRange := index.ok, depth.ok || offset.ok, leaves.ok, begin.ok || end.ok
	modes := 0
	for _, m := range []bool{byIndex, byCoord, byLeaves, byRange} {
		if m {
			modes++
		}
	}
	if modes != 1 {
		return errMode
	}

	switch {
	case byIndex:
		klog.V(1).Infof("Describing node %d", index.v)
		return describe(w, index.v)

	case byCoord:
		if !depth.ok || !offset.ok {
			return errors.New("--depth and --offset must be given together")
		}
		if depth.v > flat.MaxDepth {
			return fmt.Errorf("--depth=%d exceeds %d", depth.v, flat.MaxDepth)
		}
		c := flat.Coord{Depth: uint(depth.v), Offset: offset.v}
		i, err := c.Index()
		if err != nil {
			return err
		}
		klog.V(1).Infof("Describing node %v at index %d", c, i)
		return describe(w, i)

	case byLeaves:
		if leaves.v > flat.MaxLeaves {
			return fmt.Errorf("--leaves=%d exceeds %d", leaves.v, flat.MaxLeaves)
		}
		klog.V(1).Infof("Listing full roots of %d leaves", leaves.v)
		return listRoots(w, flat.FullRoots(leaves.v))

	default:
		if !end.ok {
			return errors.New("--end must be given with --begin")
		}
		roots, err := flat.RangeRoots(begin.v, end.v)
		if err != nil {
			return err
		}
		klog.V(1).Infof("Listing roots of leaves [%d, %d)", begin.v, end.v)
		return listRoots(w, roots)
	}
}

// describe writes the coordinate and relatives of node i. Relatives that do
// not fit in a uint64 are left out.
func describe(w io.Writer, i uint64) error {
	c := flat.CoordOf(i)
	p := &printer{w: w}
	p.printf("index: %d\n", i)
	p.printf("coord: %v\n", c)
	if c.Depth < flat.MaxDepth {
		p.printf("parent: %d\n", flat.Parent(i))
	}
	if c.Depth < flat.MaxDepth-1 {
		p.printf("sibling: %d\n", flat.Sibling(i))
	}
	if c.Depth < flat.MaxDepth-2 {
		p.printf("uncle: %d\n", flat.Uncle(i))
	}
	switch left, right, err := flat.Children(i); {
	case errors.Is(err, flat.ErrLeafHasNoChildren):
		p.printf("children: leaf\n")
	case err != nil:
		p.printf("children: %v\n", err)
	default:
		p.printf("children: %d %d\n", left, right)
	}
	if c.Depth < flat.MaxDepth {
		left, right := flat.Spans(i)
		p.printf("span: %d %d\n", left, right)
		p.printf("count: %d\n", flat.Count(i))
		p.printf("leaves: %d\n", flat.CountLeaves(i))
	}
	return p.err
}

// listRoots writes one line per root: its index, coordinate and leaf span.
func listRoots(w io.Writer, roots []uint64) error {
	p := &printer{w: w}
	for _, root := range roots {
		left, right := flat.Spans(root)
		p.printf("%d %v span=[%d %d]\n", root, flat.CoordOf(root), left, right)
	}
	return p.err
}

// printer remembers the first write error so that callers check it once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err == nil {
		_, p.err = fmt.Fprintf(p.w, format, args...)
	}
}
