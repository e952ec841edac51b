// Copyright 2024 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"zombiezen.com/go/kramdown"
	"zombiezen.com/go/kramdown/internal/examples"
)

func TestExamples(t *testing.T) {
	exs, err := examples.Load()
	if err != nil {
		t.Fatal(err)
	}
	for _, ex := range exs {
		t.Run(ex.Name, func(t *testing.T) {
			got := new(strings.Builder)
			if err := Tree(got, kramdown.Parse([]byte(ex.Markdown))); err != nil {
				t.Error("Tree:", err)
			}
			if diff := cmp.Diff(ex.Tree, got.String()); diff != "" {
				t.Errorf("Input:\n%s\nOutput (-want +got):\n%s", ex.Markdown, diff)
			}
		})
	}
}

func FuzzTree(f *testing.F) {
	exs, err := examples.Load()
	if err != nil {
		f.Fatal(err)
	}
	for _, ex := range exs {
		f.Add(ex.Markdown)
	}

	f.Fuzz(func(t *testing.T, markdown string) {
		first := new(strings.Builder)
		if err := Tree(first, kramdown.Parse([]byte(markdown))); err != nil {
			t.Fatal(err)
		}
		second := new(strings.Builder)
		if err := Tree(second, kramdown.Parse([]byte(markdown))); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(first.String(), second.String()); diff != "" {
			t.Errorf("Parse not deterministic (-first +second):\n%s", diff)
		}
	})
}

func TestTreeWriteError(t *testing.T) {
	errBroken := errors.New("broken pipe")
	w := &failWriter{n: 2, err: errBroken}
	err := Tree(w, kramdown.Parse([]byte("- a\n- b\n")))
	if !errors.Is(err, errBroken) {
		t.Errorf("Tree(...) = %v; want %v", err, errBroken)
	}
	if w.calls > w.n+1 {
		t.Errorf("Tree wrote %d times after first error", w.calls-w.n-1)
	}
}

// failWriter fails every write after the first n.
type failWriter struct {
	n     int
	err   error
	calls int
}

func (w *failWriter) Write(p []byte) (int, error) {
	w.calls++
	if w.calls > w.n {
		return 0, w.err
	}
	return len(p), nil
}
