// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/sigmfspec

package sigmfspec

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// fakeCall records one command invocation.
type fakeCall struct {
	Dir  string
	Name string
	Args []string
}

// fakeRunner records calls and returns scripted results per command name.
type fakeRunner struct {
	mu      sync.Mutex
	calls   []fakeCall
	stderr  map[string]string
	failing map[string]error
}

func (r *fakeRunner) Run(_ context.Context, dir, name string, args ...string) ([]byte, []byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, fakeCall{Dir: dir, Name: name, Args: append([]string(nil), args...)})
	return nil, []byte(r.stderr[name]), r.failing[name]
}

func TestEmitterCompileRunsTwiceAndToleratesFailure(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{
		stderr:  map[string]string{"pdflatex": "! Undefined control sequence."},
		failing: map[string]error{"pdflatex": errors.New("exit status 1")},
	}

	core, logs := observer.New(zap.WarnLevel)
	emitter := NewEmitter(zap.New(core))
	emitter.Runner = runner

	emitter.Compile(context.Background(), filepath.Join("out", "sigmf-spec.tex"))

	want := []fakeCall{
		{Dir: "out" + string(filepath.Separator), Name: "pdflatex", Args: []string{"--shell-escape", "-interaction=nonstopmode", "sigmf-spec.tex"}},
		{Dir: "out" + string(filepath.Separator), Name: "pdflatex", Args: []string{"--shell-escape", "-interaction=nonstopmode", "sigmf-spec.tex"}},
	}

	if diff := cmp.Diff(want, runner.calls); diff != "" {
		t.Fatalf("calls mismatch (-want +got):\n%s", diff)
	}

	if n := logs.FilterMessage("compiler failed").Len(); n != 2 {
		t.Fatalf("compiler warnings = %d, want 2", n)
	}
}

func TestEmitterConvertArguments(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{}
	emitter := NewEmitter(nil)
	emitter.Runner = runner

	if err := emitter.Convert(context.Background(), "sigmf-spec.tex", "sigmf-spec.html"); err != nil {
		t.Fatalf("Convert: %v", err)
	}

	want := []fakeCall{{
		Name: "pandoc",
		Args: []string{
			"sigmf-spec.tex", "-f", "latex", "-t", "html", "-s", "-o", "sigmf-spec.html",
			"--toc", "--toc-depth=3", "-c", DefaultStylesheetURL, "-c", "main.css",
		},
	}}

	if diff := cmp.Diff(want, runner.calls); diff != "" {
		t.Fatalf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestEmitterConvertFailsOnDiagnostics(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		runner *fakeRunner
		detail string
	}{
		{
			name:   "stderr only",
			runner: &fakeRunner{stderr: map[string]string{"pandoc": "[WARNING] Could not convert TeX math"}},
			detail: "Could not convert TeX math",
		},
		{
			name:   "exit status",
			runner: &fakeRunner{failing: map[string]error{"pandoc": errors.New("exit status 64")}},
			detail: "exit status 64",
		},
		{
			name: "both",
			runner: &fakeRunner{
				stderr:  map[string]string{"pandoc": "unknown option --tox"},
				failing: map[string]error{"pandoc": errors.New("exit status 2")},
			},
			detail: "unknown option --tox",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			emitter := NewEmitter(nil)
			emitter.Runner = tc.runner

			err := emitter.Convert(context.Background(), "a.tex", "a.html")
			if !errors.Is(err, ErrConvert) {
				t.Fatalf("expected ErrConvert, got: %v", err)
			}

			assertContains(t, err.Error(), tc.detail)
		})
	}
}

func TestEmitterWriteStylesheet(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "main.css")
	if err := NewEmitter(nil).WriteStylesheet(path); err != nil {
		t.Fatalf("WriteStylesheet: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read stylesheet: %v", err)
	}

	if string(data) != Stylesheet() {
		t.Fatal("stylesheet content mismatch")
	}

	err = NewEmitter(nil).WriteStylesheet(filepath.Join(t.TempDir(), "missing", "main.css"))
	if !errors.Is(err, ErrWriteArtifact) {
		t.Fatalf("expected ErrWriteArtifact, got: %v", err)
	}
}
