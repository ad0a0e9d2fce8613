package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/citrusframework/citrus-go/validate/ir"
	"github.com/citrusframework/citrus-go/validate/parse"

	"github.com/google/go-cmp/cmp"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestValidateFiles(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"good.yaml": "id: 7\nname: box\n",
		"bad.yaml":  "id: 8\nname: box\n",
	})
	cfg := &ValidateConfig{MainConfig: &MainConfig{}}
	v, err := cfg.validator(nil)
	if err != nil {
		t.Fatal(err)
	}
	out := &bytes.Buffer{}
	good, bad := filepath.Join(dir, "good.yaml"), filepath.Join(dir, "bad.yaml")
	failed, err := validateFiles(cfg, v, nil, out, []byte("id: 7\nname: '@ignore@'\n"), []string{good, bad})
	if err != nil {
		t.Fatal(err)
	}
	if !failed {
		t.Errorf("expected a failure")
	}
	lines := strings.Split(out.String(), "\n")
	if lines[0] != "ok   "+good {
		t.Errorf("first line %q", lines[0])
	}
	if lines[1] != "FAIL "+bad {
		t.Errorf("second line %q", lines[1])
	}
	if !strings.Contains(lines[2], "value mismatch at $.id: expected '7' but was '8'") {
		t.Errorf("third line %q", lines[2])
	}
}

func TestValidateFilesStdin(t *testing.T) {
	cfg := &ValidateConfig{MainConfig: &MainConfig{J: true}, Quiet: true}
	v, err := cfg.validator(nil)
	if err != nil {
		t.Fatal(err)
	}
	out := &bytes.Buffer{}
	in := strings.NewReader(`{"items": [2, 1]}`)
	failed, err := validateFiles(cfg, v, in, out, []byte(`{"items": [1, 2]}`), []string{"-"})
	if err != nil {
		t.Fatal(err)
	}
	if failed || out.Len() != 0 {
		t.Errorf("failed=%t output %q", failed, out.String())
	}
}

func TestValidateFilesMalformed(t *testing.T) {
	dir := writeFiles(t, map[string]string{"broken.yaml": "a: [1, 2\n"})
	cfg := &ValidateConfig{MainConfig: &MainConfig{}}
	v, err := cfg.validator(nil)
	if err != nil {
		t.Fatal(err)
	}
	out := &bytes.Buffer{}
	failed, err := validateFiles(cfg, v, nil, out, []byte("a: [1, 2]\n"), []string{filepath.Join(dir, "broken.yaml")})
	if err == nil {
		t.Fatalf("expected an error")
	}
	if failed {
		t.Errorf("malformed input reported as a validation failure")
	}
	if !strings.HasPrefix(out.String(), "ERR ") {
		t.Errorf("output %q", out.String())
	}
}

func TestValidatorProfileAndPatch(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"profile.yaml": "strict: true\nignore:\n  - $.stamp\n",
		"patch.json":   `[{"op": "replace", "path": "/status", "value": "DONE"}]`,
	})
	cfg := &ValidateConfig{
		MainConfig: &MainConfig{},
		Profile:    filepath.Join(dir, "profile.yaml"),
		Patch:      filepath.Join(dir, "patch.json"),
		Ignore:     []string{"$.id"},
	}
	v, err := cfg.validator(nil)
	if err != nil {
		t.Fatal(err)
	}
	expected := []byte("id: 1\nstamp: 0\nstatus: NEW\n")
	if err := v.ValidateText([]byte("id: 2\nstamp: 99\nstatus: DONE\n"), expected); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := v.ValidateText([]byte("id: 2\nstamp: 99\nstatus: DONE\nextra: x\n"), expected); err == nil {
		t.Errorf("profile strictness was not applied")
	}
}

func TestStdinTwice(t *testing.T) {
	for _, tc := range []struct {
		args  []string
		patch string
		want  bool
	}{
		{[]string{"exp.yaml", "a.yaml"}, "", false},
		{[]string{"-", "a.yaml"}, "", false},
		{[]string{"exp.yaml", "-", "-"}, "", true},
		{[]string{"-", "a.yaml", "-"}, "", true},
		{[]string{"exp.yaml", "-"}, "-", true},
		{[]string{"exp.yaml", "a.yaml"}, "-", false},
	} {
		if got := stdinTwice(tc.args, tc.patch); got != tc.want {
			t.Errorf("stdinTwice(%v, %q) = %t, want %t", tc.args, tc.patch, got, tc.want)
		}
	}
}

func TestValidatorBadIgnore(t *testing.T) {
	cfg := &ValidateConfig{MainConfig: &MainConfig{}, Ignore: []string{"items"}}
	if _, err := cfg.validator(nil); err == nil {
		t.Errorf("expected an error for a path without '$'")
	}
}

func TestWritePaths(t *testing.T) {
	docs, err := parse.ParseString("a:\n  b: [1, x]\nc: null\n")
	if err != nil {
		t.Fatal(err)
	}
	out := &bytes.Buffer{}
	if err := writePaths(out, docs, nil); err != nil {
		t.Fatal(err)
	}
	want := "$\n$.a\n$.a.b\n$.a.b[0]: 1\n$.a.b[1]: x\n$.c: null\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("paths (-want +got):\n%s", diff)
	}

	p, err := ir.ParsePath("$..b[*]")
	if err != nil {
		t.Fatal(err)
	}
	out.Reset()
	if err := writePaths(out, docs, p); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("$.a.b[0]: 1\n$.a.b[1]: x\n", out.String()); diff != "" {
		t.Errorf("selected paths (-want +got):\n%s", diff)
	}
}
