// Copyright (c) 2025 BVK Chaitanya

package envfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `
# reference zone
ZONE=America/Chicago
FORMAT = json
EMPTY=
`
	vars, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(vars) != 3 {
		t.Fatalf("want 3 variables, got %v", vars)
	}
	if v := vars["ZONE"]; v != "America/Chicago" {
		t.Fatalf("want America/Chicago, got %q", v)
	}
	if v := vars["FORMAT"]; v != " json" {
		t.Fatalf("want value with the leading space, got %q", v)
	}
	if v, ok := vars["EMPTY"]; !ok || v != "" {
		t.Fatalf("want empty value, got %q", v)
	}

	for _, bad := range []string{"NOVALUE", "1ZONE=x", "ZO NE=x"} {
		if _, err := Parse(strings.NewReader(bad)); !errors.Is(err, os.ErrInvalid) {
			t.Fatalf("%q: want os.ErrInvalid, got %v", bad, err)
		}
	}
}

func TestUpdateEnv(t *testing.T) {
	dir := t.TempDir()
	child := filepath.Join(dir, "child")
	if err := os.Mkdir(child, 0700); err != nil {
		t.Fatal(err)
	}
	data := "ZONE=UTC\nFORMAT=json\n"
	if err := os.WriteFile(filepath.Join(dir, "test.env"), []byte(data), 0600); err != nil {
		t.Fatal(err)
	}
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(child); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)

	t.Setenv("ENVFILE_TEST_ZONE", "")
	t.Setenv("ENVFILE_TEST_FORMAT", "table")

	// File is only in the parent directory.
	fpath, err := UpdateEnv("test.env", SearchCurrentDir(false), VariableNamePrefix("ENVFILE_TEST_"))
	if err != nil {
		t.Fatal(err)
	}
	if len(fpath) != 0 {
		t.Fatalf("want no env file, got %q", fpath)
	}

	fpath, err = UpdateEnv("test.env", SearchCurrentDir(true), VariableNamePrefix("ENVFILE_TEST_"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(fpath, filepath.Join(filepath.Base(dir), "test.env")) {
		t.Fatalf("unexpected env file path %q", fpath)
	}
	if v := os.Getenv("ENVFILE_TEST_ZONE"); v != "UTC" {
		t.Fatalf("want UTC, got %q", v)
	}
	if v := os.Getenv("ENVFILE_TEST_FORMAT"); v != "table" {
		t.Fatalf("existing value must not be overwritten, got %q", v)
	}

	if _, err := UpdateEnv("test.env", SearchCurrentDir(true), VariableNamePrefix("ENVFILE_TEST_"), OverwriteIfExists(true)); err != nil {
		t.Fatal(err)
	}
	if v := os.Getenv("ENVFILE_TEST_FORMAT"); v != "json" {
		t.Fatalf("want overwritten value json, got %q", v)
	}

	if _, err := UpdateEnv("a/b.env"); !errors.Is(err, os.ErrInvalid) {
		t.Fatalf("want os.ErrInvalid for path separator, got %v", err)
	}
	if _, err := UpdateEnv("test.env", VariableNamePrefix("1bad")); !errors.Is(err, os.ErrInvalid) {
		t.Fatalf("want os.ErrInvalid for bad prefix, got %v", err)
	}
}
