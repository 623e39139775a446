// Copyright (c) 2025 BVK Chaitanya

// Package envfile loads KEY=VALUE lines from an environment file into the
// process environment.
package envfile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

type options struct {
	variableNamePrefix string

	searchCurrentDirectory bool

	scanParentDirectories bool

	overwriteIfExists bool
}

// Parse reads variable assignments from the input. Empty lines and lines
// starting with '#' are skipped. Values are taken literally; no quote removal
// or shell expansion is performed.
func Parse(r io.Reader) (map[string]string, error) {
	vars := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for i := 1; scanner.Scan(); i++ {
		line := string(bytes.TrimSpace(scanner.Bytes()))
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("invalid/unrecognized variable assignment on line %d: %w", i, os.ErrInvalid)
		}
		key = strings.TrimSpace(key)
		if !nameRe.MatchString(key) {
			return nil, fmt.Errorf("invalid environment variable name %q on line %d: %w", key, i, os.ErrInvalid)
		}
		vars[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return vars, nil
}

func searchPaths(filename string, fopts *options) ([]string, error) {
	var fpaths []string
	if fopts.searchCurrentDirectory {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		fpaths = []string{filepath.Join(cwd, filename)}
		if fopts.scanParentDirectories {
			last, dir := cwd, filepath.Dir(cwd)
			for dir != last {
				fpaths = append(fpaths, filepath.Join(dir, filename))
				last, dir = dir, filepath.Dir(dir)
			}
		}
		return fpaths, nil
	}
	user, err := user.Current()
	if err != nil {
		return nil, err
	}
	if len(user.HomeDir) == 0 {
		return nil, fmt.Errorf("could not determine current user's home directory")
	}
	return []string{filepath.Join(user.HomeDir, filename)}, nil
}

// UpdateEnv updates current process's environment with the values read from
// the first env file found in the search path. By default only the user's home
// directory is searched. It returns the path of the file that was loaded, or
// an empty string when no file was found.
func UpdateEnv(filename string, opts ...Option) (string, error) {
	if strings.ContainsRune(filename, os.PathSeparator) {
		return "", fmt.Errorf("file name contains path separator: %w", os.ErrInvalid)
	}
	var fopts options
	for _, v := range opts {
		if err := v.apply(&fopts); err != nil {
			return "", err
		}
	}
	fpaths, err := searchPaths(filename, &fopts)
	if err != nil {
		return "", err
	}
	for _, fpath := range fpaths {
		data, err := os.ReadFile(fpath)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return "", err
			}
			continue
		}
		vars, err := Parse(bytes.NewReader(data))
		if err != nil {
			return "", fmt.Errorf("could not parse env file %q: %w", fpath, err)
		}
		for key, value := range vars {
			key = fopts.variableNamePrefix + key
			if len(os.Getenv(key)) != 0 && !fopts.overwriteIfExists {
				continue
			}
			if err := os.Setenv(key, value); err != nil {
				return "", err
			}
		}
		return fpath, nil
	}
	return "", nil
}
