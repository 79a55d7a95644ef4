// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// MakeAbsolute - rewrite each path in place relative to directory
func MakeAbsolute(directory string, paths ...*string) {
	for _, p := range paths {
		*p = EnsureAbsolute(directory, *p)
	}
}

// PlainName - join a simple file name onto a directory
//
// fails if name contains any directory component
func PlainName(directory string, name string) (string, error) {
	switch filepath.Dir(name) {
	case "", ".":
		return EnsureAbsolute(directory, name), nil
	default:
		return "", fmt.Errorf("file: %q is not plain name", name)
	}
}

// EnsureDirectory - check that path exists and is a directory
func EnsureDirectory(path string) error {
	fileInfo, err := os.Stat(path)
	if nil != err {
		return err
	}
	if !fileInfo.IsDir() {
		return fmt.Errorf("path: %q is not a directory", path)
	}
	return nil
}
