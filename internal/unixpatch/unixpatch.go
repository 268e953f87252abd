// Copyright 2025 Florian Zenker (flo@znkr.io)
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

// Package unixpatch applies unified diffs with the unix patch tool.
//
// This package is only for testing: it validates that rendered patches are accepted by their
// canonical consumer.
package unixpatch

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Apply applies the unified diff to orig by running patch(1) and returns the patched result.
func Apply(orig, diff string) (string, error) {
	// patch will not create an output file for an empty diff.
	if len(diff) == 0 {
		return orig, nil
	}

	dir, err := os.MkdirTemp("", "unixpatch-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary directory: %v", err)
	}
	defer os.RemoveAll(dir)

	origfile := filepath.Join(dir, "orig")
	difffile := filepath.Join(dir, "diff")
	outfile := filepath.Join(dir, "out")
	if err := os.WriteFile(origfile, []byte(orig), 0o644); err != nil {
		return "", fmt.Errorf("failed to write orig file: %v", err)
	}
	if err := os.WriteFile(difffile, []byte(diff), 0o644); err != nil {
		return "", fmt.Errorf("failed to write diff file: %v", err)
	}

	cmd := exec.Command("patch", "-u", "-i", difffile, "-o", outfile, origfile)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("failed to run patch command: %s: %v\n%s", strings.Join(cmd.Args, " "), err, out)
	}

	out, err := os.ReadFile(outfile)
	if err != nil {
		return "", fmt.Errorf("failed to read outfile: %v", err)
	}
	return string(out), nil
}
