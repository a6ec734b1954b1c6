// Copyright 2023 Ross Light
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

// Package spec loads the package's conformance fixtures, a curated
// subset of the CommonMark and GFM-table example corpora, for use by the
// package's own test suite. Grounded on the teacher's internal/spec
// package, including its go:embed-based loading of a JSON fixture file.
package spec

import (
	"embed"
	"encoding/json"
)

//go:embed spec-subset.json
var specFS embed.FS

// Example is a single conformance fixture: a Markdown input, its expected
// HTML rendering, and the section of the specification it illustrates.
type Example struct {
	Markdown  string `json:"markdown"`
	HTML      string `json:"html"`
	Example   int    `json:"example"`
	StartLine int    `json:"start_line"`
	EndLine   int    `json:"end_line"`
	Section   string `json:"section"`
}

// Load returns the package's curated conformance fixtures.
func Load() ([]Example, error) {
	data, err := specFS.ReadFile("spec-subset.json")
	if err != nil {
		return nil, err
	}
	var examples []Example
	if err := json.Unmarshal(data, &examples); err != nil {
		return nil, err
	}
	return examples, nil
}
