// Marquee - Emotion-Aware Actor Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package evaluation

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Judgment is one query with its relevant actor ids.
type Judgment struct {
	Query    string  `yaml:"query"`
	Mode     string  `yaml:"mode,omitempty"`
	TopK     *int    `yaml:"top_k,omitempty"`
	Relevant []int64 `yaml:"relevant"`
}

type judgmentFile struct {
	Queries []Judgment `yaml:"queries"`
}

// LoadJudgments reads a YAML judgment file.
func LoadJudgments(path string) ([]Judgment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read judgments: %w", err)
	}
	return ParseJudgments(data)
}

// ParseJudgments decodes judgments. Every entry needs a non-blank query.
func ParseJudgments(data []byte) ([]Judgment, error) {
	var f judgmentFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse judgments: %w", err)
	}
	for i, j := range f.Queries {
		if strings.TrimSpace(j.Query) == "" {
			return nil, fmt.Errorf("judgment %d: query is empty", i+1)
		}
	}
	return f.Queries, nil
}
