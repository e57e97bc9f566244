/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package mapper

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"dirpx.dev/dresult/result"
	"gopkg.in/yaml.v3"
)

// Rules is the declarative form of mapper options, as loaded from YAML:
//
//	http:
//	  defaults:  { Error: 500 }
//	  overrides: { Conflict: 412 }
//	  prefixes:
//	    - { status: NotFound, prefix: Order, value: 410 }
//	grpc:
//	  prefixes:
//	    - { status: Unavailable, prefix: "Storage.*", value: 4 }
//
// Status names are the result.Status text forms.
type Rules struct {
	HTTP TransportRules `yaml:"http"`
	GRPC TransportRules `yaml:"grpc"`
}

// TransportRules holds the rules of one transport.
type TransportRules struct {
	Defaults  map[string]int `yaml:"defaults"`
	Overrides map[string]int `yaml:"overrides"`
	Prefixes  []PrefixRule   `yaml:"prefixes"`
}

// PrefixRule is one code-prefix rule.
type PrefixRule struct {
	Status string `yaml:"status"`
	Prefix string `yaml:"prefix"`
	Value  int    `yaml:"value"`
}

// ParseRules decodes a YAML rules document. Unknown fields are rejected and
// an empty document yields empty Rules.
func ParseRules(data []byte) (Rules, error) {
	var r Rules
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&r); err != nil {
		if errors.Is(err, io.EOF) {
			return Rules{}, nil
		}
		return Rules{}, fmt.Errorf("mapper: decode rules: %w", err)
	}
	return r, nil
}

// LoadYAML reads a YAML rules file and converts it into options.
func LoadYAML(path string) ([]Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mapper: read rules: %w", err)
	}
	r, err := ParseRules(data)
	if err != nil {
		return nil, err
	}
	return r.Options()
}

// Options converts r into mapper options. Status names are validated here;
// prefixes are validated by New.
func (r Rules) Options() ([]Option, error) {
	var opts []Option

	add := func(transport string, tr TransportRules, def, ovr func(result.Status, int) Option, pfx func(result.Status, string, int) Option) error {
		for name, v := range tr.Defaults {
			st, err := parseStatus(transport, name)
			if err != nil {
				return err
			}
			opts = append(opts, def(st, v))
		}
		for name, v := range tr.Overrides {
			st, err := parseStatus(transport, name)
			if err != nil {
				return err
			}
			opts = append(opts, ovr(st, v))
		}
		for _, p := range tr.Prefixes {
			st, err := parseStatus(transport, p.Status)
			if err != nil {
				return err
			}
			opts = append(opts, pfx(st, p.Prefix, p.Value))
		}
		return nil
	}

	if err := add("http", r.HTTP, WithHTTPDefault, WithHTTPOverride, WithHTTPPrefix); err != nil {
		return nil, err
	}
	if err := add("grpc", r.GRPC, WithGRPCDefault, WithGRPCOverride, WithGRPCPrefix); err != nil {
		return nil, err
	}
	return opts, nil
}

func parseStatus(transport, name string) (result.Status, error) {
	st, err := result.ParseStatus(name)
	if err != nil {
		return st, fmt.Errorf("mapper: %s rules: status %q: %w", transport, name, err)
	}
	return st, nil
}
