// Package config loads named filter and sieve definitions from a YAML
// document and compiles every one of them eagerly, so a malformed
// entry fails at load time rather than at first match.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tsantos/sievelang/ast"
	"github.com/tsantos/sievelang/eval"
	"github.com/tsantos/sievelang/parser"
)

// rawDocument mirrors the YAML shape:
//
//	filters:
//	  adult: "age == 18"
//	sieves:
//	  suspects:
//	    - 'name =~ /^John/'
//	    - 'location.country not in ["US","UK"]'
type rawDocument struct {
	Filters map[string]string   `yaml:"filters"`
	Sieves  map[string][]string `yaml:"sieves"`
}

// Document is a config file's compiled contents: every named filter
// and sieve, ready to evaluate.
type Document struct {
	Filters map[string]*ast.FilterExpr
	Sieves  map[string]*eval.Sieve
}

// Load reads and compiles the YAML document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse compiles a YAML document already read into memory.
func Parse(data []byte) (*Document, error) {
	var raw rawDocument
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	doc := &Document{
		Filters: make(map[string]*ast.FilterExpr, len(raw.Filters)),
		Sieves:  make(map[string]*eval.Sieve, len(raw.Sieves)),
	}

	for name, src := range raw.Filters {
		f, err := parser.CompileFilter(src)
		if err != nil {
			return nil, fmt.Errorf("config: filter %q: %w", name, err)
		}
		doc.Filters[name] = f
	}

	for name, sources := range raw.Sieves {
		predicates := make([]*ast.FilterExpr, 0, len(sources))
		for i, src := range sources {
			f, err := parser.CompileFilter(src)
			if err != nil {
				return nil, fmt.Errorf("config: sieve %q entry %d: %w", name, i, err)
			}
			predicates = append(predicates, f)
		}
		doc.Sieves[name] = eval.NewSieve(predicates)
	}

	return doc, nil
}
