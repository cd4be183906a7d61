package scoring

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed ontology.yaml
var defaultOntologyYAML []byte

// RoleSkills lists the skills and certifications a role usually asks for.
type RoleSkills struct {
	MustHave       []string `yaml:"must_have" json:"must_have"`
	GoodToHave     []string `yaml:"good_to_have" json:"good_to_have"`
	Certifications []string `yaml:"certifications" json:"certifications"`
}

// Ontology maps a role name to its skills.
type Ontology map[string]RoleSkills

// DefaultOntology returns the ontology bundled with the binary.
func DefaultOntology() Ontology {
	var o Ontology
	if err := yaml.Unmarshal(defaultOntologyYAML, &o); err != nil {
		panic(fmt.Sprintf("embedded ontology is invalid: %v", err))
	}
	return o
}

// LoadOntology reads a YAML or JSON ontology file. An empty path yields the
// bundled default.
func LoadOntology(path string) (Ontology, error) {
	if path == "" {
		return DefaultOntology(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ontology: %w", err)
	}

	var o Ontology
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &o)
	default:
		err = yaml.Unmarshal(data, &o)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse ontology %s: %w", path, err)
	}

	return o, nil
}

// Vocabulary is the sorted, normalized union of every must-have and
// good-to-have skill.
func (o Ontology) Vocabulary() []string {
	var all []string
	for _, role := range o {
		all = append(all, role.MustHave...)
		all = append(all, role.GoodToHave...)
	}
	return sortedSet(all)
}

// Certifications is the sorted, normalized union of every role's certifications.
func (o Ontology) Certifications() []string {
	var all []string
	for _, role := range o {
		all = append(all, role.Certifications...)
	}
	return sortedSet(all)
}

// ParseJD derives must-have and good-to-have lists from a job description by
// literal, case-insensitive containment of ontology terms.
func ParseJD(rawText string, o Ontology) (mustHave, goodToHave []string) {
	lower := strings.ToLower(rawText)

	var must, good []string
	for _, role := range o {
		for _, s := range role.MustHave {
			if n := NormalizeToken(s); n != "" && strings.Contains(lower, n) {
				must = append(must, n)
			}
		}
		for _, s := range role.GoodToHave {
			if n := NormalizeToken(s); n != "" && strings.Contains(lower, n) {
				good = append(good, n)
			}
		}
	}

	return sortedSet(must), sortedSet(good)
}

func sortedSet(items []string) []string {
	out := NormalizeSkills(items)
	sort.Strings(out)
	return out
}
