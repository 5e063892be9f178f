package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/gofitch/gofitch/logic"
	"github.com/gofitch/gofitch/proof"
)

// A proofDocument is the on-disk form of a proof: formulas in surface
// syntax, steps in proof order.
type proofDocument struct {
	Premises   []string       `yaml:"premises"`
	Conclusion string         `yaml:"conclusion"`
	Steps      []stepDocument `yaml:"steps"`
}

type stepDocument struct {
	ID             string   `yaml:"id"`
	Formula        string   `yaml:"formula"`
	Rule           string   `yaml:"rule"`
	Justifications []string `yaml:"justifications"`
	Depth          int      `yaml:"depth"`
	Theorem        string   `yaml:"theorem"`
}

type libraryDocument struct {
	Theorems []theoremDocument `yaml:"theorems"`
}

type theoremDocument struct {
	ID         string   `yaml:"id"`
	Premises   []string `yaml:"premises"`
	Conclusion string   `yaml:"conclusion"`
}

// loadProof reads a proof document and parses every embedded formula.
func loadProof(path string) ([]proof.Step, []logic.Formula, logic.Formula, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, nil, err
	}
	var doc proofDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %v", path, err)
	}
	premises := make([]logic.Formula, len(doc.Premises))
	for i, src := range doc.Premises {
		if premises[i], err = logic.Parse(src); err != nil {
			return nil, nil, nil, fmt.Errorf("premise %d: %v", i+1, err)
		}
	}
	if doc.Conclusion == "" {
		return nil, nil, nil, fmt.Errorf("%s: no conclusion", path)
	}
	conclusion, err := logic.Parse(doc.Conclusion)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("conclusion: %v", err)
	}
	steps := make([]proof.Step, len(doc.Steps))
	for i, sd := range doc.Steps {
		f, err := logic.Parse(sd.Formula)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("step %d: %v", i+1, err)
		}
		steps[i] = proof.Step{
			ID:             sd.ID,
			Formula:        f,
			Rule:           proof.Rule(sd.Rule),
			Justifications: sd.Justifications,
			Depth:          sd.Depth,
			TheoremID:      sd.Theorem,
		}
	}
	return steps, premises, conclusion, nil
}

// loadLibrary reads a theorem-library document.
func loadLibrary(path string) (proof.Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc libraryDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	lib := make(proof.Library, len(doc.Theorems))
	for i, td := range doc.Theorems {
		premises := make([]logic.Formula, len(td.Premises))
		for j, src := range td.Premises {
			if premises[j], err = logic.Parse(src); err != nil {
				return nil, fmt.Errorf("theorem %d, premise %d: %v", i+1, j+1, err)
			}
		}
		conclusion, err := logic.Parse(td.Conclusion)
		if err != nil {
			return nil, fmt.Errorf("theorem %d: %v", i+1, err)
		}
		lib[td.ID] = proof.Theorem{ID: td.ID, Premises: premises, Conclusion: conclusion}
	}
	return lib, nil
}
