package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/munkres/matrix"
)

var errBadInput = errors.New("input: expected a list of rows or a document with a cost key")

// problem is one decoded input file.
type problem struct {
	Cost     [][]float64 `yaml:"cost"`
	Maximize *bool       `yaml:"maximize"`
}

// readProblem loads path ("-" for stdin). JSON and JSONC inputs are
// normalised with jsonc.ToJSON first; everything is then decoded as YAML.
func readProblem(path string, stdin io.Reader) (problem, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return problem{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return decodeProblem(data, filepath.Ext(path))
}

// decodeProblem accepts either a bare sequence of rows or a mapping with
// cost and optional maximize keys.
func decodeProblem(data []byte, ext string) (problem, error) {
	switch strings.ToLower(ext) {
	case ".json", ".jsonc":
		data = jsonc.ToJSON(data)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return problem{}, fmt.Errorf("failed to parse input: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return problem{}, errBadInput
	}

	var p problem
	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&p.Cost); err != nil {
			return problem{}, fmt.Errorf("failed to decode rows: %w", err)
		}
	case yaml.MappingNode:
		if err := root.Decode(&p); err != nil {
			return problem{}, fmt.Errorf("failed to decode document: %w", err)
		}
		if p.Cost == nil {
			return problem{}, errBadInput
		}
	default:
		return problem{}, errBadInput
	}

	return p, nil
}

// encodeRows writes m as a YAML sequence of flow-style rows, which
// decodeProblem reads back.
func encodeRows(m *matrix.Dense) ([]byte, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for i := 0; i < m.Rows(); i++ {
		row, err := m.Row(i)
		if err != nil {
			return nil, err
		}
		rn := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, v := range row {
			rn.Content = append(rn.Content, &yaml.Node{
				Kind:  yaml.ScalarNode,
				Value: strconv.FormatFloat(v, 'g', -1, 64),
			})
		}
		seq.Content = append(seq.Content, rn)
	}

	return yaml.Marshal(seq)
}
