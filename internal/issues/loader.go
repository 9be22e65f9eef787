package issues

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"

	"issuepick/internal/domain"
)

// SampleSource names the built-in issue list
const SampleSource = "sample"

//go:embed sample.json
var sampleJSON []byte

// record is the on-disk shape of an issue, shared by JSON and TOML
type record struct {
	ID        string `json:"id" toml:"id"`
	Name      string `json:"name" toml:"name"`
	Message   string `json:"message" toml:"message"`
	Status    string `json:"status" toml:"status"`
	NumEvents int    `json:"numEvents" toml:"numEvents"`
	NumUsers  int    `json:"numUsers" toml:"numUsers"`
	Value     int    `json:"value" toml:"value"`
}

type tomlFile struct {
	Issue []record `toml:"issue"`
}

// Format is an issue file encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFor picks the format from the file extension
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("unsupported issue file extension %q", filepath.Ext(path))
}

// Load reads an issue list from a JSON or TOML file
func Load(path string) ([]domain.Issue, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read issues file: %w", err)
	}
	list, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}

// Sample returns the built-in issue list
func Sample() []domain.Issue {
	list, err := Parse(sampleJSON, FormatJSON)
	if err != nil {
		panic(fmt.Sprintf("embedded sample issues: %v", err))
	}
	return list
}

// Parse decodes an issue list. Issues without an id get a generated one.
func Parse(data []byte, format Format) ([]domain.Issue, error) {
	var records []record
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&records); err != nil {
			return nil, fmt.Errorf("failed to parse issues: %w", err)
		}
	case FormatTOML:
		var f tomlFile
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse issues: %w", err)
		}
		records = f.Issue
	default:
		return nil, fmt.Errorf("unsupported issue format %q", format)
	}

	list := make([]domain.Issue, 0, len(records))
	seen := make(map[string]int, len(records))
	for i, r := range records {
		status, err := domain.ParseStatus(r.Status)
		if err != nil {
			return nil, fmt.Errorf("issue %d: %w", i, err)
		}
		id := r.ID
		if id == "" {
			id = uuid.NewString()
		}
		if prev, dup := seen[id]; dup {
			return nil, fmt.Errorf("issue %d: duplicate id %q (first seen at %d)", i, id, prev)
		}
		seen[id] = i

		list = append(list, domain.Issue{
			ID:        id,
			Name:      r.Name,
			Message:   r.Message,
			Status:    status,
			NumEvents: r.NumEvents,
			NumUsers:  r.NumUsers,
			Value:     r.Value,
		})
	}
	return list, nil
}
