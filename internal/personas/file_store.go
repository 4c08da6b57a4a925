package personas

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// FileStore loads personas from a JSON seed file: an object keyed by
// persona ID, each value a persona document. The file is validated against
// a schema on first load so a malformed seed fails loudly instead of
// producing half-empty personas.
type FileStore struct {
	path string

	mu       sync.Mutex
	personas map[string]*Persona
	loaded   bool
}

// NewFileStore creates a FileStore reading from path. The file is not
// touched until the first Load.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load returns the persona with the given ID, or (nil, nil) if the file
// has no such persona.
func (s *FileStore) Load(_ context.Context, id string) (*Persona, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		if err := s.loadFile(); err != nil {
			return nil, err
		}
	}

	p, ok := s.personas[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

// All returns every persona in the seed file.
func (s *FileStore) All(_ context.Context) ([]*Persona, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		if err := s.loadFile(); err != nil {
			return nil, err
		}
	}

	out := make([]*Persona, 0, len(s.personas))
	for _, p := range s.personas {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (s *FileStore) loadFile() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read personas file: %w", err)
	}

	if err := validateSeed(raw); err != nil {
		return fmt.Errorf("personas file %s: %w", s.path, err)
	}

	var byID map[string]*Persona
	if err := json.Unmarshal(raw, &byID); err != nil {
		return fmt.Errorf("parse personas file: %w", err)
	}

	for id, p := range byID {
		if p.ID == "" {
			p.ID = id
		}
	}

	s.personas = byID
	s.loaded = true
	return nil
}

// seedSchema describes the characters.json layout: persona documents keyed
// by ID, each requiring at least a name and role.
var seedSchema = map[string]any{
	"type": "object",
	"additionalProperties": map[string]any{
		"type":     "object",
		"required": []any{"name", "role"},
		"properties": map[string]any{
			"id":                  map[string]any{"type": "string"},
			"name":                map[string]any{"type": "string"},
			"nameGurmukhi":        map[string]any{"type": "string"},
			"role":                map[string]any{"type": "string"},
			"personality":         map[string]any{"type": "string"},
			"background":          map[string]any{"type": "string"},
			"speaking_style":      map[string]any{"type": "string"},
			"conversation_topics": map[string]any{"type": "string"},
			"status":              map[string]any{"type": "string"},
		},
	},
}

var (
	compiledSeedSchema *jsonschema.Schema
	compileSeedOnce    sync.Once
	compileSeedErr     error
)

func validateSeed(raw []byte) error {
	compileSeedOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw bytes.
		defBytes, err := json.Marshal(seedSchema)
		if err != nil {
			compileSeedErr = fmt.Errorf("marshal seed schema: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileSeedErr = fmt.Errorf("parse seed schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://personas-seed.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileSeedErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSeedSchema, compileSeedErr = c.Compile(schemaURL)
	})
	if compileSeedErr != nil {
		return compileSeedErr
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := compiledSeedSchema.Validate(parsed); err != nil {
		return fmt.Errorf("seed validation failed: %w", err)
	}
	return nil
}
