package profile

import (
	"encoding/json"
	"os"

	"github.com/ChrisEOlsen/resume-site/internal/schemas"
	"github.com/ChrisEOlsen/resume-site/internal/types"
	rootschemas "github.com/ChrisEOlsen/resume-site/schemas"
)

// Store hands out read-only copies of a single profile.
// The record is fixed at construction; there is no setter.
type Store struct {
	profile types.Profile
}

// NewStore copies p into a new store
func NewStore(p types.Profile) *Store {
	return &Store{profile: p.Clone()}
}

// Profile returns a deep copy of the stored profile.
func (s *Store) Profile() types.Profile {
	return s.profile.Clone()
}

// Load builds a store from a profile file, or from the compiled-in profile when path is empty.
// File content is checked against the embedded JSON Schema and then the struct validation tags.
func Load(path string) (*Store, error) {
	if path == "" {
		return NewStore(Default()), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &LoadError{Path: path, Message: "file not found", Cause: err}
		}
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	p, err := Parse(data)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "invalid profile", Cause: err}
	}

	return NewStore(p), nil
}

// Parse validates raw JSON and decodes it into a Profile
func Parse(data []byte) (types.Profile, error) {
	if err := schemas.ValidateBytes(rootschemas.ProfileSchema, data); err != nil {
		return types.Profile{}, err
	}

	var p types.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return types.Profile{}, err
	}

	if err := p.Validate(); err != nil {
		return types.Profile{}, err
	}

	return p, nil
}
