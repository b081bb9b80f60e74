package spec

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectFile is the file LoadProject looks for inside a project directory.
const ProjectFile = "facility.yaml"

// Load reads a facility spec from a YAML file.
func Load(path string) (*FacilitySpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a facility spec from YAML bytes.
func Parse(data []byte) (*FacilitySpec, error) {
	var spec FacilitySpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing spec YAML: %w", err)
	}
	return &spec, nil
}

// LoadProject loads a facility spec from a project directory.
// It looks for facility.yaml in the given directory.
func LoadProject(projectDir string) (*FacilitySpec, error) {
	return Load(filepath.Join(projectDir, ProjectFile))
}
