package kinematics

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// ErrNoConfigInformation is returned when a config file is empty.
var ErrNoConfigInformation = errors.New("no DH configuration information")

// DHStageConfig is one stage of a DH table in a kinematics JSON file.
type DHStageConfig struct {
	ID     string  `json:"id,omitempty"`
	D      float64 `json:"d"`
	A      float64 `json:"a"`
	Alpha  float64 `json:"alpha"`
	Offset float64 `json:"offset"`
}

// ConfigJSON represents all supported fields in a kinematics JSON file.
type ConfigJSON struct {
	Name     string          `json:"name,omitempty"`
	DHParams []DHStageConfig `json:"dhParams"`
}

// UnmarshalConfigJSON parses the given JSON data into a DH table. The file
// must define exactly one stage per chain stage.
func UnmarshalConfigJSON(jsonData []byte) (Config, error) {
	if len(jsonData) == 0 {
		return Config{}, ErrNoConfigInformation
	}
	var parsed ConfigJSON
	if err := json.Unmarshal(jsonData, &parsed); err != nil {
		return Config{}, errors.Wrap(err, "failed to unmarshal DH config json")
	}
	if len(parsed.DHParams) != NumStages {
		return Config{}, errors.Errorf("expected %d DH stages, got %d", NumStages, len(parsed.DHParams))
	}
	var cfg Config
	for i, stage := range parsed.DHParams {
		cfg.D[i] = stage.D
		cfg.A[i] = stage.A
		cfg.Alpha[i] = stage.Alpha
		cfg.JointOffset[i] = stage.Offset
	}
	return cfg, nil
}

// MarshalConfigJSON renders a DH table back into the JSON file format.
func MarshalConfigJSON(name string, cfg Config) ([]byte, error) {
	out := ConfigJSON{Name: name, DHParams: make([]DHStageConfig, NumStages)}
	for i := 0; i < NumStages; i++ {
		out.DHParams[i] = DHStageConfig{
			D:      cfg.D[i],
			A:      cfg.A[i],
			Alpha:  cfg.Alpha[i],
			Offset: cfg.JointOffset[i],
		}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal DH config json")
	}
	return data, nil
}
