// pkg/fetch/stamps.go
package fetch

import (
	"encoding/json"
	"fmt"
	"os"
)

// Stamps maps entry names to the url#sha256 token of the last
// successful fetch. An unchanged token means the extraction can be
// skipped entirely.
type Stamps map[string]string

// LoadStamps reads the stamp file; a missing file is an empty set
func LoadStamps(path string) (Stamps, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Stamps{}, nil
		}
		return nil, fmt.Errorf("reading stamps: %w", err)
	}

	stamps := Stamps{}
	if err := json.Unmarshal(data, &stamps); err != nil {
		return nil, fmt.Errorf("parsing stamps: %w", err)
	}
	return stamps, nil
}

// SaveStamps writes the stamp file
func SaveStamps(path string, stamps Stamps) error {
	data, err := json.Marshal(stamps)
	if err != nil {
		return fmt.Errorf("marshaling stamps: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing stamps: %w", err)
	}
	return nil
}

// Token builds the stamp token for an entry
func (e Entry) Token() string {
	return e.URL + "#" + e.Sha256
}
