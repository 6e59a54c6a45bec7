package ann

import (
	"encoding/json"
	"fmt"
	"os"
)

// Save writes the network to path as the interchange JSON document:
//
//	{"structure": [...], "fitness": number|null, "layers": [[{"bias": ..., "weights": [...]}, ...], ...]}
//
// The document round-trips losslessly through Load.
func (n *Network) Save(path string) error {
	data, err := json.MarshalIndent(n, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode network: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write network file: %w", err)
	}
	return nil
}

// Load reads a network from a JSON document written by Save (or by any of
// the example tools). The document's shape is validated against its
// declared structure before the network is returned.
func Load(path string) (*Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read network file: %w", err)
	}
	var n Network
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, fmt.Errorf("failed to decode network from '%s': %w", path, err)
	}
	if err := n.validate(); err != nil {
		return nil, fmt.Errorf("network document '%s' is inconsistent: %w", path, err)
	}
	return &n, nil
}
