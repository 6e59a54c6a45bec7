package evo

import (
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"os"
)

// checkpointData is the gob payload of a saved evolution run.
type checkpointData struct {
	Population Population
	Generation int
}

// SaveCheckpoint writes the population and its generation counter to a
// gzip-compressed gob file, so a long evolution run can be resumed.
func SaveCheckpoint(filePath string, pop Population, generation int) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create checkpoint file '%s': %w", filePath, err)
	}
	defer file.Close()

	gzWriter := gzip.NewWriter(file)
	defer gzWriter.Close()

	encoder := gob.NewEncoder(gzWriter)
	if err := encoder.Encode(checkpointData{Population: pop, Generation: generation}); err != nil {
		return fmt.Errorf("failed to encode checkpoint: %w", err)
	}
	return nil
}

// LoadCheckpoint restores a population and its generation counter from a
// file written by SaveCheckpoint.
func LoadCheckpoint(filePath string) (Population, int, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open checkpoint file '%s': %w", filePath, err)
	}
	defer file.Close()

	gzReader, err := gzip.NewReader(file)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read checkpoint '%s': %w", filePath, err)
	}
	defer gzReader.Close()

	var data checkpointData
	decoder := gob.NewDecoder(gzReader)
	if err := decoder.Decode(&data); err != nil {
		return nil, 0, fmt.Errorf("failed to decode checkpoint '%s': %w", filePath, err)
	}
	return data.Population, data.Generation, nil
}
