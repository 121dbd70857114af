package png

import (
	"fmt"
	"os"
)

// ReadFile reads and parses a PNG file from disk.
func ReadFile(path string) (*PNG, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", path, err)
	}

	return p, nil
}

// WriteFile serializes the container and writes it to disk. Serialization
// happens fully in memory first, so a failed encode never touches the file.
func WriteFile(path string, p *PNG) error {
	data, err := p.Bytes()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}

	return nil
}
