package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// printJSON writes v to stdout as indented JSON.
func printJSON(v interface{}) error {
	content, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}
	fmt.Println(string(content))
	return nil
}

// saveOutput writes v to a file; .json gets indented JSON, anything else
// one value per line for string slices and JSON otherwise.
func saveOutput(v interface{}, filepath string) error {
	var content []byte
	var err error

	switch data := v.(type) {
	case []string:
		if strings.HasSuffix(filepath, ".json") {
			content, err = json.MarshalIndent(data, "", "  ")
		} else {
			content = []byte(strings.Join(data, "\n") + "\n")
		}
	default:
		content, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	if err := os.WriteFile(filepath, content, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	log.Info().Str("file", filepath).Msg("Output saved")
	return nil
}
