package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/jsonc"
)

// credentials is the shape of credentials.jsonc.
// toggle_api_token is the key older setups used.
type credentials struct {
	APIToken       string `json:"toggl_api_token"`
	LegacyAPIToken string `json:"toggle_api_token"`
}

// LoadCredentials reads the API token from a JSONC file.
// A missing file is not an error and yields an empty token.
func LoadCredentials(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	// Strip JSONC comments and trailing commas.
	var creds credentials
	if err := json.Unmarshal(jsonc.ToJSON(data), &creds); err != nil {
		return "", fmt.Errorf("parsing %s: %w", path, err)
	}

	token := strings.TrimSpace(creds.APIToken)
	if token == "" {
		token = strings.TrimSpace(creds.LegacyAPIToken)
	}
	return token, nil
}
