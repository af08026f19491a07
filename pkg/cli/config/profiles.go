package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

// ServerProfiles is the TOML configuration listing the game servers this
// instance can dispatch to
type ServerProfiles struct {
	Servers []ServerProfile `toml:"server"`
}

// ServerProfile describes one game server's remote-control endpoint. The
// API key itself never appears in the file; APIKeyEnv names the environment
// variable holding it.
type ServerProfile struct {
	ID        string `toml:"id"`
	Name      string `toml:"name"`
	URL       string `toml:"url"`
	APIKeyEnv string `toml:"api_key_env"`
}

// Validate checks if the ServerProfile is valid
func (p *ServerProfile) Validate() error {
	if p.ID == "" {
		return goerr.New("server profile id is required")
	}
	if p.URL == "" {
		return goerr.New("server profile url is required", goerr.V("id", p.ID))
	}
	if p.APIKeyEnv == "" {
		return goerr.New("server profile api_key_env is required", goerr.V("id", p.ID))
	}
	return nil
}

// APIKey resolves the profile's API key from the environment
func (p *ServerProfile) APIKey() (string, error) {
	key := os.Getenv(p.APIKeyEnv)
	if key == "" {
		return "", goerr.New("API key environment variable is empty",
			goerr.V("id", p.ID), goerr.V("env", p.APIKeyEnv))
	}
	return key, nil
}

// Validate checks if the ServerProfiles config is valid
func (s *ServerProfiles) Validate() error {
	if len(s.Servers) == 0 {
		return goerr.New("at least one server profile is required")
	}

	ids := make(map[string]bool)
	for i := range s.Servers {
		p := &s.Servers[i]
		if err := p.Validate(); err != nil {
			return goerr.Wrap(err, "invalid server profile")
		}
		if ids[p.ID] {
			return goerr.New("duplicate server profile id", goerr.V("id", p.ID))
		}
		ids[p.ID] = true
	}
	return nil
}

// Find returns the profile with the given id. An empty id selects the sole
// profile when exactly one is configured.
func (s *ServerProfiles) Find(id string) (*ServerProfile, error) {
	if id == "" {
		if len(s.Servers) == 1 {
			return &s.Servers[0], nil
		}
		return nil, goerr.New("server id is required when multiple profiles are configured")
	}
	for i := range s.Servers {
		if s.Servers[i].ID == id {
			return &s.Servers[i], nil
		}
	}
	return nil, goerr.New("no such server profile", goerr.V("id", id))
}

// LoadServerProfiles loads and validates server profiles from a TOML file
func LoadServerProfiles(path string) (*ServerProfiles, error) {
	// #nosec G304 - path comes from the operator's own CLI flag
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read server profiles", goerr.V("path", path))
	}

	var profiles ServerProfiles
	if err := toml.Unmarshal(data, &profiles); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML server profiles", goerr.V("path", path))
	}

	if err := profiles.Validate(); err != nil {
		return nil, goerr.Wrap(err, "server profiles validation failed", goerr.V("path", path))
	}

	return &profiles, nil
}
