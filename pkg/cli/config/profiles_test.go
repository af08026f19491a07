package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gameops-lab/rconhub/pkg/cli/config"
	"github.com/m-mizutani/gt"
)

func writeProfiles(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "servers.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600)).Required()
	return path
}

func TestLoadServerProfiles(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		path := writeProfiles(t, `
[[server]]
id = "eu-1"
name = "Main EU server"
url = "https://rcon-eu.example.com"
api_key_env = "RCON_EU_API_KEY"

[[server]]
id = "us-1"
name = "Main US server"
url = "https://rcon-us.example.com"
api_key_env = "RCON_US_API_KEY"
`)
		profiles, err := config.LoadServerProfiles(path)
		gt.NoError(t, err).Required()
		gt.Array(t, profiles.Servers).Length(2)

		p, err := profiles.Find("us-1")
		gt.NoError(t, err).Required()
		gt.Value(t, p.URL).Equal("https://rcon-us.example.com")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.LoadServerProfiles(filepath.Join(t.TempDir(), "absent.toml"))
		gt.Value(t, err).NotNil()
	})

	t.Run("empty config is rejected", func(t *testing.T) {
		path := writeProfiles(t, ``)
		_, err := config.LoadServerProfiles(path)
		gt.Value(t, err).NotNil()
	})

	t.Run("duplicate ids are rejected", func(t *testing.T) {
		path := writeProfiles(t, `
[[server]]
id = "eu-1"
url = "https://a.example.com"
api_key_env = "KEY_A"

[[server]]
id = "eu-1"
url = "https://b.example.com"
api_key_env = "KEY_B"
`)
		_, err := config.LoadServerProfiles(path)
		gt.Value(t, err).NotNil()
	})

	t.Run("profile without url is rejected", func(t *testing.T) {
		path := writeProfiles(t, `
[[server]]
id = "eu-1"
api_key_env = "KEY_A"
`)
		_, err := config.LoadServerProfiles(path)
		gt.Value(t, err).NotNil()
	})
}

func TestServerProfilesFind(t *testing.T) {
	single := &config.ServerProfiles{Servers: []config.ServerProfile{
		{ID: "only", URL: "https://only.example.com", APIKeyEnv: "KEY"},
	}}

	t.Run("empty id selects the sole profile", func(t *testing.T) {
		p, err := single.Find("")
		gt.NoError(t, err).Required()
		gt.Value(t, p.ID).Equal("only")
	})

	t.Run("unknown id fails", func(t *testing.T) {
		_, err := single.Find("nope")
		gt.Value(t, err).NotNil()
	})

	multi := &config.ServerProfiles{Servers: []config.ServerProfile{
		{ID: "a", URL: "https://a.example.com", APIKeyEnv: "KEY_A"},
		{ID: "b", URL: "https://b.example.com", APIKeyEnv: "KEY_B"},
	}}

	t.Run("empty id is ambiguous with multiple profiles", func(t *testing.T) {
		_, err := multi.Find("")
		gt.Value(t, err).NotNil()
	})
}

func TestServerProfileAPIKey(t *testing.T) {
	p := config.ServerProfile{ID: "eu-1", URL: "https://a.example.com", APIKeyEnv: "TEST_RCON_API_KEY"}

	t.Run("resolves from environment", func(t *testing.T) {
		t.Setenv("TEST_RCON_API_KEY", "secret-key")
		key, err := p.APIKey()
		gt.NoError(t, err).Required()
		gt.Value(t, key).Equal("secret-key")
	})

	t.Run("empty environment variable fails", func(t *testing.T) {
		t.Setenv("TEST_RCON_API_KEY", "")
		_, err := p.APIKey()
		gt.Value(t, err).NotNil()
	})
}
