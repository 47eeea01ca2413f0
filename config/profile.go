package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/Tim020/botocore/botoerr"
)

// Profile is one named section of the shared config file.
type Profile struct {
	Region           string `toml:"region"`
	AccessKeyID      string `toml:"access_key_id"`
	SecretAccessKey  string `toml:"secret_access_key"`
	SessionToken     string `toml:"session_token"`
	SignatureVersion string `toml:"signature_version"`
}

// LoadSharedConfig reads the named profile section from the TOML config file
// at path. The three failure modes are distinct kinds so callers can treat a
// missing file (often fine, fall through to other sources) differently from
// a corrupt one (never fine).
func LoadSharedConfig(path, profile string) (Profile, error) {
	if _, err := os.Stat(path); err != nil {
		return Profile{}, botoerr.NewConfigNotFoundError(path)
	}

	var sections map[string]Profile
	if _, err := toml.DecodeFile(path, &sections); err != nil {
		return Profile{}, botoerr.NewConfigParseError(path)
	}

	p, ok := sections[profile]
	if !ok {
		return Profile{}, botoerr.NewProfileNotFoundError(profile)
	}
	return p, nil
}
