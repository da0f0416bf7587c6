package contagiongo

import (
	"github.com/BurntSushi/toml"
)

// LoadRunConfig reads and validates a RunConfig from a TOML file at path,
// following the teacher's LoadSingleHostConfig/LoadEvoEpiConfig convention
// of decode-then-validate.
func LoadRunConfig(path string) (*RunConfig, error) {
	conf := new(RunConfig)
	if _, err := toml.DecodeFile(path, conf); err != nil {
		return nil, wrapf(err, "decoding config file %s", path)
	}
	if err := conf.Validate(); err != nil {
		return nil, wrapf(err, "validating config file %s", path)
	}
	return conf, nil
}
