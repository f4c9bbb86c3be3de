package config

import (
	"os"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
)

const (
	DefaultConfigFile = "./config.yml"
)

type ConfigTimeseries struct {
	Series     string `json:"series"`
	Expression string `json:"expression"`
}

type ConfigRoot struct {
	Prompt string             `json:"prompt"`
	Banner *string            `json:"banner"`
	Quit   string             `json:"quit"`
	Series []ConfigTimeseries `json:"time_series"`
}

func Load(file string) (*ConfigRoot, error) {
	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %v", file)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*ConfigRoot, error) {
	root := &ConfigRoot{}
	if err := yaml.Unmarshal(raw, root); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}
	for i, ts := range root.Series {
		if ts.Series == "" {
			return nil, errors.Errorf("time_series[%v]: missing series", i)
		}
		if ts.Expression == "" {
			return nil, errors.Errorf("time_series[%v]: missing expression", i)
		}
	}
	return root, nil
}
