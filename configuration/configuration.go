package configuration

import (
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v3"
)

type Configuration struct {
	GasCostConfig   *GasCostConfiguration   `yaml:"gasCost"`
	ChainConfig     *ChainConfiguration     `yaml:"chain"`
	CrowdsaleConfig *CrowdsaleConfiguration `yaml:"crowdsale"`
	LogConfig       *LogConfiguration       `yaml:"log"`
}

func DefConfiguration() *Configuration {
	return &Configuration{
		GasCostConfig:   DefGasCostConfiguration(),
		ChainConfig:     DefChainConfiguration(),
		CrowdsaleConfig: DefCrowdsaleConfiguration(),
		LogConfig:       DefLogConfiguration(),
	}
}

// fillDefaults restores sections that a YAML null (e.g. "chain: ~") reset to nil.
func (config *Configuration) fillDefaults() {
	if config.GasCostConfig == nil {
		config.GasCostConfig = DefGasCostConfiguration()
	}
	if config.ChainConfig == nil {
		config.ChainConfig = DefChainConfiguration()
	}
	if config.CrowdsaleConfig == nil {
		config.CrowdsaleConfig = DefCrowdsaleConfiguration()
	}
	if config.LogConfig == nil {
		config.LogConfig = DefLogConfiguration()
	}
}

// Load reads a YAML file over the defaults; keys missing from the file keep their default values.
func Load(fileFullName string) (*Configuration, error) {
	config := DefConfiguration()
	if fileFullName == "" {
		return config, nil
	}

	dataBytes, err := ioutil.ReadFile(fileFullName)
	if err != nil {
		return nil, fmt.Errorf("read configuration %s: %w", fileFullName, err)
	}

	if err = yaml.Unmarshal(dataBytes, config); err != nil {
		return nil, fmt.Errorf("parse configuration %s: %w", fileFullName, err)
	}
	config.fillDefaults()

	if err = config.GasCostConfig.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}
