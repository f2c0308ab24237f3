package config

import (
	"flag"
	"io/ioutil"
	"os"
	"path"

	"github.com/fernandosanchezjr/fastrng/utils"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

var configPath string

func init() {
	flag.StringVar(&configPath, "config", "", "specify config file (default <home-folder>/config.yaml)")
}

func GetConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return path.Join(utils.GetHomeFolder(), "config.yaml")
}

func LoadConfig() (*Config, error) {
	return LoadFile(GetConfigPath())
}

// LoadFile reads YAML over the defaults. A missing file yields the defaults.
func LoadFile(filePath string) (*Config, error) {
	c := Default()
	log.WithField("path", filePath).Println("Loading config")
	data, err := ioutil.ReadFile(filePath)
	if os.IsNotExist(err) {
		log.WithField("path", filePath).Warn("Config file not found, using defaults")
		return c, nil
	} else if err != nil {
		return nil, err
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return nil, err
	}
	if err = c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Save(filePath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(filePath, data, 0600)
}
