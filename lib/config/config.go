package config

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/colinrgodsey/cartesius/f64"
	"github.com/hjson/hjson-go"
)

type Config struct {
	Origin    f64.Vec2 `json:"origin"`
	LogLevel  string   `json:"log-level"`
	LogFormat string   `json:"log-format"`
}

// Default returns the config used when no file is given.
func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// LoadConfig reads an HJSON config file. Keys missing from the
// file keep their Default values.
func LoadConfig(path string) (conf Config, err error) {
	conf = Default()
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()
	bytes, err := ioutil.ReadAll(f)
	if err != nil {
		return
	}
	var mdat map[string]interface{}
	if err = hjson.Unmarshal(bytes, &mdat); err != nil {
		err = fmt.Errorf("config: bad hjson in %v: %w", path, err)
		return
	}
	if bytes, err = json.Marshal(mdat); err != nil {
		return
	}
	if err = json.Unmarshal(bytes, &conf); err != nil {
		err = fmt.Errorf("config: %v: %w", path, err)
	}
	return
}
