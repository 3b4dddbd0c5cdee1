package config

import (
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/voodooEntity/archivist"
)

var data = map[string]string{
	"IDENT":      "pmll",
	"PROCESSOR":  "echo",
	"LOG_LEVEL":  "info",
	"LOG_TARGET": "stdout",
	"LOG_PATH":   "out.log",
	"HOST":       "127.0.0.1",
	"PORT":       "1984",
}

// environment holds the PMLL_* env var overrides for the config
// defaults above. empty values are skipped by Set so unset vars
// just keep the defaults
type environment struct {
	Ident     string `env:"PMLL_IDENT"`
	Processor string `env:"PMLL_PROCESSOR"`
	LogLevel  string `env:"PMLL_LOG_LEVEL"`
	LogTarget string `env:"PMLL_LOG_TARGET"`
	LogPath   string `env:"PMLL_LOG_PATH"`
	Host      string `env:"PMLL_HOST"`
	Port      string `env:"PMLL_PORT"`
}

func Init() {
	var envData environment
	if err := env.Parse(&envData); nil != err {
		archivist.Error("Could not parse environment variables for config: " + err.Error())
		return
	}
	Set("IDENT", envData.Ident)
	Set("PROCESSOR", envData.Processor)
	Set("LOG_LEVEL", envData.LogLevel)
	Set("LOG_TARGET", envData.LogTarget)
	Set("LOG_PATH", envData.LogPath)
	Set("HOST", envData.Host)
	Set("PORT", envData.Port)
}

func Set(key string, val string) bool {
	if _, ok := data[key]; ok {
		if 0 < len(val) {
			data[key] = val
			return true
		}
	}
	return false
}

func Get(key string) string {
	if val, ok := data[key]; ok {
		return val
	}
	return ""
}

func GetInt(key string) (int, bool) {
	if val, ok := data[key]; ok {
		intVal, err := strconv.Atoi(val)
		if nil != err {
			archivist.Error("Trying to cast config value of key :'" + key + "' as int resulting in error: " + err.Error())
			return 0, false
		}
		return intVal, true
	}
	return 0, false
}
