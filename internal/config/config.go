package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"merge-service/internal/merge/model"
)

type Config struct {
	Host         string
	Port         int
	AllowOrigins []string
	LogLevel     string
	MaxUploadMB  int
	LogFile      string
	PresetFile   string
	Threshold    float64 // дефолтный порог схожести, если форма его не задала
}

func Load() Config {
	port, _ := strconv.Atoi(getenv("PORT", "8082"))
	mb, _ := strconv.Atoi(getenv("MAX_UPLOAD_MB", "256"))
	origins := strings.Split(getenv("ALLOW_ORIGINS", "*"), ",")
	thr, err := strconv.ParseFloat(getenv("MATCH_THRESHOLD", ""), 64)
	if err != nil || thr < 0 || thr > 1 {
		thr = model.DefaultThreshold
	}
	return Config{
		Host:         getenv("HOST", "127.0.0.1"),
		Port:         port,
		AllowOrigins: origins,
		LogLevel:     getenv("LOG_LEVEL", "info"),
		MaxUploadMB:  mb,
		LogFile:      getenv("LOG_FILE", "logs/merge-service.log"),
		PresetFile:   getenv("PRESET_FILE", "presets/settings_presets.json"),
		Threshold:    thr,
	}
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
