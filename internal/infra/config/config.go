package config

import (
	"log"
	"os"
)

type Config struct {
	Username    string
	Password    string
	GroupThread string // id del chat grupal que atendemos

	// Opcionales, con defaults
	ListsDir    string
	DataDir     string
	SessionFile string
}

func Load() Config {
	get := func(k string, req bool) string {
		v := os.Getenv(k)
		if v == "" && req {
			log.Fatalf("faltante env %s", k)
		}
		return v
	}

	cfg := Config{
		Username:    get("IG_USERNAME", true),
		Password:    get("IG_PASSWORD", true),
		GroupThread: get("IG_GROUP_CHAT_ID", true),
		ListsDir:    get("IG_LISTS_DIR", false),
		DataDir:     get("IG_DATA_DIR", false),
		SessionFile: get("IG_SESSION_FILE", false),
	}
	if cfg.ListsDir == "" {
		cfg.ListsDir = "lists"
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	if cfg.SessionFile == "" {
		cfg.SessionFile = "session.json"
	}
	return cfg
}
