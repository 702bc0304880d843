package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Host     string   `koanf:"host"`
	Frontend Frontend `koanf:"frontend"`
	Storage  Storage  `koanf:"storage"`
	Database Database `koanf:"db"`
}

type Frontend struct {
	Enabled bool `koanf:"enabled"`
}

// StorageBackend selects where expense and budget records are persisted.
type StorageBackend string

const (
	// PostgresBackend keeps records in a remote Postgres database.
	PostgresBackend StorageBackend = "postgres"
	// FileBackend keeps records in a local bbolt key-value file.
	FileBackend StorageBackend = "file"
)

func (b StorageBackend) IsValid() bool {
	switch b {
	case PostgresBackend, FileBackend:
		return true
	default:
		return false
	}
}

type Storage struct {
	Backend StorageBackend `koanf:"backend"`
	// Path is the bbolt database file used by the file backend.
	Path string `koanf:"path"`
}

type Database struct {
	Host   string `koanf:"host"`
	Port   int    `koanf:"port"`
	User   string `koanf:"user"`
	Pass   string `koanf:"pass"`
	Name   string `koanf:"name"`
	Schema string `koanf:"schema"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Host: "http://localhost:3000",
		Frontend: Frontend{
			Enabled: true,
		},
		Storage: Storage{
			Backend: PostgresBackend,
			Path:    "data/budgetbuddy.db",
		},
		Database: Database{
			Host:   "localhost",
			Port:   5432,
			User:   "budgetbuddy",
			Pass:   "",
			Name:   "budgetbuddy",
			Schema: "budgetbuddy",
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "BUDGETBUDDY_",
		TransformFunc: func(k, v string) (string, any) {
			// Transform the key.
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "BUDGETBUDDY_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	if !app.Storage.Backend.IsValid() {
		return Application{}, fmt.Errorf("invalid storage backend: %q (must be %q or %q)",
			app.Storage.Backend, PostgresBackend, FileBackend)
	}

	return app, nil
}
