// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
	"gopkg.in/yaml.v3"
)

const (
	KEY_TABLES       = "tables"       // Named lookup tables.
	KEY_INSTRUCTIONS = "instructions" // Instruction templates.
	KEY_PSEUDO       = "pseudo"       // Pseudo-instruction templates.
)

// Config is the uncompiled description of an instruction set.
type Config struct {
	Tables       map[string]map[string]uint64 `yaml:"tables"`
	Instructions map[string]string            `yaml:"instructions"`
	Pseudo       map[string]string            `yaml:"pseudo"`
}

// LoadFile loads a configuration from a .star, .yaml or .yml file.
func LoadFile(path string) (cfg Config, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	switch ext := filepath.Ext(path); ext {
	case ".star":
		return LoadStarlark(path, data)
	case ".yaml", ".yml":
		return LoadYAML(bytes.NewReader(data))
	default:
		err = ErrConfigFormat(ext)
		return
	}
}

// LoadYAML decodes a configuration document.
func LoadYAML(input io.Reader) (cfg Config, err error) {
	dec := yaml.NewDecoder(input)
	dec.KnownFields(true)
	err = dec.Decode(&cfg)
	if err != nil {
		return
	}

	if len(cfg.Instructions) == 0 {
		err = ErrConfigKey(KEY_INSTRUCTIONS)
	}
	return
}

// LoadStarlark executes a Starlark program, and reads the configuration from
// its 'tables', 'instructions' and (optional) 'pseudo' globals.
func LoadStarlark(filename string, src any) (cfg Config, err error) {
	thread := starlark.Thread{Name: filename}
	opts := syntax.FileOptions{}
	globals, err := starlark.ExecFileOptions(&opts, &thread, filename, src, nil)
	if err != nil {
		return
	}

	cfg.Instructions, err = starlarkStrings(globals, KEY_INSTRUCTIONS, true)
	if err != nil {
		return
	}

	cfg.Pseudo, err = starlarkStrings(globals, KEY_PSEUDO, false)
	if err != nil {
		return
	}

	tables, err := starlarkDict(globals, KEY_TABLES, false)
	if err != nil {
		return
	}

	cfg.Tables = make(map[string]map[string]uint64, len(tables))
	for tag, value := range tables {
		dict, ok := value.(*starlark.Dict)
		if !ok {
			err = ErrConfigValue{Key: KEY_TABLES, Name: tag}
			return
		}
		table := make(map[string]uint64, dict.Len())
		for _, item := range dict.Items() {
			symbol, ok := starlark.AsString(item[0])
			if !ok {
				err = ErrConfigValue{Key: KEY_TABLES + "." + tag, Name: item[0].String()}
				return
			}
			num, ok := item[1].(starlark.Int)
			if !ok {
				err = ErrConfigValue{Key: KEY_TABLES + "." + tag, Name: symbol}
				return
			}
			table[symbol], ok = num.Uint64()
			if !ok {
				err = ErrConfigValue{Key: KEY_TABLES + "." + tag, Name: symbol}
				return
			}
		}
		cfg.Tables[tag] = table
	}

	return
}

// starlarkDict reads a global dict with string keys.
func starlarkDict(globals starlark.StringDict, key string, required bool) (values map[string]starlark.Value, err error) {
	global, ok := globals[key]
	if !ok {
		if required {
			err = ErrConfigKey(key)
		}
		return
	}

	dict, ok := global.(*starlark.Dict)
	if !ok {
		err = ErrConfigKey(key)
		return
	}

	values = make(map[string]starlark.Value, dict.Len())
	for _, item := range dict.Items() {
		name, ok := starlark.AsString(item[0])
		if !ok {
			err = ErrConfigValue{Key: key, Name: item[0].String()}
			return
		}
		values[name] = item[1]
	}

	return
}

// starlarkStrings reads a global dict of string to string.
func starlarkStrings(globals starlark.StringDict, key string, required bool) (values map[string]string, err error) {
	dict, err := starlarkDict(globals, key, required)
	if err != nil {
		return
	}

	values = make(map[string]string, len(dict))
	for name, value := range dict {
		str, ok := starlark.AsString(value)
		if !ok {
			err = ErrConfigValue{Key: key, Name: name}
			return
		}
		values[name] = str
	}

	return
}
