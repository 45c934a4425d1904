package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// dumpTranscript writes t as YAML when path ends in .yaml or .yml and as
// JSON otherwise.
func dumpTranscript(t transcript, path string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(t)
	default:
		data, err = json.MarshalIndent(t, "", "  ")
	}
	if err != nil {
		return errors.Wrap(err, "encode transcript")
	}
	if err := os.WriteFile(path, data, 0666); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}

func loadTranscript(path string) (transcript, error) {
	var t transcript
	data, err := os.ReadFile(path)
	if err != nil {
		return t, errors.Wrapf(err, "read %s", path)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &t)
	default:
		err = json.Unmarshal(data, &t)
	}
	if err != nil {
		return t, errors.Wrapf(err, "decode %s", path)
	}
	return t, nil
}
