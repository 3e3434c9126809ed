package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/wpml"
	"github.com/reoring/wpml/kmz"
)

var zipMagic = []byte("PK\x03\x04")

// readMission returns the template markup of a .kmz archive or a plain
// .kml file.
func readMission(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if bytes.HasPrefix(data, zipMagic) {
		return kmz.ReadBytes(data)
	}
	return data, nil
}

// writeMission writes text as a .kmz archive, or as plain markup for any
// other extension.
func writeMission(path, text string) error {
	if strings.EqualFold(filepath.Ext(path), ".kmz") {
		return kmz.WriteFile(path, []byte(text))
	}
	return os.WriteFile(path, []byte(text), 0o644)
}

// treeFormat picks the format from the file extension, falling back to def.
func treeFormat(path, def string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	}
	return def
}

func readTree(path, format string) (*wpml.OrderedMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m := wpml.NewOrderedMap()
	switch treeFormat(path, format) {
	case "json":
		err = json.Unmarshal(data, m)
	default:
		err = yaml.Unmarshal(data, m)
	}
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return m, nil
}

func marshalTree(m *wpml.OrderedMap, format string) ([]byte, error) {
	if format == "json" {
		out, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	}
	return yaml.Marshal(m)
}
