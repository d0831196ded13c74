package lexicon

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/mod/semver"
)

// FormatMajor is the rules file format major version this build reads.
const FormatMajor = "v1"

// File is the on-disk JSON form of Tables.
type File struct {
	Version   string         `json:"version"`
	Masculine []string       `json:"masculine"`
	Feminine  []string       `json:"feminine"`
	Compounds []CompoundFile `json:"compounds,omitempty"`
	Rules     []RuleFile     `json:"rules"`
}

// CompoundFile is the JSON form of Compound.
type CompoundFile struct {
	First  string `json:"first"`
	Second string `json:"second"`
	Gender string `json:"gender"`
}

// RuleFile is the JSON form of Rule.
type RuleFile struct {
	Name       string   `json:"name"`
	Gender     string   `json:"gender"`
	Suffixes   []string `json:"suffixes"`
	Exceptions []string `json:"exceptions,omitempty"`
	Guarded    []string `json:"guarded,omitempty"`
	Trusted    []string `json:"trusted,omitempty"`
}

// Parse validates raw JSON against the rules schema and decodes it.
func Parse(raw []byte) (*File, error) {
	if err := validateDocument(raw); err != nil {
		return nil, err
	}
	var f File
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode rules: %w", err)
	}
	return &f, nil
}

// LoadFile reads, validates and builds the rules file at path.
func LoadFile(path string) (*Tables, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	f, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	t, err := Build(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Encode writes f as indented JSON.
func Encode(w io.Writer, f *File) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encode rules: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func checkVersion(v string) error {
	if !semver.IsValid(v) {
		return fmt.Errorf("rules version %q is not a semantic version", v)
	}
	if semver.Major(v) != FormatMajor {
		return fmt.Errorf("rules version %s is incompatible: this build reads %s.x", v, FormatMajor)
	}
	return nil
}
