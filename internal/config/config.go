package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ArrayNone/sortedview/internal/maputils"
	"github.com/ArrayNone/sortedview/internal/prints"

	"github.com/gabriel-vasile/mimetype"
	"go.yaml.in/yaml/v3"
)

/* YAML Schema:
verb: <fmt verb> # Directive used for every key and value ("v", "+v", "#v", "s", "q", "x", "X", "d")
nested: <bool> # If `true`, mappings nested inside values are printed sorted as well
header: <bool> # If `true`, print the input's name before its contents
accepted-formats: [<MIME type>] # Input formats to accept, inputs detected as a subtype are accepted too
*/

type Verb string

type Config struct {
	Verb            Verb     `yaml:"verb"`
	Nested          bool     `yaml:"nested"`
	Header          bool     `yaml:"header"`
	AcceptedFormats []string `yaml:"accepted-formats"`
}

var KnownVerbs = map[Verb]string{
	"v":  "default format, {1: a}",
	"+v": "default format with struct field names",
	"#v": "Go syntax, {1: \"a\"}",
	"s":  "plain strings",
	"q":  "quoted strings",
	"x":  "lowercase hexadecimal",
	"X":  "uppercase hexadecimal",
	"d":  "base 10 integers",
}

// Creates a default config file based on the contents of `defaultconfig.go` located at `path`.
// Can return an error.
func CreateDefaultConfig(path string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.WriteString(GetDefaultConfigStr())
	if err != nil {
		return err
	}

	return nil
}

// Retrives the user config file located at `os.UserConfigDir()`. If the file does not exist,
// this creates a default config file based on the contents of `defaultconfig.go`.
//
// Returns the path of the config file, a bool indicating if the file is created (`true` if it is,
// `false` otherwise) and an error if one occurs.
func GetOrCreateUserConfigFile() (path string, isCreated bool, err error) {
	path, err = createUserConfigFilePath()
	if err != nil {
		return "", false, fmt.Errorf("cannot retrieve the user's config path: %w", err)
	}

	if !fileExists(path) {
		err := CreateDefaultConfig(path)
		if err != nil {
			return "", false, fmt.Errorf("cannot create default config file at %s: %w", path, err)
		}

		isCreated = true
	}

	return path, isCreated, nil
}

// Decodes the config file at `path` and returns a Config object.
// Can also returns an error.
func DecodeConfigFile(path string) (cfg *Config, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var result Config
	err = yaml.Unmarshal(data, &result)
	return &result, err
}

// Returns the formatting directive for keys and values, eg. `%#v`.
func (cfg *Config) Directive() string {
	return "%" + string(cfg.Verb)
}

// Checks the config for any errors and inconsistencies. Returns a slice of errors in the config.
func (cfg *Config) Validate() []error {
	const (
		undefinedVerb = "verb is not defined"
		unknownVerb   = "verb: %q is not one of: %s"

		undefinedFormats = "accepted-formats: no formats defined"
		unknownFormat    = "accepted-formats: %q is an unknown file format"
		duplicateFormat  = "accepted-formats: %q is defined more than once"
	)

	var configErrors []error
	addErrorString := func(str string) {
		configErrors = append(configErrors, errors.New(str))
	}

	// verb
	if cfg.Verb == "" {
		addErrorString(undefinedVerb)
	} else if _, ok := KnownVerbs[cfg.Verb]; !ok {
		known := make([]string, 0, len(KnownVerbs))
		for _, verb := range maputils.SortedKeys(KnownVerbs) {
			known = append(known, string(verb))
		}

		addErrorString(fmt.Sprintf(unknownVerb, cfg.Verb, strings.Join(known, ", ")))
	}

	// accepted-formats
	if len(cfg.AcceptedFormats) == 0 {
		addErrorString(undefinedFormats)
	}

	seen := make(map[string]struct{}, len(cfg.AcceptedFormats))
	for _, format := range cfg.AcceptedFormats {
		if mimetype.Lookup(format) == nil {
			addErrorString(fmt.Sprintf(unknownFormat, format))
		}

		if _, ok := seen[format]; ok {
			addErrorString(fmt.Sprintf(duplicateFormat, format))
		}
		seen[format] = struct{}{}
	}

	return configErrors
}

func (v *Verb) UnmarshalYAML(value *yaml.Node) error {
	var verb string
	if err := value.Decode(&verb); err != nil {
		return err
	}

	*v = Verb(strings.TrimPrefix(strings.TrimSpace(verb), "%"))
	return nil
}

func (v Verb) MarshalYAML() (any, error) {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Value: string(v),
		Tag:   "!!str",
		Style: yaml.DoubleQuotedStyle,
	}, nil
}

func createUserConfigFilePath() (configPath string, err error) {
	userConfig, err := os.UserConfigDir()
	if err != nil {
		prints.Warnf("Cannot retrieve user config directory: %v\n", err)
		return "", err
	}

	appConfigDir := filepath.Join(userConfig, "sortedview")

	const rwxr_xr_x = 0755
	err = os.MkdirAll(appConfigDir, rwxr_xr_x)
	if err != nil {
		prints.Warnf("Cannot create config directory %s: %v\n", appConfigDir, err)
		return "", err
	}

	configPath = filepath.Join(appConfigDir, "config.yaml")
	return configPath, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
