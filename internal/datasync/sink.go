package datasync

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/wordharvest/internal/dictionary"
)

// DictionarySink writes a whole dictionary to some destination.
type DictionarySink interface {
	WriteAll(dict dictionary.Dictionary) error
}

// YAMLDictionarySink writes a dictionary to a YAML file.
type YAMLDictionarySink struct {
	path string
}

// NewYAMLDictionarySink creates a new YAMLDictionarySink.
func NewYAMLDictionarySink(path string) *YAMLDictionarySink {
	return &YAMLDictionarySink{path: path}
}

// WriteAll writes dict to the sink's file, words in lexical order.
func (s *YAMLDictionarySink) WriteAll(dict dictionary.Dictionary) error {
	if err := createParentDir(s.path); err != nil {
		return err
	}
	if dict == nil {
		dict = dictionary.Dictionary{}
	}
	if err := writeYAML(s.path, dict); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(s.path), err)
	}
	return nil
}

// JSONDictionarySink writes a dictionary to a JSON file in the store format.
type JSONDictionarySink struct {
	path string
}

// NewJSONDictionarySink creates a new JSONDictionarySink.
func NewJSONDictionarySink(path string) *JSONDictionarySink {
	return &JSONDictionarySink{path: path}
}

// WriteAll writes dict to the sink's file.
func (s *JSONDictionarySink) WriteAll(dict dictionary.Dictionary) error {
	if err := createParentDir(s.path); err != nil {
		return err
	}

	if err := writeJSON(s.path, dict); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(s.path), err)
	}
	return nil
}

func createParentDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return nil
}

var createFile = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// closeFile closes f and keeps the first error, so a failed flush on close is reported.
func closeFile(f io.Closer, err *error) {
	if closeErr := f.Close(); closeErr != nil && *err == nil {
		*err = closeErr
	}
}

func writeJSON(path string, dict dictionary.Dictionary) (err error) {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer closeFile(f, &err)

	return dictionary.Encode(f, dict)
}

func writeYAML(path string, data interface{}) (err error) {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer closeFile(f, &err)

	enc := yaml.NewEncoder(f)
	if err := enc.Encode(data); err != nil {
		_ = enc.Close()
		return err
	}
	return enc.Close()
}
