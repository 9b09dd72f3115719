package i18n

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a document whose top-level keys are language codes:
//
//	en:
//	  errors:
//	    blocked: "Submission blocked."
func ParseYAML(content []byte) (map[string]map[string]any, error) {
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		m, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected map, got %T", ErrInvalidStructure, lang, val)
		}
		result[strings.ToLower(lang)] = m
	}
	return result, nil
}

// LoadFS reads every .yaml/.yml file in dir of fsys and merges them.
// Later files override earlier keys for the same language.
func LoadFS(fsys fs.FS, dir string) (map[string]map[string]any, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	all := make(map[string]map[string]any)
	for _, e := range entries {
		ext := strings.ToLower(path.Ext(e.Name()))
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}

		content, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, fmt.Errorf("%s: %w", e.Name(), err))
		}
		parsed, err := ParseYAML(content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
		for lang, m := range parsed {
			if all[lang] == nil {
				all[lang] = make(map[string]any, len(m))
			}
			for k, v := range m {
				all[lang][k] = v
			}
		}
	}

	if len(all) == 0 {
		return nil, ErrNoTranslations
	}
	return all, nil
}
