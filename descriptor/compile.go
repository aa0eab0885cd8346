package descriptor

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// JSON schema of a descriptor file. Fields may carry their label/format
// inline or reference a shared definition via $ref.
type descriptorFile struct {
	Display *displaySection `json:"display"`
}

type displaySection struct {
	Formats     map[string]formatEntry     `json:"formats"`
	Definitions map[string]definitionEntry `json:"definitions"`
}

type formatEntry struct {
	ID     string       `json:"$id"`
	Fields []fieldEntry `json:"fields"`
}

type fieldEntry struct {
	Label  string `json:"label"`
	Path   string `json:"path"`
	Format string `json:"format"`
	Ref    string `json:"$ref"`
}

type definitionEntry struct {
	Label  string `json:"label"`
	Format string `json:"format"`
}

// CollectEntries walks fsys, parses every *.json descriptor file, and
// returns the compiled entries. File names are visited in lexical order and
// format keys within a file are sorted, so the result is deterministic for
// a given input set.
//
// Malformed JSON and unparseable format keys are fatal: the build must not
// silently skip broken descriptors.
func CollectEntries(fsys fs.FS) ([]Entry, error) {
	var entries []Entry
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(p) != ".json" {
			return nil
		}
		contents, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("failed to read descriptor %s: %w", p, err)
		}
		fileEntries, err := parseDescriptor(p, contents)
		if err != nil {
			return err
		}
		entries = append(entries, fileEntries...)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// LoadTable compiles the descriptor set under fsys into a ready-to-use
// selector table. It produces the identical table the generated artifact
// would, for processes that prefer load-at-start over codegen.
func LoadTable(fsys fs.FS) (SelectorTable, error) {
	entries, err := CollectEntries(fsys)
	if err != nil {
		return nil, err
	}

	return NewTable(entries), nil
}

func parseDescriptor(source string, contents []byte) ([]Entry, error) {
	var file descriptorFile
	if err := json.Unmarshal(contents, &file); err != nil {
		return nil, fmt.Errorf("malformed descriptor %s: %w", source, err)
	}
	if file.Display == nil || len(file.Display.Formats) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(file.Display.Formats))
	for key := range file.Display.Formats {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	entries := make([]Entry, 0, len(keys))
	for _, key := range keys {
		selector, ok := NormalizeSelector(key)
		if !ok {
			return nil, fmt.Errorf("descriptor %s: format key %q is neither a selector nor a function signature", source, key)
		}
		format := file.Display.Formats[key]
		specs := make([]FieldSpec, len(format.Fields))
		for i, f := range format.Fields {
			specs[i] = resolveField(f, file.Display.Definitions)
		}
		entries = append(entries, Entry{
			Selector: selector,
			FormatID: format.ID,
			Source:   source,
			Fields:   specs,
		})
	}

	return entries, nil
}

// resolveField fills in label and format from display.definitions when the
// field references one via $ref instead of declaring them inline.
func resolveField(f fieldEntry, defs map[string]definitionEntry) FieldSpec {
	spec := FieldSpec{Label: f.Label, Path: f.Path, Format: f.Format}
	if f.Ref == "" {
		return spec
	}
	key := f.Ref
	if i := strings.LastIndex(key, "."); i >= 0 {
		key = key[i+1:]
	}
	def, ok := defs[key]
	if !ok {
		return spec
	}
	if spec.Label == "" {
		spec.Label = def.Label
	}
	if spec.Format == "" {
		spec.Format = def.Format
	}

	return spec
}
