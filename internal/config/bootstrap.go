package config

import (
	"embed"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
)

//go:embed all:bootstrap
var bootstrapFS embed.FS

const (
	templateFile   = "config_template.toml"
	dictionaryFile = "units_dictionary.toml"
)

// bootstrapCopy writes a fresh config.toml woven for the current locale and
// copies the bundled artwork. Existing files are never overwritten.
func bootstrapCopy(dstRoot string) error {
	tmpl, err := bootstrapFS.ReadFile("bootstrap/" + templateFile)
	if err != nil {
		return err
	}
	dict, err := bootstrapFS.ReadFile("bootstrap/" + dictionaryFile)
	if err != nil {
		return err
	}
	woven, err := WeaveConfig(tmpl, dict)
	if err != nil {
		return err
	}

	target := filepath.Join(dstRoot, configFileName)
	if _, err := os.Stat(target); err != nil {
		if err := os.WriteFile(target, woven, 0o644); err != nil {
			return err
		}
		log.Printf("bootstrap: generated %s", target)
	}
	return ensureAssets(dstRoot)
}

// ensureAssets restores any bundled image the user has not replaced.
func ensureAssets(dstRoot string) error {
	return fs.WalkDir(bootstrapFS, "bootstrap", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel := strings.TrimPrefix(path, "bootstrap")
		rel = strings.TrimPrefix(rel, "/")
		if rel == "" || rel == templateFile || rel == dictionaryFile {
			return nil
		}

		target := filepath.Join(dstRoot, filepath.FromSlash(rel))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if _, err := os.Stat(target); err == nil {
			return nil
		}
		b, err := bootstrapFS.ReadFile(path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, b, 0o644)
	})
}
