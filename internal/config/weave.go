package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// WeaveConfig generates config.toml from the bootstrap template. Every
// "{{key}}" placeholder is replaced with the dictionary value for the
// user's region, or the "default" value when the region has none.
func WeaveConfig(templateContent, dictionaryContent []byte) ([]byte, error) {
	var dict map[string]map[string]string
	if _, err := toml.Decode(string(dictionaryContent), &dict); err != nil {
		return nil, fmt.Errorf("failed to decode bootstrap dictionary: %w", err)
	}

	region := detectRegion()
	woven := string(templateContent)
	for key, variants := range dict {
		value, ok := variants[region]
		if !ok {
			value, ok = variants["default"]
		}
		if !ok {
			return nil, fmt.Errorf("no value for {{%s}} in region %q", key, region)
		}
		placeholderQuoted := fmt.Sprintf("\"{{%s}}\"", key)
		woven = strings.ReplaceAll(woven, placeholderQuoted, fmt.Sprintf("\"%s\"", escapeForTomlString(value)))
	}
	return []byte(woven), nil
}

// detectRegion reads the territory of the measurement locale, e.g. "US"
// from en_US.UTF-8.
func detectRegion() string {
	for _, name := range []string{"LC_ALL", "LC_MEASUREMENT", "LANG"} {
		if r := regionOf(os.Getenv(name)); r != "" {
			return r
		}
	}
	return ""
}

func regionOf(locale string) string {
	locale, _, _ = strings.Cut(locale, ".")
	locale, _, _ = strings.Cut(locale, "@")
	_, region, ok := strings.Cut(locale, "_")
	if !ok {
		return ""
	}
	return strings.ToUpper(region)
}

func escapeForTomlString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "")
	return s
}
