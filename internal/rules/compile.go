package rules

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/deckward/deckward/internal/config"
)

func BuildEngine(cfg *config.Config, baseDir string) (*Engine, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	tiers := levelTiers(cfg)

	categories := make([]Category, 0, len(cfg.Categories))
	for _, raw := range cfg.Categories {
		compiled, err := compileCategory(raw, tiers[raw.Name], baseDir)
		if err != nil {
			return nil, fmt.Errorf("category %s: %w", raw.Name, err)
		}
		categories = append(categories, compiled)
	}

	return &Engine{Categories: categories}, nil
}

// levelTiers maps category names to severity tiers. Categories named in
// no tier stay at basic; duplicate or unknown names are a config
// validation problem, not a compile one.
func levelTiers(cfg *config.Config) map[string]Level {
	tiers := map[string]Level{}
	for _, name := range cfg.Levels.Mild {
		tiers[name] = LevelMild
	}
	for _, name := range cfg.Levels.Medium {
		tiers[name] = LevelMedium
	}
	for _, name := range cfg.Levels.Severe {
		tiers[name] = LevelSevere
	}
	return tiers
}

func compileCategory(raw config.Category, level Level, baseDir string) (Category, error) {
	keywords := append([]string(nil), raw.Keywords...)
	if raw.KeywordsFile != "" {
		fromFile, err := readKeywords(resolvePath(baseDir, raw.KeywordsFile))
		if err != nil {
			return Category{}, err
		}
		keywords = append(keywords, fromFile...)
	}

	matcher, err := NewWordMatcher(keywords)
	if err != nil {
		return Category{}, err
	}

	var exclude *regexp.Regexp
	if raw.Exclude != "" {
		exclude, err = regexp.Compile(`(?i)` + raw.Exclude)
		if err != nil {
			return Category{}, fmt.Errorf("exclude pattern: %w", err)
		}
	}

	return Category{
		Name:    raw.Name,
		Level:   level,
		Matcher: matcher,
		Exclude: exclude,
	}, nil
}

func readKeywords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	var keywords []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		keywords = append(keywords, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return keywords, nil
}

func resolvePath(baseDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}
