package config

import (
	"fmt"
	"os"
	"regexp"
)

type ValidationError struct {
	Problems []string
}

func (v *ValidationError) Add(format string, args ...any) {
	v.Problems = append(v.Problems, fmt.Sprintf(format, args...))
}

func (v *ValidationError) Error() string {
	return fmt.Sprintf("%d validation error(s)", len(v.Problems))
}

func (c *Config) Validate() error {
	v := &ValidationError{}

	if c.ConfigVersion != 1 {
		v.Add("configVersion must be 1")
	}

	if len(c.Categories) == 0 {
		v.Add("at least one category is required")
	}

	names := map[string]struct{}{}
	for i, category := range c.Categories {
		if category.Name == "" {
			v.Add("categories[%d].name is required", i)
			continue
		}
		if _, exists := names[category.Name]; exists {
			v.Add("categories[%d].name %q is duplicated", i, category.Name)
			continue
		}
		names[category.Name] = struct{}{}

		if len(category.Keywords) == 0 && category.KeywordsFile == "" {
			v.Add("categories[%d] needs keywords or keywordsFile", i)
		}
		if category.KeywordsFile != "" {
			if err := requireFile(c.resolvePath(category.KeywordsFile)); err != nil {
				v.Add("categories[%d].keywordsFile invalid: %v", i, err)
			}
		}
		if category.Exclude != "" {
			if _, err := regexp.Compile(`(?i)` + category.Exclude); err != nil {
				v.Add("categories[%d].exclude invalid: %v", i, err)
			}
		}
	}

	assigned := map[string]string{}
	validateTier := func(tier string, members []string) {
		for _, name := range members {
			if _, exists := names[name]; !exists {
				v.Add("levels.%s references unknown category %q", tier, name)
				continue
			}
			if prior, exists := assigned[name]; exists {
				v.Add("category %q is in both levels.%s and levels.%s", name, prior, tier)
				continue
			}
			assigned[name] = tier
		}
	}
	validateTier("severe", c.Levels.Severe)
	validateTier("medium", c.Levels.Medium)
	validateTier("mild", c.Levels.Mild)

	if c.Output.TagColumns <= 0 {
		v.Add("output.tagColumns must be > 0")
	}

	if len(v.Problems) > 0 {
		return v
	}
	return nil
}

func requireFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}
