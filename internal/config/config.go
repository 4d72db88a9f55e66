package config

type Config struct {
	ConfigVersion int           `yaml:"configVersion"`
	Categories    []Category    `yaml:"categories"`
	Levels        LevelsConfig  `yaml:"levels"`
	Output        OutputConfig  `yaml:"output"`
	Logging       LoggingConfig `yaml:"logging"`
	Metrics       MetricsConfig `yaml:"metrics"`

	baseDir string `yaml:"-"`
}

// Category is the raw rule shape: trigger phrases inline or from a
// patterns file, plus an optional exclusion regex that suppresses the
// category in known-innocuous contexts.
type Category struct {
	Name         string   `yaml:"name"`
	Keywords     []string `yaml:"keywords"`
	KeywordsFile string   `yaml:"keywordsFile"`
	Exclude      string   `yaml:"exclude"`
}

// LevelsConfig assigns categories to severity tiers. A category in no
// tier contributes tags but leaves the level at basic.
type LevelsConfig struct {
	Severe []string `yaml:"severe"`
	Medium []string `yaml:"medium"`
	Mild   []string `yaml:"mild"`
}

type OutputConfig struct {
	TagColumns int `yaml:"tagColumns"`
}

type LoggingConfig struct {
	DecisionLog string `yaml:"decisionLog"`
}

type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}

const DefaultTagColumns = 10

func (c *Config) BaseDir() string {
	return c.baseDir
}

func (c *Config) ResolvePath(path string) string {
	return c.resolvePath(path)
}
