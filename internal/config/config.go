package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/Afrawles/ghreport/internal/logger"
)

type Config struct {
	GitHub  GitHubConfig
	Output  OutputConfig
	Company string
}

type GitHubConfig struct {
	Token    string
	Username string
}

type OutputConfig struct {
	Directory string
	Format    string // markdown, text, html
}

// LoadFromEnv loads configuration from a .env file (if present) and the
// environment. Real environment variables take precedence over .env values.
func LoadFromEnv() *Config {
	if err := godotenv.Load(); err != nil {
		logger.WithError(err).Debug("no .env file loaded, using environment only")
	}

	return &Config{
		GitHub: GitHubConfig{
			Token:    os.Getenv("GITHUB_TOKEN"),
			Username: os.Getenv("GITHUB_USERNAME"),
		},
		Output: OutputConfig{
			Directory: getEnvOrDefault("OUTPUT_DIR", "reports"),
			Format:    getEnvOrDefault("OUTPUT_FORMAT", "markdown"),
		},
		Company: getEnvOrDefault("REPORT_COMPANY", "your company"),
	}
}

func (c *Config) Validate() error {
	if c.GitHub.Token == "" {
		return fmt.Errorf("GitHub token is required: set GITHUB_TOKEN or use --token (create one at https://github.com/settings/tokens)")
	}
	if c.GitHub.Username == "" {
		return fmt.Errorf("GitHub username is required: set GITHUB_USERNAME or use --user")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
