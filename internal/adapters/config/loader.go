// Package config loads tool settings from an optional impact.yaml file with
// environment-variable overrides for the remote cache endpoint.
package config

import (
	"errors"
	iofs "io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the conventional settings file name in the checkout root.
const DefaultFilename = "impact.yaml"

// Settings is the resolved tool configuration consumed by the adapters.
type Settings struct {
	// Root is the repository root all walks and paths are relative to.
	Root string

	// SnapshotFile and MarkerFile are the two persisted artifacts.
	SnapshotFile string
	MarkerFile   string

	// IgnorePatterns excludes changes from classification.
	IgnorePatterns []string

	// GlobalTriggers are path prefixes that affect every project.
	GlobalTriggers []string

	// ConfigExtensions select the build-configuration files to hash.
	ConfigExtensions []string

	// SkipDirs are directory names excluded from the config walk.
	SkipDirs []string

	// DefaultTasks apply when the CLI names no tasks.
	DefaultTasks []string

	Gradle GradleSettings
	Remote RemoteSettings
}

// GradleSettings describes how the graph-export collaborator is invoked.
type GradleSettings struct {
	// Wrapper is preferred when it exists in the checkout; Fallback is used
	// otherwise.
	Wrapper    string
	Fallback   string
	ExportTask string
}

// RemoteSettings describes the S3-compatible remote cache. An empty Endpoint
// or Bucket disables the remote tier; that is a valid configuration, not an
// error.
type RemoteSettings struct {
	Endpoint  string
	Region    string
	Bucket    string
	Prefix    string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

// Enabled reports whether the remote tier is configured.
func (r RemoteSettings) Enabled() bool {
	return r.Endpoint != "" && r.Bucket != ""
}

// Defaults returns the built-in settings, matching Gradle conventions.
func Defaults() *Settings {
	return &Settings{
		Root:         ".",
		SnapshotFile: "project-graph.json",
		MarkerFile:   ".impact-hash",
		IgnorePatterns: []string{
			"docs/",
			".github/",
			"scripts/",
			"*.md",
		},
		GlobalTriggers: []string{
			"gradle/libs.versions.toml",
			"buildSrc/",
			"gradle.properties",
			"settings.gradle",
			"build.gradle",
		},
		ConfigExtensions: []string{".gradle", ".gradle.kts", ".toml", ".properties"},
		SkipDirs:         []string{"build", ".gradle"},
		DefaultTasks:     []string{"test"},
		Gradle: GradleSettings{
			Wrapper:    "./gradlew",
			Fallback:   "gradle",
			ExportTask: "exportProjectGraph",
		},
		Remote: RemoteSettings{
			Region: "us-east-1",
			Prefix: "gradle-diff-cache",
			UseSSL: true,
		},
	}
}

// Load resolves settings from defaults, the optional settings file at path,
// and finally the environment. A missing file falls back to defaults; a
// malformed file is an error.
func Load(path string) (*Settings, error) {
	s := Defaults()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	switch {
	case errors.Is(err, iofs.ErrNotExist):
		// Optional file.
	case err != nil:
		return nil, zerr.With(zerr.Wrap(err, "failed to read settings file"), "path", path)
	default:
		var dto fileDTO
		if err := yaml.Unmarshal(data, &dto); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to parse settings file"), "path", path)
		}
		applyFile(s, dto)
	}

	applyEnv(s)
	return s, nil
}

func applyFile(s *Settings, dto fileDTO) {
	if dto.Root != "" {
		s.Root = dto.Root
	}
	if dto.SnapshotFile != "" {
		s.SnapshotFile = dto.SnapshotFile
	}
	if dto.MarkerFile != "" {
		s.MarkerFile = dto.MarkerFile
	}
	if dto.Ignore != nil {
		s.IgnorePatterns = dto.Ignore
	}
	if dto.GlobalTriggers != nil {
		s.GlobalTriggers = dto.GlobalTriggers
	}
	if dto.ConfigExtensions != nil {
		s.ConfigExtensions = dto.ConfigExtensions
	}
	if dto.SkipDirs != nil {
		s.SkipDirs = dto.SkipDirs
	}
	if dto.Tasks != nil {
		s.DefaultTasks = dto.Tasks
	}
	if dto.Gradle.Wrapper != "" {
		s.Gradle.Wrapper = dto.Gradle.Wrapper
	}
	if dto.Gradle.Fallback != "" {
		s.Gradle.Fallback = dto.Gradle.Fallback
	}
	if dto.Gradle.ExportTask != "" {
		s.Gradle.ExportTask = dto.Gradle.ExportTask
	}
	if dto.Remote.Endpoint != "" {
		s.Remote.Endpoint = dto.Remote.Endpoint
	}
	if dto.Remote.Region != "" {
		s.Remote.Region = dto.Remote.Region
	}
	if dto.Remote.Bucket != "" {
		s.Remote.Bucket = dto.Remote.Bucket
	}
	if dto.Remote.Prefix != "" {
		s.Remote.Prefix = dto.Remote.Prefix
	}
	if dto.Remote.UseSSL != nil {
		s.Remote.UseSSL = *dto.Remote.UseSSL
	}
}

// applyEnv overlays remote-cache settings from the environment. A .env file
// in the working directory is honored when present, matching CI conventions.
func applyEnv(s *Settings) {
	_ = godotenv.Load()

	if v := strings.TrimSpace(os.Getenv("IMPACT_S3_ENDPOINT")); v != "" {
		s.Remote.Endpoint = v
	}
	if v := strings.TrimSpace(os.Getenv("IMPACT_S3_REGION")); v != "" {
		s.Remote.Region = v
	}
	if v := strings.TrimSpace(os.Getenv("IMPACT_S3_BUCKET")); v != "" {
		s.Remote.Bucket = v
	}
	if v := strings.TrimSpace(os.Getenv("IMPACT_S3_PREFIX")); v != "" {
		s.Remote.Prefix = v
	}
	if v := strings.TrimSpace(os.Getenv("IMPACT_S3_ACCESS_KEY")); v != "" {
		s.Remote.AccessKey = v
	}
	if v := strings.TrimSpace(os.Getenv("IMPACT_S3_SECRET_KEY")); v != "" {
		s.Remote.SecretKey = v
	}
	if v := strings.TrimSpace(os.Getenv("IMPACT_S3_USE_SSL")); v != "" {
		if ssl, err := strconv.ParseBool(v); err == nil {
			s.Remote.UseSSL = ssl
		}
	}
}
