package config

// fileDTO represents the structure of the optional impact.yaml settings file.
type fileDTO struct {
	Root             string    `yaml:"root"`
	SnapshotFile     string    `yaml:"snapshotFile"`
	MarkerFile       string    `yaml:"markerFile"`
	Ignore           []string  `yaml:"ignore"`
	GlobalTriggers   []string  `yaml:"globalTriggers"`
	ConfigExtensions []string  `yaml:"configExtensions"`
	SkipDirs         []string  `yaml:"skipDirs"`
	Tasks            []string  `yaml:"tasks"`
	Gradle           gradleDTO `yaml:"gradle"`
	Remote           remoteDTO `yaml:"remote"`
}

type gradleDTO struct {
	Wrapper    string `yaml:"wrapper"`
	Fallback   string `yaml:"fallback"`
	ExportTask string `yaml:"exportTask"`
}

type remoteDTO struct {
	Endpoint string `yaml:"endpoint"`
	Region   string `yaml:"region"`
	Bucket   string `yaml:"bucket"`
	Prefix   string `yaml:"prefix"`
	UseSSL   *bool  `yaml:"useSSL"`
}
