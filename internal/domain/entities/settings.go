package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultRPathToken is the load-path-relative prefix written into patched references.
	DefaultRPathToken = "@rpath"
	// DefaultExtension is the extension a root library must carry.
	DefaultExtension = ".dylib"
	// SystemLocalLibDir is the system-local library directory recognized in copy mode.
	SystemLocalLibDir = "/usr/local/lib"

	defaultOtool           = "otool"
	defaultInstallNameTool = "install_name_tool"
	defaultListTimeout     = time.Second
)

// Settings is the configuration of the patcher.
type Settings struct {
	RPathToken         string        `yaml:"rpath_token"`
	InternalPrefixes   []string      `yaml:"internal_prefixes"`
	IncludeSystemLocal *bool         `yaml:"include_system_local"` // nil: only in copy mode
	Extension          string        `yaml:"dylib_extension"`
	Tools              ToolsSettings `yaml:"tools"`
}

// ToolsSettings locates the external binary tools.
type ToolsSettings struct {
	Otool           string        `yaml:"otool"`
	InstallNameTool string        `yaml:"install_name_tool"`
	ListTimeout     time.Duration `yaml:"list_timeout"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// DefaultSettings returns the settings used when no config file is present.
func DefaultSettings() *Settings {
	settings := &Settings{}
	settings.applyDefaults()
	return settings
}

// NewSettings reads and parses a configuration file, expanding environment variables
// in tool paths and filling unset values with defaults.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var settings Settings
	if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.Tools.Otool = expandEnv(settings.Tools.Otool)
	settings.Tools.InstallNameTool = expandEnv(settings.Tools.InstallNameTool)
	settings.applyDefaults()

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}

	return &settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".dylibpatch.yaml",
		".dylibpatch.yml",
		"dylibpatch.yaml",
		"dylibpatch.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// PrefixesFor returns the internal-prefix set for a run against buildDir:
// the build directory first, then configured extras, then the system-local
// directory. The system-local directory follows IncludeSystemLocal when set
// and copyMode otherwise. Duplicates and empty entries are dropped.
func (s *Settings) PrefixesFor(buildDir string, copyMode bool) []string {
	includeSystemLocal := copyMode
	if s.IncludeSystemLocal != nil {
		includeSystemLocal = *s.IncludeSystemLocal
	}

	candidates := make([]string, 0, len(s.InternalPrefixes)+2) //nolint:mnd // build dir + system-local
	candidates = append(candidates, buildDir)
	candidates = append(candidates, s.InternalPrefixes...)
	if includeSystemLocal {
		candidates = append(candidates, SystemLocalLibDir)
	}

	seen := make(map[string]struct{}, len(candidates))
	prefixes := make([]string, 0, len(candidates))
	for _, prefix := range candidates {
		if prefix == "" {
			continue
		}
		if _, ok := seen[prefix]; ok {
			continue
		}
		seen[prefix] = struct{}{}
		prefixes = append(prefixes, prefix)
	}
	return prefixes
}

func (s *Settings) applyDefaults() {
	if s.RPathToken == "" {
		s.RPathToken = DefaultRPathToken
	}
	if s.Extension == "" {
		s.Extension = DefaultExtension
	}
	if s.Tools.Otool == "" {
		s.Tools.Otool = defaultOtool
	}
	if s.Tools.InstallNameTool == "" {
		s.Tools.InstallNameTool = defaultInstallNameTool
	}
	if s.Tools.ListTimeout == 0 {
		s.Tools.ListTimeout = defaultListTimeout
	}
}

// Validate checks for values that would make every run fail. It runs on load and
// again after command-line overrides.
func (s *Settings) Validate() error {
	if !strings.HasPrefix(s.RPathToken, "@") {
		return fmt.Errorf("rpath_token must start with '@', got %q", s.RPathToken)
	}
	if !strings.HasPrefix(s.Extension, ".") {
		return fmt.Errorf("dylib_extension must start with '.', got %q", s.Extension)
	}
	if s.Tools.ListTimeout < 0 {
		return fmt.Errorf("tools.list_timeout must be positive, got %s", s.Tools.ListTimeout)
	}
	for i, prefix := range s.InternalPrefixes {
		if !filepath.IsAbs(prefix) {
			return fmt.Errorf("internal_prefixes[%d] must be an absolute path, got %q", i, prefix)
		}
	}
	return nil
}

// expandEnv expands ${ENV_VAR} references, warning about unset variables.
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
