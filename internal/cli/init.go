package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aeolusmd/mdfixup/internal/configloader"
	"github.com/aeolusmd/mdfixup/internal/logging"
	"github.com/aeolusmd/mdfixup/pkg/config"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0644

// runInitConfig implements --init-config: write config.GenerateTemplate's
// output to the user config path and exit. With local set, it writes
// .md-fixup.yml beside the working directory instead.
func runInitConfig(local bool) error {
	logger := logging.NewInteractive()

	var path string
	var err error
	if local {
		path, err = localConfigPath()
	} else {
		path, err = configloader.UserConfigPath()
	}
	if err != nil {
		return &RunError{Code: ExitInternalError, Err: err}
	}

	if _, err := os.Stat(path); err == nil {
		return &RunError{Code: ExitInvalidUsage,
			Err: fmt.Errorf("config file %q already exists; remove it first", path)}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &RunError{Code: ExitRunErrors, Err: fmt.Errorf("create config directory: %w", err)}
	}

	if err := os.WriteFile(path, config.GenerateTemplate(), configFilePermissions); err != nil {
		return &RunError{Code: ExitRunErrors, Err: fmt.Errorf("write config file: %w", err)}
	}

	logger.Info("created configuration file", logging.FieldPath, path)
	return nil
}

// localConfigPath resolves .md-fixup.yml beside the current directory.
func localConfigPath() (string, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return filepath.Join(workDir, ".md-fixup.yml"), nil
}
