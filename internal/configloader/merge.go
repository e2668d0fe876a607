package configloader

import "github.com/aeolusmd/mdfixup/pkg/config"

// merge combines two configurations, with override taking precedence
// over base. Pointer fields (Width, Overwrite, Backup, Replacements)
// only override when explicitly set; ReplacementsFile and Jobs use
// their zero value as "unset"; the Rules lists replace wholesale when
// override sets them at all.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Width != nil {
		result.Width = override.Width
	}
	if override.Overwrite != nil {
		result.Overwrite = override.Overwrite
	}
	if override.Backup != nil {
		result.Backup = override.Backup
	}
	if override.Replacements != nil {
		result.Replacements = override.Replacements
	}
	if override.ReplacementsFile != "" {
		result.ReplacementsFile = override.ReplacementsFile
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.Rules.Skip != nil {
		result.Rules.Skip = override.Rules.Skip
	}
	if override.Rules.Include != nil {
		result.Rules.Include = override.Rules.Include
	}

	return &result
}

// MergeAll merges multiple configurations in order, lowest precedence
// first (e.g. user config, project config, CLI flags).
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}
	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
