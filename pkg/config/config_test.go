package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aeolusmd/mdfixup/pkg/config"
)

func TestConfigOrHelpers(t *testing.T) {
	t.Run("nil config falls through to fallback", func(t *testing.T) {
		var c *config.Config
		assert.Equal(t, 60, c.WidthOr(60))
		assert.False(t, c.OverwriteOr(false))
		assert.True(t, c.BackupOr(true))
		assert.False(t, c.ReplacementsOr(false))
	})

	t.Run("unset fields fall through", func(t *testing.T) {
		c := config.NewConfig()
		assert.Equal(t, config.DefaultWidth, c.WidthOr(config.DefaultWidth))
	})

	t.Run("explicit zero overrides fallback", func(t *testing.T) {
		zero := 0
		c := &config.Config{Width: &zero}
		assert.Equal(t, 0, c.WidthOr(60))
	})

	t.Run("explicit values win over fallback", func(t *testing.T) {
		width := 100
		overwrite := true
		c := &config.Config{Width: &width, Overwrite: &overwrite}
		assert.Equal(t, 100, c.WidthOr(60))
		assert.True(t, c.OverwriteOr(false))
	})
}
