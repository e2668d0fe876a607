package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aeolusmd/mdfixup/internal/logging"
	"github.com/aeolusmd/mdfixup/pkg/engine"
	"github.com/aeolusmd/mdfixup/pkg/rules"
)

type rulesFlags struct {
	format string
}

const formatJSON = "json"

// ruleInfoJSON represents a rule in JSON output.
type ruleInfoJSON struct {
	ID      int    `json:"id"`
	Keyword string `json:"keyword"`
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the 33 built-in rules",
		Long:  `List every built-in rule with its numeric ID and CLI/config keyword.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			all := rules.All()

			if flags.format == formatJSON {
				return outputRulesJSON(all)
			}

			logger := logging.NewInteractive()
			logger.Info("available rules")
			for _, r := range all {
				logger.Info(r.Keyword(), logging.FieldName, r.ID())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")

	return cmd
}

func outputRulesJSON(all []engine.Rule) error {
	infos := make([]ruleInfoJSON, 0, len(all))
	for _, r := range all {
		infos = append(infos, ruleInfoJSON{ID: r.ID(), Keyword: r.Keyword()})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
