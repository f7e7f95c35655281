package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective rules",
	Long: `Print the rules a game would use, after applying the config search
order, as YAML. Redirect the output to start a custom rules file.

Examples:
  snake config > ~/.snake/configs/snake.yaml
  snake config --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		rules, err := config.LoadSnake(flagConfig)
		if err != nil {
			return err
		}
		data, err := config.Marshal(rules)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
		return err
	},
}
