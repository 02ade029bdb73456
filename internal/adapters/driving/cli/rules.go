package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List normalisation stages",
	Long:  `Lists the normalisation stages in the order they run on every cell.`,
	Args:  cobra.NoArgs,
	RunE:  runRulesList,
}

var rulesApplyCmd = &cobra.Command{
	Use:   "apply [stage] [text]",
	Short: "Apply a single stage to text",
	Example: `  csvnorm rules apply era-to-year "令和5年"
  csvnorm rules apply collapse-choon "カーーー"`,
	Args: cobra.ExactArgs(2),
	RunE: runRulesApply,
}

func init() {
	rulesCmd.AddCommand(rulesApplyCmd)
	rootCmd.AddCommand(rulesCmd)
}

func runRulesList(cmd *cobra.Command, _ []string) error {
	if stageRegistry == nil {
		return errors.New("stage registry not configured")
	}

	list := stageRegistry.List()
	if len(list) == 0 {
		cmd.Println("No stages registered.")
		return nil
	}

	for i, stage := range list {
		cmd.Printf("%2d. %-20s %s\n", i+1, stage.Name, stage.Description)
	}
	return nil
}

func runRulesApply(cmd *cobra.Command, args []string) error {
	if stageRegistry == nil {
		return errors.New("stage registry not configured")
	}

	out, err := stageRegistry.Apply(args[0], args[1])
	if err != nil {
		return err
	}
	cmd.Println(out)
	return nil
}
