package cli

import (
	"bufio"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/csvnorm/internal/core/ports/driving"
)

var textCmd = &cobra.Command{
	Use:   "text [TEXT...]",
	Short: "Normalise text values",
	Long: `Normalises each argument and prints one result per line.
With no arguments, every line read from standard input is normalised.`,
	Example: `  csvnorm text "令和5年度 ①" "ｶﾀｶﾅ-"
  cut -d, -f2 export.csv | csvnorm text`,
	RunE: runText,
}

func init() {
	rootCmd.AddCommand(textCmd)
}

func runText(cmd *cobra.Command, args []string) error {
	svc, err := textNormaliser()
	if err != nil {
		return err
	}

	if len(args) > 0 {
		for _, arg := range args {
			cmd.Println(svc.NormaliseText(arg))
		}
		return nil
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		cmd.Println(svc.NormaliseText(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

// textNormaliser builds a normalise service honouring the script setting.
func textNormaliser() (driving.NormaliseService, error) {
	if newNormaliser == nil {
		return nil, errors.New("normalise service not configured")
	}

	scriptEnabled := !noScriptFlag
	if settingsService != nil {
		if settings, err := resolveSettings(); err == nil {
			scriptEnabled = settings.ScriptEnabled
		}
	}
	return newNormaliser(scriptEnabled), nil
}
