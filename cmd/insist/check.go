package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/insist/internal/presentation/tui"
	"github.com/aretw0/insist/pkg/types"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [json-array]",
	Short: "Check a JSON argument list against a signature",
	Long: `Parses the signature given with --types, shifts the values of the JSON
array into their slots and prints the result as JSON.

  insist check --types "String, Number?, String" '["a", "b"]'
  -> ["a",null,"b"]

Without an argument the array is read from Stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		list, _ := cmd.Flags().GetString("types")
		sig, err := types.ParseList(list)
		if err != nil {
			return fmt.Errorf("invalid --types: %w", err)
		}

		var raw []byte
		if len(args) == 1 {
			raw = []byte(args[0])
		} else {
			raw, err = readAll(cmd.InOrStdin())
			if err != nil {
				return err
			}
		}
		var values []any
		if err := json.Unmarshal(raw, &values); err != nil {
			return fmt.Errorf("values must be a JSON array: %w", err)
		}
		if values == nil {
			values = []any{}
		}

		style := tui.NewStyler(cmd.OutOrStdout(), tui.IsTerminal(os.Stdout))
		result, err := newChecker().Args(values, sig...)
		if err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), style.Fail(err.Error()))
			fmt.Fprintln(cmd.OutOrStdout(), style.Faint("signature: "+strings.Join(sig.Names(), ", ")))
			return errReported
		}

		out, err := json.Marshal(result)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), style.OK(string(out)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringP("types", "t", "", "Comma separated type expressions")
	checkCmd.MarkFlagRequired("types")
}
