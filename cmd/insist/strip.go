package main

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/insist/internal/presentation/tui"
	"github.com/aretw0/insist/pkg/remover"
	"github.com/spf13/cobra"
)

var stripCmd = &cobra.Command{
	Use:   "strip [files...]",
	Short: "Remove standalone insist calls from JavaScript sources",
	Long: `Removes every insist.args and insist.ofType statement whose result is not
used. Calls that shift arguments for their caller are kept.

Without files the source is read from Stdin and written to Stdout.
With --write each file is rewritten in place. With --report a summary of the
calls found is printed instead of the source.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		write, _ := cmd.Flags().GetBool("write")
		report, _ := cmd.Flags().GetBool("report")
		aliases, _ := cmd.Flags().GetStringToString("alias")

		s := &stripper{
			cmd:    cmd,
			rm:     newRemover(aliases),
			write:  write,
			report: report,
		}

		if len(args) == 0 {
			if write {
				return fmt.Errorf("--write needs at least one file")
			}
			src, err := readAll(cmd.InOrStdin())
			if err != nil {
				return err
			}
			return s.run("stdin", src)
		}

		for _, path := range args {
			src, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			if err := s.run(path, src); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stripCmd)
	stripCmd.Flags().BoolP("write", "w", false, "Rewrite files in place")
	stripCmd.Flags().Bool("report", false, "Print a summary of the calls found instead of the source")
	stripCmd.Flags().StringToString("alias", nil, "Override a call name, e.g. --alias ofType=check.ofType")
}

type stripper struct {
	cmd    *cobra.Command
	rm     *remover.Remover
	write  bool
	report bool
}

func (s *stripper) run(name string, src []byte) error {
	ctx := s.cmd.Context()
	out := s.cmd.OutOrStdout()

	if s.report {
		refs, err := s.rm.Find(ctx, src)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		md := tui.StripReport(name, src, refs)
		if tui.IsTerminal(os.Stdout) {
			render, err := tui.NewRenderer()
			if err != nil {
				return err
			}
			if md, err = render(md); err != nil {
				return err
			}
		}
		fmt.Fprint(out, md)
		return nil
	}

	stripped, err := s.rm.Remove(ctx, src)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if !s.write {
		_, err := out.Write(stripped)
		return err
	}

	info, err := os.Stat(name)
	if err != nil {
		return err
	}
	if err := os.WriteFile(name, stripped, info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	app.logger.Info("stripped", "file", name, "bytes_removed", len(src)-len(stripped))
	return nil
}

func readAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}
