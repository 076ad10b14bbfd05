package cli

import (
	"fmt"

	"baseconv/internal/core/normalize"
	"baseconv/internal/core/radix"
	"baseconv/internal/core/version"
	"baseconv/internal/platform/logger"

	"github.com/spf13/cobra"
)

const baseHelp = "2, 8, 10, 16 or bin, oct, dec, hex"

func convertCmd(s *session) *cobra.Command {
	var from, to string

	c := &cobra.Command{
		Use:   "convert <input>",
		Short: "Convert a number from one base to another",
		Example: "  baseconv convert FF --from 16 --to 2\n" +
			"  baseconv convert --from hex --to dec -- -ff",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := radix.ParseRadix(from)
			if err != nil {
				return s.failure(err)
			}
			t, err := radix.ParseRadix(to)
			if err != nil {
				return s.failure(err)
			}

			in := normalize.Numeral(args[0])
			out, err := radix.Convert(in, f, t)
			log := logger.Get().With().Str("input", in).Int("from", int(f)).Int("to", int(t)).Logger()
			if err != nil {
				log.Debug().Err(err).Msg("conversion rejected")
				return s.failure(err)
			}
			log.Debug().Str("output", out).Msg("converted")

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	c.Flags().StringVarP(&from, "from", "f", s.env.MayString("FROM", "10"), "source base: "+baseHelp)
	c.Flags().StringVarP(&to, "to", "t", s.env.MayString("TO", "2"), "target base: "+baseHelp)
	return c
}

func allCmd(s *session) *cobra.Command {
	var from string

	c := &cobra.Command{
		Use:   "all <input>",
		Short: "Print a number in every supported base",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := radix.ParseRadix(from)
			if err != nil {
				return s.failure(err)
			}
			outs, err := radix.ConvertAll(normalize.Numeral(args[0]), f)
			if err != nil {
				return s.failure(err)
			}
			for _, r := range radix.Supported() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%d): %s\n", baseTitle(r), int(r), outs[r])
			}
			return nil
		},
	}

	c.Flags().StringVarP(&from, "from", "f", s.env.MayString("FROM", "10"), "source base: "+baseHelp)
	return c
}

func basesCmd(_ *session) *cobra.Command {
	return &cobra.Command{
		Use:   "bases",
		Short: "List the supported bases",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, r := range radix.Supported() {
				fmt.Fprintf(cmd.OutOrStdout(), "%2d  %s\n", int(r), baseTitle(r))
			}
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			bi := version.Info()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (commit %s, built %s)\n", bi.Service, bi.Version, bi.Commit, bi.Date)
		},
	}
}
