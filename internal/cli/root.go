// Package cli is the baseconv command line front end
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"baseconv/internal/platform/config"
	"baseconv/internal/platform/logger"

	"github.com/spf13/cobra"
	"golang.org/x/text/message"
)

// Exit codes
const (
	ExitOK         = 0
	ExitConversion = 1
	ExitUsage      = 2
)

// exitError carries an already localized message and the code to exit with
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }

// session is the per run state shared by the commands
type session struct {
	verbose bool
	debug   bool
	p       *message.Printer
	env     config.Conf
}

// Execute runs the CLI with args and returns the process exit code
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	s := &session{
		p:   newPrinter(),
		env: config.New().Prefix("BASECONV_CLI_"),
	}
	cmd := newRootCmd(s)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	var ee *exitError
	if errors.As(err, &ee) {
		fmt.Fprintln(stderr, ee.msg)
		return ee.code
	}
	fmt.Fprintln(stderr, s.p.Sprintf(msgUsage, err))
	return ExitUsage
}

// Main is Execute over the process streams
func Main() {
	os.Exit(Execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func newRootCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "baseconv",
		Short:         "Convert signed numbers between bases 2, 8, 10 and 16",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			opt := logger.Options{Level: "disabled", Format: "console", Writer: cmd.ErrOrStderr()}
			if s.debug {
				opt.Level = "debug"
			}
			logger.Init(opt)
		},
	}

	cmd.PersistentFlags().BoolVarP(&s.verbose, "verbose", "v", false, "append the detailed reason to failure messages")
	cmd.PersistentFlags().BoolVar(&s.debug, "debug", false, "log to stderr")

	cmd.AddCommand(
		convertCmd(s),
		allCmd(s),
		basesCmd(s),
		versionCmd(),
	)
	return cmd
}
