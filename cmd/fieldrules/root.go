package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fieldrules/internal/demo"
	"github.com/dmitrymomot/fieldrules/internal/login"
	"github.com/dmitrymomot/fieldrules/pkg/logger"
	"github.com/dmitrymomot/fieldrules/pkg/validator"
)

// errRejected marks a run whose outcome was already narrated; it only sets
// the exit code.
var errRejected = errors.New("rejected")

type globalFlags struct {
	envFile      string
	lang         string
	translations string
}

// execute runs the command tree and returns the process exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := rootCmd(stdout, stderr)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errRejected) {
			_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func rootCmd(stdout, stderr io.Writer) *cobra.Command {
	var flags globalFlags

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Declarative field validation for login requests",
		Long: `fieldrules validates login requests against a static rule table.

Each field declares an ordered list of rules (not blank, length bounds).
Validation visits fields in declaration order and stops at the first
violation unless --all is given.

Configuration is read from the environment and an optional .env file:
  APP_ENV                  development, staging or production
  LOG_LEVEL                debug, info, warn or error (default by APP_ENV)
  LOG_FORMAT               text or json (default by APP_ENV)
  FIELDRULES_LANG          message language (en, de)
  FIELDRULES_TRANSLATIONS  extra YAML/JSON catalog overriding built-in messages`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.envFile, "env-file", "", "Dotenv file to load (default ./.env when present)")
	pf.StringVar(&flags.lang, "lang", "", "Message language, overrides FIELDRULES_LANG")
	pf.StringVar(&flags.translations, "translations", "", "Translation file, overrides FIELDRULES_TRANSLATIONS")

	cmd.AddCommand(
		demoCmd(&flags),
		checkCmd(&flags),
		versionCmd(),
	)
	return cmd
}

func demoCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in login scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, a, err := newApp(cmd.Context(), *flags, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			start := time.Now()
			sum, err := a.runner.Run(ctx, demo.Scenarios()...)
			if err != nil {
				a.log.ErrorContext(ctx, "demo aborted", logger.Error(err))
				return err
			}
			a.log.DebugContext(ctx, "demo finished",
				logger.Duration(time.Since(start)),
				"total", sum.Total,
				"passed", sum.Passed,
				"failed", sum.Failed,
				"unexpected", sum.Unexpected,
			)
			if !sum.OK() {
				return errRejected
			}
			return nil
		},
	}
}

func checkCmd(flags *globalFlags) *cobra.Command {
	var (
		username string
		password string
		all      bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a single login request",
		Long: `Validate a single login request.

A flag that is not given leaves the field absent, which is different from
passing an empty value (--username "").`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, a, err := newApp(cmd.Context(), *flags, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			req := login.New(
				optional(cmd, "username", username),
				optional(cmd, "password", password),
			)
			err = a.runner.Check(ctx, req, all)
			if validator.IsValidationError(err) {
				return errRejected
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username to validate")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password to validate")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Report the first violation of every field")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	}
}

// optional returns nil for flags the user did not set.
func optional(cmd *cobra.Command, name, value string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}
