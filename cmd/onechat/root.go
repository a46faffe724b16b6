package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/keepmind9/onechat/internal/config"
	"github.com/keepmind9/onechat/internal/logger"
	"github.com/keepmind9/onechat/pkg/onechat"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// errResultFailed marks a command whose outcome was already printed; it only sets the exit code
var errResultFailed = errors.New("request did not succeed")

// rootOptions holds the global flags shared by every subcommand
type rootOptions struct {
	configFile string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "onechat",
		Short: "onechat is a command-line client for the OneChat bot API",
		Long: `onechat sends messages through a OneChat bot and lists the friends
and groups the bot can reach.

Credentials and defaults come from a YAML config file, a .env file or
ONECHAT_* environment variables (ONECHAT_TOKEN, ONECHAT_TO, ONECHAT_BOT_ID).
Results are printed as JSON; the exit code is 1 when a request fails.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "Configuration file path")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log requests to stderr")

	cmd.AddCommand(
		newSendCmd(opts),
		newBroadcastCmd(opts),
		newFriendsCmd(opts),
		newGroupsCmd(opts),
		newRoomsCmd(opts),
		newValidateCmd(opts),
		newVersionCmd(),
	)

	return cmd
}

// Execute executes the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, errResultFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// configPath returns --config, falling back to the default locations
func (o *rootOptions) configPath() string {
	if o.configFile != "" {
		return o.configFile
	}
	return config.FindConfigFile()
}

// connect loads configuration, initializes logging and installs the default session
func (o *rootOptions) connect() (*onechat.Session, error) {
	path := o.configPath()

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logConfig := cfg.LoggerConfig()
	if o.verbose {
		logConfig.EnableConsole = true
	}
	if err := logger.InitLogger(logConfig); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"config_file":    path,
		"base_url":       cfg.BaseURL,
		"token":          onechat.MaskToken(cfg.Token),
		"default_to":     cfg.DefaultTo,
		"default_bot_id": cfg.DefaultBotID,
	}).Debug("onechat-session-initialized")

	return onechat.Init(cfg.Token, cfg.Defaults(), cfg.ClientOptions(logger.GetLogger())...), nil
}

func printJSON(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

// printResult prints res and converts anything short of success into errResultFailed
func printResult(cmd *cobra.Command, res onechat.Result) error {
	if err := printJSON(cmd.OutOrStdout(), res); err != nil {
		return err
	}
	if !res.Succeeded() {
		return errResultFailed
	}
	return nil
}
