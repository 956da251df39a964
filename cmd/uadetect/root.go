package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/uadetect/pkg/logger"
	"github.com/dmitrymomot/uadetect/pkg/requestid"
	"github.com/dmitrymomot/uadetect/pkg/useragent"
)

const (
	formatText = "text"
	formatYAML = "yaml"
	formatJSON = "json"
)

var errUsage = errors.New("invalid usage")

// app is the state shared by all subcommands, built before any of them runs.
type app struct {
	envFiles []string
	format   string

	cfg      useragent.Config
	log      *slog.Logger
	detector *useragent.Detector
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "uadetect",
		Short:         "Classify user agents by device, platform, browser and version",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringSliceVar(&a.envFiles, "env-file", nil, "Load configuration from .env files")
	root.PersistentFlags().StringVarP(&a.format, "format", "f", formatText, "Output format: text, yaml or json")

	root.AddCommand(
		newClassifyCmd(a),
		newVersionCmd(a),
		newLanguagesCmd(a),
		newIsCmd(a),
		newRulesCmd(a),
		newServeCmd(a),
		newBuildInfoCmd(),
	)

	return root
}

func (a *app) init(stderr io.Writer) error {
	switch a.format {
	case formatText, formatYAML, formatJSON:
	default:
		return errors.Join(errUsage, fmt.Errorf("unknown output format %q", a.format))
	}

	cfg, err := useragent.LoadConfig(a.envFiles...)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, ok := logger.ParseLevel(cfg.LogLevel)
	if !ok {
		return errors.Join(errUsage, fmt.Errorf("unknown log level %q", cfg.LogLevel))
	}
	format, ok := logger.ParseFormat(cfg.LogFormat)
	if !ok {
		return errors.Join(errUsage, fmt.Errorf("unknown log format %q", cfg.LogFormat))
	}
	a.log = logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(stderr),
		logger.WithExtractor(requestid.LoggerExtractor()),
	)
	a.log.Debug("configuration loaded", slog.Any("config", cfg))

	d, err := useragent.NewFromConfig(cfg, useragent.WithLogger(a.log))
	if err != nil {
		return err
	}
	a.detector = d
	return nil
}

// agentArg returns the positional agent string at index i, or the trimmed
// content of stdin when it is absent.
func agentArg(cmd *cobra.Command, args []string, i int) (string, error) {
	if len(args) > i {
		return args[i], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read user agent from stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func newBuildInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build-info",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		// no configuration needed
		PersistentPreRun: func(*cobra.Command, []string) {},
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "version=%s commit=%s buildDate=%s\n", version, commit, buildDate)
		},
	}
}
