package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/uadetect/pkg/httpserver"
	"github.com/dmitrymomot/uadetect/pkg/logger"
	"github.com/dmitrymomot/uadetect/pkg/requestid"
	"github.com/dmitrymomot/uadetect/pkg/rules"
	"github.com/dmitrymomot/uadetect/pkg/useragent"
)

func newClassifyCmd(a *app) *cobra.Command {
	var acceptLanguage string

	cmd := &cobra.Command{
		Use:   "classify [user-agent]",
		Short: "Classify a user agent (reads one agent per line from stdin when omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []useragent.AgentOption{useragent.WithAcceptLanguage(acceptLanguage)}

			if len(args) == 1 {
				return a.writeSummaries(cmd.OutOrStdout(), []useragent.Summary{
					a.detector.Parse(args[0], opts...).Summarize(),
				})
			}

			var summaries []useragent.Summary
			sc := bufio.NewScanner(cmd.InOrStdin())
			sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
			for sc.Scan() {
				line := strings.TrimSpace(sc.Text())
				if line == "" {
					continue
				}
				summaries = append(summaries, a.detector.Parse(line, opts...).Summarize())
			}
			if err := sc.Err(); err != nil {
				return fmt.Errorf("read user agents: %w", err)
			}
			return a.writeSummaries(cmd.OutOrStdout(), summaries)
		},
	}

	cmd.Flags().StringVarP(&acceptLanguage, "accept-language", "l", "", "Accept-Language header to rank")

	return cmd
}

func (a *app) writeSummaries(w io.Writer, summaries []useragent.Summary) error {
	switch a.format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		for _, s := range summaries {
			if err := enc.Encode(s); err != nil {
				return err
			}
		}
		return enc.Close()
	case formatJSON:
		enc := json.NewEncoder(w)
		for _, s := range summaries {
			if err := enc.Encode(s); err != nil {
				return err
			}
		}
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, s := range summaries {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "user agent:\t%s\n", s.UserAgent)
		fmt.Fprintf(tw, "device type:\t%s\n", s.DeviceType)
		fmt.Fprintf(tw, "device:\t%s\n", orDash(s.Device))
		fmt.Fprintf(tw, "platform:\t%s\n", withVersion(s.Platform, s.Versions))
		fmt.Fprintf(tw, "browser:\t%s\n", withVersion(s.Browser, s.Versions))
		fmt.Fprintf(tw, "robot:\t%s\n", orDash(s.Robot))
		if len(s.Languages) > 0 {
			fmt.Fprintf(tw, "languages:\t%s\n", strings.Join(s.Languages, ", "))
		}
	}
	return tw.Flush()
}

func newVersionCmd(a *app) *cobra.Command {
	var asFloat bool

	cmd := &cobra.Command{
		Use:   "version <property> [user-agent]",
		Short: "Print the version of a property such as Chrome, iOS or Windows NT",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ua, err := agentArg(cmd, args, 1)
			if err != nil {
				return err
			}
			agent := a.detector.Parse(ua)

			var out string
			if asFloat {
				v, ok := agent.VersionFloat(args[0])
				if !ok {
					return notFound("version of %q", args[0])
				}
				out = strconv.FormatFloat(v, 'f', -1, 64)
			} else {
				v, ok := agent.Version(args[0])
				if !ok {
					return notFound("version of %q", args[0])
				}
				out = v
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVar(&asFloat, "float", false, "Print the version as a number (major.minor)")

	return cmd
}

func newLanguagesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "languages <accept-language>",
		Short: "Rank the tags of an Accept-Language header",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs := useragent.ParseLanguagePreferences(args[0])
			w := cmd.OutOrStdout()

			switch a.format {
			case formatYAML:
				return yaml.NewEncoder(w).Encode(prefs)
			case formatJSON:
				return json.NewEncoder(w).Encode(prefs)
			}

			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			for _, p := range prefs {
				fmt.Fprintf(tw, "%s\t%s\n", p.Tag, strconv.FormatFloat(p.Priority, 'f', -1, 64))
			}
			return tw.Flush()
		},
	}
}

func newIsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "is <rule> [user-agent]",
		Short: "Report whether a named rule such as iPhone or AndroidOS matches",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ua, err := agentArg(cmd, args, 1)
			if err != nil {
				return err
			}

			query := args[0]
			if !strings.HasPrefix(query, "is") {
				query = "is" + query
			}
			ok, err := a.detector.Parse(ua).Query(query)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(ok))
			return err
		},
	}
}

var tableNames = []string{"browsers", "platforms", "devices", "properties", "extended", "mobile"}

func newRulesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "rules [" + strings.Join(tableNames, "|") + "]",
		Short:     "Dump a merged rule table as YAML",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: tableNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "extended"
			if len(args) == 1 {
				name = args[0]
			}

			tables := map[string]*rules.Table{
				"browsers":   a.detector.Browsers(),
				"platforms":  a.detector.Platforms(),
				"devices":    a.detector.Devices(),
				"properties": a.detector.Properties(),
				"extended":   a.detector.ExtendedRules(),
				"mobile":     a.detector.MobileRules(),
			}
			t, ok := tables[name]
			if !ok {
				return errors.Join(errUsage, fmt.Errorf("unknown table %q, want one of %s", name, strings.Join(tableNames, ", ")))
			}

			a.log.Debug("dumping rules", logger.Table(name, t.Len()))
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(t); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve /classify, /metrics and /healthz over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := env.ParseAs[httpserver.Config]()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(a.log))
			return srv.Run(ctx, newServiceHandler(a.detector, a.log, prometheus.NewRegistry()))
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides UA_HTTP_ADDR)")

	return cmd
}

func newServiceHandler(d *useragent.Detector, log *slog.Logger, reg *prometheus.Registry) http.Handler {
	metrics := useragent.NewMetrics(reg)

	r := chi.NewRouter()
	r.Use(requestid.Middleware)

	r.Group(func(r chi.Router) {
		r.Use(useragent.Middleware(d, useragent.WithMetrics(metrics)))
		r.Method(http.MethodGet, "/classify", useragent.SummaryHandler(d, log))
	})

	r.Method(http.MethodGet, "/metrics", metrics.Handler(reg))
	r.Get("/healthz", httpserver.HealthHandler(log))
	r.Get("/readyz", httpserver.HealthHandler(log, func(context.Context) error {
		if d.ExtendedRules().Len() == 0 {
			return errors.New("no rules loaded")
		}
		return nil
	}))

	return r
}

func notFound(format string, args ...any) error {
	return fmt.Errorf("no "+format+" found", args...)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func withVersion(name string, versions map[string]string) string {
	if name == "" {
		return "-"
	}
	if v, ok := versions[name]; ok {
		return name + " " + v
	}
	return name
}
