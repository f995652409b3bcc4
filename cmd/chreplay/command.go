package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nitoqq/clickhouse-driver"
	"github.com/nitoqq/clickhouse-driver/format"
	"github.com/nitoqq/clickhouse-driver/internal/xerrors"
	"github.com/nitoqq/clickhouse-driver/log"
	"github.com/nitoqq/clickhouse-driver/packet"
	"github.com/nitoqq/clickhouse-driver/query"
	"github.com/nitoqq/clickhouse-driver/trace"
)

const (
	modeMaterialized = "materialized"
	modeProgress     = "progress"
	modeIter         = "iter"
)

var errUnknownMode = errors.New("unknown mode")

type flags struct {
	mode            string
	format          string
	columnar        bool
	withColumnTypes bool
	skipEmptyChunks bool
	logLevel        string
	logDetails      string
	jsonLogs        bool
}

func newRootCommand() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "chreplay [fixture.yaml]",
		Args:  cobra.MaximumNArgs(1),
		Short: "Replay a recorded packet sequence through a result strategy",
		Example: `chreplay --mode progress testdata/select.yaml
cat testdata/select.yaml | chreplay --mode iter --with-column-types --format csv`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				file, err := os.Open(args[0])
				if err != nil {
					return xerrors.WithStackTrace(err)
				}
				defer file.Close()
				in = file
			}

			return run(cmd, in, f)
		},
	}
	cmd.Flags().StringVar(&f.mode, "mode", modeMaterialized, "Result strategy: materialized, progress or iter.")
	cmd.Flags().StringVar(&f.format, "format", "table", "Output format: table or csv.")
	cmd.Flags().BoolVar(&f.columnar, "columnar", false, "Accumulate data column by column.")
	cmd.Flags().BoolVar(&f.withColumnTypes, "with-column-types", false, "Print column names.")
	cmd.Flags().BoolVar(&f.skipEmptyChunks, "skip-empty", false, "Do not print empty chunks in iter mode.")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "quiet", "Minimal level of result events written to stderr.")
	cmd.Flags().StringVar(&f.logDetails, "log-details", ".*", "Regexp over result event names to log.")
	cmd.Flags().BoolVar(&f.jsonLogs, "json-logs", false, "Write logs as JSON.")

	return cmd
}

func run(cmd *cobra.Command, in io.Reader, f flags) error {
	formatter, ok := format.ByName(f.format)
	if !ok {
		return xerrors.WithStackTrace(fmt.Errorf("unknown format %q", f.format))
	}
	fx, err := readFixture(in)
	if err != nil {
		return err
	}
	packets, err := fx.packets()
	if err != nil {
		return err
	}
	info := query.NewInfo(fx.QueryID)
	source := &observingSource{
		Source: packet.FromSlice(packets...),
		info:   info,
	}

	opts := []clickhouse.Option{clickhouse.WithQueryID(info.QueryID)}
	if f.withColumnTypes {
		opts = append(opts, clickhouse.WithColumnTypes())
	}
	if f.columnar {
		opts = append(opts, clickhouse.WithColumnar())
	}
	if f.skipEmptyChunks {
		opts = append(opts, clickhouse.WithSkipEmptyChunks())
	}
	if lvl := log.FromString(f.logLevel); lvl != log.QUIET {
		logger, err := newLogger(cmd.ErrOrStderr(), lvl, f.jsonLogs)
		if err != nil {
			return err
		}
		opts = append(opts, clickhouse.WithLogger(logger, trace.MatchDetails(f.logDetails)))
	}

	ctx := cmd.Context()
	stop := info.Measure(clockwork.NewRealClock())
	out := cmd.OutOrStdout()
	switch f.mode {
	case modeMaterialized:
		err = replayResult(ctx, clickhouse.NewResult(source, opts...), formatter, out)
	case modeProgress:
		err = replayProgress(ctx, clickhouse.NewProgressResult(source, opts...), formatter, out)
	case modeIter:
		err = replayIter(ctx, clickhouse.NewIterResult(source, opts...), formatter, out)
	default:
		return xerrors.WithStackTrace(fmt.Errorf("%w: %q", errUnknownMode, f.mode))
	}
	stop()
	if err != nil {
		return err
	}
	printInfo(cmd.ErrOrStderr(), info)

	return nil
}

func newLogger(w io.Writer, lvl log.Level, jsonLogs bool) (log.Logger, error) {
	if !jsonLogs {
		return log.Default(w, log.WithMinLevel(lvl)), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel(lvl))
	cfg.OutputPaths = []string{"stderr"}
	l, err := cfg.Build()
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}

	return log.Zap(l), nil
}

func zapLevel(lvl log.Level) zapcore.Level {
	switch lvl {
	case log.TRACE, log.DEBUG:
		return zapcore.DebugLevel
	case log.INFO:
		return zapcore.InfoLevel
	case log.WARN:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

func printInfo(w io.Writer, info *query.Info) {
	fmt.Fprintf(w, "query_id: %s\n", info.QueryID)
	fmt.Fprintf(w, "elapsed: %s\n", info.Elapsed)
	if info.Progress != nil {
		fmt.Fprintf(w, "progress: %d/%d rows, %d bytes\n",
			info.Progress.Rows, info.Progress.TotalRows, info.Progress.Bytes,
		)
	}
	if info.ProfileInfo != nil {
		fmt.Fprintf(w, "profile: %d rows in %d blocks\n", info.ProfileInfo.Rows, info.ProfileInfo.Blocks)
	}
}
