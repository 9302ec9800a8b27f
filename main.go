package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/takoeight0821/monkey/internal/driver"
)

const (
	prompt  = ">> "
	welcome = "Welcome to monkeylang repl"
)

var history = filepath.Join(xdg.DataHome, "monkey", ".monkey_history")

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		inputPath string
		format    string
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:          "monkey",
		Short:        "Tokenize monkey source code",
		Long:         "Scans monkey source code and prints its tokens. Without --input, starts an interactive prompt.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logrus.New()
			log.SetOutput(cmd.ErrOrStderr())
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}

			f, err := driver.ParseFormat(format)
			if err != nil {
				return err
			}
			r := driver.NewRunner(cmd.OutOrStdout(), driver.WithFormat(f), driver.WithLogger(log))

			if inputPath != "" {
				return RunFile(r, inputPath)
			}

			return RunPrompt(r, cmd.OutOrStdout(), log)
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "input file path")
	cmd.Flags().StringVarP(&format, "format", "f", driver.Pretty.String(), "token output format: pretty, debug or go")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func RunPrompt(r *driver.Runner, out io.Writer, log logrus.FieldLogger) error {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	defer func() {
		if err := os.MkdirAll(filepath.Dir(history), os.ModePerm); err != nil {
			log.WithError(err).Warn("create history directory")
		}
		if f, err := os.Create(history); err == nil {
			defer f.Close()
			if _, err := line.WriteHistory(f); err != nil {
				log.WithError(err).Warn("write history")
			}
		}
		line.Close()
	}()

	if f, err := os.Open(history); err == nil {
		defer f.Close()
		if _, err := line.ReadHistory(f); err != nil {
			log.WithError(err).Warn("read history")
		}
	}

	fmt.Fprintln(out, welcome)
	for {
		input, err := line.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read: %w", err)
		}
		line.AppendHistory(input)

		if err := r.RunSource(strings.TrimSpace(input)); err != nil {
			log.WithError(err).Error("scan failed")
		}
	}
}

func RunFile(r *driver.Runner, path string) error {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return r.RunSource(string(bytes))
}
