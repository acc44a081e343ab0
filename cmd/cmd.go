// Package cmd implements the convertifier command line interface. It is
// the only layer that touches files, the environment, and the optional
// AI enhancer; the conversion pipeline itself stays pure.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/convertifier/convertifier/config"
	"github.com/convertifier/convertifier/llm"
	"github.com/convertifier/convertifier/logger"
	"github.com/convertifier/convertifier/pipeline"
)

// Execute runs the convertifier CLI with the given version string.
func Execute(version string) {
	cmd := &cli.Command{
		Name:                   "convertifier",
		Usage:                  "Convert code between Python and C++",
		Version:                version,
		UseShortOptionHandling: true,
		Flags:                  convertFlags(),
		// Allow `convertifier file.py` as shorthand for `convertifier convert file.py`
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() > 0 {
				return convertAction(ctx, cmd)
			}
			return cli.DefaultShowRootCommandHelp(cmd)
		},
		Commands: []*cli.Command{
			{
				Name:      "convert",
				Usage:     "Translate a source file (or stdin) to the other language",
				ArgsUsage: "[file]",
				Flags:     convertFlags(),
				Action:    convertAction,
			},
			{
				Name:      "validate",
				Usage:     "Check that source is syntactically acceptable",
				ArgsUsage: "[file]",
				Flags: []cli.Flag{
					langFlag(),
					jsonLogsFlag(),
				},
				Action: validateAction,
			},
			{
				Name:      "format",
				Usage:     "Reindent source for the given language",
				ArgsUsage: "[file]",
				Flags: []cli.Flag{
					langFlag(),
					jsonLogsFlag(),
				},
				Action: formatAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func convertFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "from",
			Aliases: []string{"f"},
			Usage:   "Source language (python or cpp); inferred from the file extension when omitted",
		},
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Usage:   "Write output to a file instead of stdout",
		},
		&cli.BoolFlag{
			Name:  "ai",
			Usage: "Try AI-enhanced conversion first, falling back to the basic converter",
		},
		jsonLogsFlag(),
	}
}

func langFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "lang",
		Aliases: []string{"l"},
		Usage:   "Language (python or cpp); inferred from the file extension when omitted",
	}
}

func jsonLogsFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "json-logs",
		Usage: "Emit logs as JSON",
	}
}

func convertAction(ctx context.Context, cmd *cli.Command) error {
	if err := logger.Initialize(cmd.Bool("json-logs")); err != nil {
		return err
	}
	source, path, err := readSource(cmd)
	if err != nil {
		return err
	}
	from, err := inferLanguage(path, cmd.String("from"))
	if err != nil {
		return err
	}
	to := pipeline.LangCPP
	if from == pipeline.LangCPP {
		to = pipeline.LangPython
	}

	p := pipeline.New()
	if ok, msg := p.Validate(source, from); !ok {
		return errors.New(msg)
	}

	var out string
	if cmd.Bool("ai") {
		out = aiConvert(ctx, p, source, from, to)
	}
	if out == "" {
		res := p.Convert(source, from)
		if res.Failed() {
			return errors.New(res.Err)
		}
		out = res.Text
	}
	return writeOutput(cmd.String("out"), out)
}

// aiConvert attempts the LLM-enhanced path and returns "" when the
// basic converter should be used instead. Enhanced output only passes
// through the formatter, never the validator or the translators.
func aiConvert(ctx context.Context, p *pipeline.Pipeline, source string, from, to pipeline.Language) string {
	cfg, err := config.Load()
	if err != nil {
		logger.Logger.Warnw("AI conversion unavailable", "error", err)
		return ""
	}
	enhancer, err := llm.New(llm.Config{
		BaseURL: cfg.AI.BaseURL,
		APIKey:  cfg.AI.APIKey,
		Model:   cfg.AI.Model,
		Timeout: cfg.AI.Timeout,
	})
	if err != nil {
		logger.Logger.Warnw("AI conversion unavailable", "error", err)
		return ""
	}
	enhanced, err := enhancer.Enhance(ctx, source, displayName(from), displayName(to))
	if err != nil {
		logger.Logger.Warnw("AI conversion failed, falling back to basic conversion", "error", err)
		return ""
	}
	logger.Logger.Infow("AI-enhanced conversion completed", "from", from, "to", to)
	return p.Format(enhanced, to)
}

func validateAction(ctx context.Context, cmd *cli.Command) error {
	if err := logger.Initialize(cmd.Bool("json-logs")); err != nil {
		return err
	}
	source, path, err := readSource(cmd)
	if err != nil {
		return err
	}
	lang, err := inferLanguage(path, cmd.String("lang"))
	if err != nil {
		return err
	}
	ok, msg := pipeline.New().Validate(source, lang)
	if !ok {
		return errors.New(msg)
	}
	fmt.Println(msg)
	return nil
}

func formatAction(ctx context.Context, cmd *cli.Command) error {
	if err := logger.Initialize(cmd.Bool("json-logs")); err != nil {
		return err
	}
	source, path, err := readSource(cmd)
	if err != nil {
		return err
	}
	lang, err := inferLanguage(path, cmd.String("lang"))
	if err != nil {
		return err
	}
	fmt.Println(pipeline.New().Format(source, lang))
	return nil
}

// readSource returns the input text and, when read from a file, its
// path. With no file argument the source comes from stdin, but only
// when stdin is piped: reading from an interactive terminal would just
// hang.
func readSource(cmd *cli.Command) (string, string, error) {
	if cmd.NArg() > 0 {
		path := cmd.Args().First()
		data, err := os.ReadFile(path)
		if err != nil {
			return "", "", fmt.Errorf("reading %s: %w", path, err)
		}
		return string(data), path, nil
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return "", "", fmt.Errorf("no input file given and stdin is a terminal")
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), "", nil
}

// inferLanguage resolves the language from an explicit flag value or,
// failing that, the file extension.
func inferLanguage(path, flag string) (pipeline.Language, error) {
	if flag != "" {
		return pipeline.ParseLanguage(flag)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".py":
		return pipeline.LangPython, nil
	case ".cpp", ".cc", ".cxx", ".hpp", ".h":
		return pipeline.LangCPP, nil
	}
	return "", fmt.Errorf("cannot infer language from %q: pass --from python or --from cpp", path)
}

func writeOutput(path, text string) error {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	if path == "" {
		fmt.Print(text)
		return nil
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// displayName is the human-facing language name used in AI prompts.
func displayName(lang pipeline.Language) string {
	if lang == pipeline.LangCPP {
		return "C++"
	}
	return "Python"
}
