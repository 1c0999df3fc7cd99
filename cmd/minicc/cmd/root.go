package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"minicc/pkg/compiler"
	"minicc/pkg/config"
	"minicc/pkg/utils"
)

type options struct {
	cfgFile    string
	debug      bool
	lex        bool
	parse      bool
	codegen    bool
	dumpTokens bool
	dumpAST    string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "minicc [flags] <file>",
		Short: "minicc - front end for a tiny C subset",
		Long: `minicc tokenizes and parses a single C translation unit of the form

  int main(void) { return <constant>; }

Stages:
  --lex      run the lexer, stop before parsing
  --parse    run the lexer and parser, stop before assembly
  --codegen  run up to code generation (currently stops after parsing)`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0])
		},
	}

	flags := root.Flags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (.toml or .yaml)")
	flags.BoolVarP(&opts.debug, "debug", "d", false, "print debug messages")
	flags.BoolVar(&opts.lex, "lex", false, "run the lexer, stop before parsing")
	flags.BoolVar(&opts.parse, "parse", false, "run the lexer + parser, stop before assembler")
	flags.BoolVar(&opts.codegen, "codegen", false, "run the lexer + parser + assembler, stop before codegen")
	flags.BoolVar(&opts.dumpTokens, "dump-tokens", false, "print the token stream")
	flags.StringVar(&opts.dumpAST, "dump-ast", "", "print the AST as text or yaml")

	root.AddCommand(newVersionCmd())
	return root
}

// Execute runs the root command and prints any failure to stderr.
func Execute() error {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		printError(root.ErrOrStderr(), err)
		return err
	}
	return nil
}

func loadConfig(opts *options) (*config.Config, error) {
	cfg := config.Default()
	if opts.cfgFile != "" {
		var err error
		if cfg, err = config.Load(opts.cfgFile); err != nil {
			return nil, err
		}
	}
	if opts.debug {
		cfg.Log.Level = logrus.DebugLevel.String()
	}
	if opts.dumpTokens {
		cfg.Output.DumpTokens = true
	}
	if opts.dumpAST != "" {
		cfg.Output.ASTFormat = opts.dumpAST
	}
	return cfg, cfg.Validate()
}

func run(cmd *cobra.Command, opts *options, path string) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		return err
	}
	logger.SetOutput(cmd.ErrOrStderr())
	log := logrus.NewEntry(logger).WithField("file", path)

	src, err := utils.ReadSource(path)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}

	if opts.codegen {
		log.Warn("code generation is not implemented, stopping after parse")
	}

	frontend := &compiler.Frontend{LexOnly: opts.lex, Logger: log}
	res, err := frontend.Run(context.Background(), src.Contents)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if cfg.Output.DumpTokens {
		printTokens(out, res.Tokens)
	}
	if res.Program != nil && (opts.dumpAST != "" || opts.parse) {
		dump, err := compiler.Dump(res.Program, compiler.DumpFormat(cfg.Output.ASTFormat))
		if err != nil {
			return err
		}
		fmt.Fprintln(out, headerStyle.Render("AST"))
		fmt.Fprint(out, dump)
	}
	return nil
}

func printTokens(w io.Writer, tokens []compiler.Token) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Tokens (%d)", len(tokens))))
	for _, tok := range tokens {
		fmt.Fprintln(w, " ", tok)
	}
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", errorStyle.Render("error:"), err)
}
