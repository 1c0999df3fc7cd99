package compiler

import (
	"context"

	"github.com/google/uuid"
	opentracing "github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
)

// Result holds the output of a Frontend run. Program is nil when the run
// stopped after lexing.
type Result struct {
	Tokens  []Token
	Program *Program
}

// Frontend runs the lex and parse stages over one translation unit.
type Frontend struct {
	// LexOnly stops the pipeline once tokenization succeeds.
	LexOnly bool
	Logger  *logrus.Entry
}

// Run tokenizes src and, unless LexOnly is set, parses it into a Program.
// Any failure aborts the run; a lex error means the parser never runs.
func (f *Frontend) Run(ctx context.Context, src string) (*Result, error) {
	log := f.Logger
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	log = log.WithField("run", uuid.New().String())

	tokens, err := f.tokenize(ctx, log, src)
	if err != nil {
		return nil, err
	}
	log.WithField("tokens", len(tokens)).Infof("Successfully parsed %d tokens.", len(tokens))

	res := &Result{Tokens: tokens}
	if f.LexOnly {
		return res, nil
	}

	prog, err := f.parse(ctx, tokens)
	if err != nil {
		return nil, err
	}
	log.Info("Successfully parsed tokens into AST!")

	res.Program = prog
	return res, nil
}

func (f *Frontend) tokenize(ctx context.Context, log *logrus.Entry, src string) ([]Token, error) {
	span, _ := opentracing.StartSpanFromContext(ctx, "compiler.Tokenize")
	defer span.Finish()

	tokens, err := NewTokenizer(log).Tokenize(src)
	if err != nil {
		span.SetTag("error", true)
		return nil, err
	}
	span.SetTag("tokens", len(tokens))
	return tokens, nil
}

func (f *Frontend) parse(ctx context.Context, tokens []Token) (*Program, error) {
	span, _ := opentracing.StartSpanFromContext(ctx, "compiler.Parse")
	defer span.Finish()

	prog, err := ParseProgram(StripComments(tokens))
	if err != nil {
		span.SetTag("error", true)
		return nil, err
	}
	return prog, nil
}

// Compile runs the full front end with default settings.
func Compile(src string) (*Program, error) {
	f := &Frontend{}
	res, err := f.Run(context.Background(), src)
	if err != nil {
		return nil, err
	}
	return res.Program, nil
}
