package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/brewgo/brewgo"
)

type validateConfig struct {
	programPath string
	format      string
}

type validationOutput struct {
	Valid   bool   `json:"valid"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message,omitempty"`
	Line    int    `json:"line,omitempty"`
}

func runValidate(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseValidateFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgMissingProgram, err)
		return ExitCodeUsageError
	}

	programData, err := readInput(cfg.programPath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	program, err := decodeProgram(programData)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidJSON, err)
		return ExitCodeInputError
	}

	host := brewgo.NewBufferedHost()
	engine, err := brewgo.New(brewgo.WithHost(host))
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgEngineConstructed, err)
		return ExitCodeError
	}

	result := engine.Validate(program)

	if cfg.format == OutputFormatJSON {
		return outputValidationJSON(result, stdout)
	}
	return outputValidationText(result, stdout)
}

func parseValidateFlags(args []string) (*validateConfig, error) {
	fs := flag.NewFlagSet(CmdNameValidate, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &validateConfig{}
	fs.StringVar(&cfg.programPath, FlagProgram, "", "")
	fs.StringVar(&cfg.programPath, FlagProgramShort, "", "")
	fs.StringVar(&cfg.format, FlagFormat, FlagDefaultFormat, "")
	fs.StringVar(&cfg.format, FlagFormatShort, FlagDefaultFormat, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.programPath == "" {
		return nil, errors.New(ErrMsgMissingProgram)
	}
	if cfg.format != OutputFormatText && cfg.format != OutputFormatJSON {
		return nil, errors.New(ErrMsgInvalidFormat)
	}
	return cfg, nil
}

func outputValidationText(result brewgo.ValidationResult, stdout io.Writer) int {
	if result.Valid {
		fmt.Fprintln(stdout, ValidationTextSuccess)
		return ExitCodeSuccess
	}
	fmt.Fprintf(stdout, ValidationTextFailure+FmtNewline, result.Kind, result.Message, result.Line)
	return ExitCodeValidationError
}

func outputValidationJSON(result brewgo.ValidationResult, stdout io.Writer) int {
	out := validationOutput{Valid: result.Valid}
	if !result.Valid {
		out.Kind = result.Kind
		out.Message = result.Message
		out.Line = result.Line
	}
	data, _ := json.MarshalIndent(out, "", "  ")
	fmt.Fprintln(stdout, string(data))
	if !result.Valid {
		return ExitCodeValidationError
	}
	return ExitCodeSuccess
}
