package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/brewgo/brewgo"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type runConfig struct {
	programPath string
	configPath  string
	storage     string
	trace       bool
}

func runRun(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseRunFlags(args)
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

	deployConfig := brewgo.DefaultConfig()
	if cfg.configPath != "" {
		deployConfig, err = brewgo.LoadConfigFile(cfg.configPath)
		if err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
			return ExitCodeInputError
		}
	}
	if cfg.storage != "" {
		deployConfig.Storage = cfg.storage
	}
	if cfg.trace {
		deployConfig.Trace = true
	}

	storage, err := brewgo.OpenStorage(deployConfig.Storage, deployConfig)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgEngineConstructed, err)
		return ExitCodeError
	}
	defer storage.Close()

	host := brewgo.NewStdioHost(stdin, stdout, stderr)
	opts := []brewgo.Option{
		brewgo.WithHost(host),
		brewgo.WithStorage(storage),
		brewgo.WithTrace(deployConfig.Trace),
	}
	if deployConfig.Trace {
		core := zapcore.NewCore(zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), zapcore.AddSync(stderr), zapcore.DebugLevel)
		opts = append(opts, brewgo.WithLogger(zap.New(core)))
	}
	engine, err := brewgo.New(opts...)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgEngineConstructed, err)
		return ExitCodeError
	}

	engine.Run(program)
	return ExitCodeSuccess
}

func decodeProgram(data []byte) ([]brewgo.Node, error) {
	var program []brewgo.Node
	if err := json.Unmarshal(data, &program); err != nil {
		return nil, err
	}
	return program, nil
}

func parseRunFlags(args []string) (*runConfig, error) {
	fs := flag.NewFlagSet(CmdNameRun, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &runConfig{}
	fs.StringVar(&cfg.programPath, FlagProgram, "", "")
	fs.StringVar(&cfg.programPath, FlagProgramShort, "", "")
	fs.StringVar(&cfg.configPath, FlagConfig, "", "")
	fs.StringVar(&cfg.configPath, FlagConfigShort, "", "")
	fs.StringVar(&cfg.storage, FlagStorage, "", "")
	fs.BoolVar(&cfg.trace, FlagTrace, false, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.programPath == "" {
		return nil, errors.New(ErrMsgMissingProgram)
	}
	return cfg, nil
}
