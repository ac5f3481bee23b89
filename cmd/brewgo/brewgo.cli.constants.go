package main

// Command names
const (
	CmdNameRun      = "run"
	CmdNameValidate = "validate"
	CmdNameVersion  = "version"
	CmdNameHelp     = "help"
)

// Flag names - long form
const (
	FlagProgram = "program"
	FlagFormat  = "format"
	FlagStorage = "storage"
	FlagConfig  = "config"
	FlagTrace   = "trace"
)

// Flag names - short form
const (
	FlagProgramShort = "p"
	FlagFormatShort  = "F"
	FlagConfigShort  = "c"
)

// Flag default values
const (
	FlagDefaultFormat = "text"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Exit codes
const (
	ExitCodeSuccess         = 0
	ExitCodeError           = 1
	ExitCodeUsageError      = 2
	ExitCodeValidationError = 3
	ExitCodeInputError      = 4
)

// Input source indicators
const (
	InputSourceStdin  = "-"
	OutputSourceStdio = "-"
)

// Error messages - ALL must be constants
const (
	ErrMsgMissingProgram    = "program source required"
	ErrMsgReadFileFailed    = "failed to read file"
	ErrMsgInvalidJSON       = "invalid program JSON"
	ErrMsgInvalidFormat     = "invalid output format"
	ErrMsgUnknownCommand    = "unknown command"
	ErrMsgEngineConstructed = "failed to construct engine"
)

// Help text templates
const (
	HelpMainUsage = `brewgo - Brewin++/Brewin# tree-walking interpreter

Usage:
    brewgo <command> [options]

Commands:
    run         Load and execute a parsed program
    validate    Load a program and report class/type errors without running it
    version     Show version information
    help        Show help for a command

Use "brewgo help <command>" for more information about a command.`

	HelpRunUsage = `Load and execute a parsed program

Usage:
    brewgo run [options]

Options:
    -p, --program <file>   Program JSON file (use "-" for stdin)
    -c, --config <file>    YAML deployment configuration file
    --storage <backend>    Specialization storage: memory, filesystem, postgres, cached
    --trace                Log class loading and template specialization at debug level

Examples:
    brewgo run -p program.json
    cat program.json | brewgo run -p -`

	HelpValidateUsage = `Load a program and report errors without executing it

Usage:
    brewgo validate [options]

Options:
    -p, --program <file>   Program JSON file (use "-" for stdin)
    -F, --format <format>  Output format: text, json (default: text)

Examples:
    brewgo validate -p program.json
    brewgo validate -p program.json -F json`

	HelpVersionUsage = `Show version information

Usage:
    brewgo version [options]

Options:
    -F, --format <format>   Output format: text, json (default: text)`

	HelpHelpUsage = `Show help for a command

Usage:
    brewgo help [command]

Commands:
    run         Show help for run command
    validate    Show help for validate command
    version     Show help for version command`
)

// Version output format templates
const (
	VersionTextTemplate = "brewgo version %s\nGo: %s"
	VersionUnknown      = "unknown"
)

// Validation output format templates
const (
	ValidationTextSuccess = "Program is valid"
	ValidationTextFailure = "[%s] %s at line %d"
)

// Format string constants
const (
	FmtErrorWithDetail = "%s: %s\n"
	FmtErrorWithCause  = "%s: %v\n"
	FmtNewline         = "\n"
)

// File permission constant
const (
	FilePermissions = 0644
)

// CLI metadata
const (
	CLIName        = "brewgo"
	CLIDescription = "Brewin++/Brewin# tree-walking interpreter"
)
