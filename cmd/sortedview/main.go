package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ArrayNone/sortedview/internal/config"
	"github.com/ArrayNone/sortedview/internal/document"
	"github.com/ArrayNone/sortedview/internal/maputils"
	"github.com/ArrayNone/sortedview/internal/prints"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
)

type CLIArguments struct {
	ConfigPath string
	Verb       string
	Nested     bool
	NoHeader   bool

	Quiet    bool
	NoColour bool

	ActionVersion       bool
	ActionHelp          bool
	ActionResetConfig   bool
	ActionGetConfigPath bool

	SkipValidation bool

	Inputs []string

	flags *pflag.FlagSet
}

const stdinName = "-"

var version = "dev"

func main() {
	args, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error:"), err.Error())
		os.Exit(int(BadUsage))
	}

	if args.NoColour {
		color.NoColor = true
	}

	if err := run(args, os.Stdin); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error:"), err.Error())

		var exitErr *ExitCodeError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		} else {
			os.Exit(1)
		}
	}
}

func run(cliArguments *CLIArguments, stdin io.Reader) (err error) {
	if cliArguments.ActionVersion {
		prints.Println("sortedview", version)
		return nil
	}

	if cliArguments.ActionHelp {
		printHelp()
		return nil
	}

	if cliArguments.Quiet {
		prints.IsQuiet = true
	}

	if cliArguments.ConfigPath == "" {
		defaultConfigPath, isCreated, err := config.GetOrCreateUserConfigFile()
		if err != nil {
			return &ExitCodeError{
				Err:  fmt.Errorf("can't retrieve config file: %w", err),
				Code: CannotRetrieveConfig,
			}
		}

		if isCreated && !cliArguments.ActionGetConfigPath {
			prints.Println("User config file does not exist, created a default on:", defaultConfigPath)
		}

		cliArguments.ConfigPath = defaultConfigPath
	}

	if cliArguments.ActionGetConfigPath {
		prints.Println(cliArguments.ConfigPath)
		return nil
	}

	if cliArguments.ActionResetConfig {
		err := config.CreateDefaultConfig(cliArguments.ConfigPath)
		if err != nil {
			return &ExitCodeError{
				Err:  fmt.Errorf("cannot reset config file at %s: %w", cliArguments.ConfigPath, err),
				Code: CannotRetrieveConfig,
			}
		}

		prints.Printf("Config file at %s has been reset.\n", cliArguments.ConfigPath)

		// Exit early, do not wait on stdin
		if len(cliArguments.Inputs) == 0 {
			return nil
		}
	}

	loadedConfig, err := config.DecodeConfigFile(cliArguments.ConfigPath)
	if err != nil {
		return &ExitCodeError{
			Err:  fmt.Errorf("cannot read config file at %s: %w", cliArguments.ConfigPath, err),
			Code: BadConfig,
		}
	}

	cliArguments.applyOverrides(loadedConfig)

	if !cliArguments.SkipValidation {
		configErrors := loadedConfig.Validate()

		if len(configErrors) > 0 {
			return &ExitCodeError{
				Err: errors.Join(
					fmt.Errorf("config file at %s is invalid", cliArguments.ConfigPath),
					errors.Join(configErrors...),
				),
				Code: BadConfig,
			}
		}
	}

	inputs := cliArguments.Inputs
	if len(inputs) == 0 {
		inputs = []string{stdinName}
	}

	var printed, failed int
	for _, input := range inputs {
		if err := printInput(loadedConfig, input, stdin); err != nil {
			prints.Warnf("Cannot print %s: %v\n", displayName(input), err)
			failed++
			continue
		}

		printed++
	}

	if printed == 0 {
		return &ExitCodeError{
			Err:  errors.New("no valid inputs"),
			Code: BadInput,
		}
	} else if failed > 0 {
		return fmt.Errorf("%d of %d input(s) could not be printed", failed, len(inputs))
	}

	return nil
}

func printInput(cfg *config.Config, input string, stdin io.Reader) error {
	var (
		data []byte
		err  error
	)

	if input == stdinName {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(input)
	}

	if err != nil {
		return err
	}

	doc, err := document.Decode(data, cfg.AcceptedFormats)
	if err != nil {
		return err
	}

	if cfg.Nested {
		doc = document.SortNested(doc)
	}

	if cfg.Header {
		prints.Println(color.BlueString(displayName(input) + ":"))
	}

	_, err = fmt.Fprintf(prints.Stdout, cfg.Directive()+"\n", document.View(doc))
	return err
}

func displayName(input string) string {
	if input == stdinName {
		return "<stdin>"
	}

	return input
}

func parseArgs(arguments []string) (args *CLIArguments, err error) {
	args = &CLIArguments{}

	flags := pflag.NewFlagSet("sortedview", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.Usage = printHelp

	flags.StringVarP(&args.ConfigPath, "config", "c", "", "Use a config file from this path instead from your config directory")
	flags.StringVarP(&args.Verb, "verb", "f", "", "Formatting directive for keys and values (example: --verb=#v)")
	flags.BoolVar(&args.Nested, "nested", true, "Print nested mappings sorted as well (use --nested=false to disable)")
	flags.BoolVar(&args.NoHeader, "no-header", false, "Do not print input names")
	flags.BoolVarP(&args.Quiet, "quiet", "q", false, "Suppress headers and notices")
	flags.BoolVar(&args.NoColour, "no-color", false, "Disable coloured output")
	flags.BoolVar(&args.NoColour, "no-colour", false, "Disable coloured output (alt)")

	flags.BoolVarP(&args.ActionVersion, "version", "v", false, "Print version and exit")
	flags.BoolVarP(&args.ActionHelp, "help", "h", false, "Print usage help and exit")
	flags.BoolVar(&args.ActionResetConfig, "reset-config", false, "Resets the config file at the user's config directory to default. If --config is provided, creates/resets the file at path instead")
	flags.BoolVar(&args.ActionGetConfigPath, "get-config-path", false, "Print the config path and exit")

	flags.BoolVar(&args.SkipValidation, "skip-validation", false, "[UNSUPPORTED] Skip config validation")

	if err := flags.Parse(arguments); err != nil {
		return nil, err
	}

	args.Inputs = flags.Args()
	args.flags = flags

	return args, nil
}

// Overrides values of `cfg` with flags that were passed explicitly.
func (cli *CLIArguments) applyOverrides(cfg *config.Config) {
	if cli.flags == nil {
		return
	}

	if cli.flags.Changed("verb") {
		cfg.Verb = config.Verb(strings.TrimPrefix(cli.Verb, "%"))
	}

	if cli.flags.Changed("nested") {
		cfg.Nested = cli.Nested
	}

	if cli.NoHeader {
		cfg.Header = false
	}
}

func printHelp() {
	blue := color.New(color.FgBlue).SprintFunc()

	fmt.Fprintf(prints.Stderr, `Print YAML or JSON mappings with their keys in sorted order.
%s sortedview [OPTIONS] [files]...

Reads standard input when no files are given or a file is "-".

%s
  -c, --config=PATH     Use a config file from this path instead from your config directory
  -f, --verb=VERB       Formatting directive for keys and values (see below)
      --nested[=BOOL]   Print nested mappings sorted as well
      --no-header       Do not print input names
  -q, --quiet           Suppress headers and notices
      --no-colo[u]r     Disable coloured output

  -v, --version         Print version and exit
  -h, --help            Print usage help and exit

      --reset-config    Resets the config file at the user's config directory to default. If --config is provided, creates/resets the file at path instead
      --get-config-path Print the config path and exit

%s
      --skip-validation [UNSUPPORTED] Skip config validation

%s
%s
`, blue("Usage:"), blue("Options:"), blue("Advanced options:"), blue("Verbs:"), verbList())
}

func verbList() string {
	var builder strings.Builder

	for _, verb := range maputils.SortedKeys(config.KnownVerbs) {
		fmt.Fprintf(&builder, "  %-20s%s\n", verb, config.KnownVerbs[verb])
	}

	return builder.String()
}
