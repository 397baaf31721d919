// Package main provides an interactive check of whether a hexadecimal value lies in an address range.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hexrange/hexrange-go"
	"github.com/hexrange/hexrange-go/config"
	"github.com/hexrange/hexrange-go/payload"
	"github.com/pkg/errors"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type runOptions struct {
	Range      string
	Probe      string
	Profile    string
	Strict     bool
	JSONOutput bool
}

func run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	environment, err := config.ParseEnv()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	var options runOptions
	flags := flag.NewFlagSet("hexrange", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&options.Range, "range", "", "hexadecimal range to check against, e.g. 7ffd76d19000-7ffd76d3a000 (prompted when empty)")
	flags.StringVar(&options.Probe, "probe", "", "hexadecimal value to check, e.g. 7ffd76d35500 (prompted when empty)")
	flags.StringVar(&options.Profile, "profile", environment.Profile, "configuration profile (default: HEXRANGE_PROFILE or default)")
	flags.BoolVar(&options.Strict, "strict", false, "report a range without a hyphen as an error")
	flags.BoolVar(&options.JSONOutput, "json", false, "output a JSON result")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	profile, err := loadProfile(options.Profile, environment)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if options.Strict {
		profile.Strict = true
	}

	reader := bufio.NewReader(stdin)
	if options.Range == "" {
		if options.Range, err = prompt(reader, stdout, profile.RangePrompt); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}
	if options.Probe == "" {
		if options.Probe, err = prompt(reader, stdout, profile.ProbePrompt); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}

	checker := hexrange.Checker{Strict: profile.Strict}
	result := payload.CheckResult{Range: options.Range, Probe: options.Probe}
	if fields := strings.Fields(options.Range); len(fields) > 1 {
		// A pasted maps line is reported by its address column.
		result.Range = fields[0]
		result.Within, err = checker.CheckMapsLine(options.Range, options.Probe)
	} else {
		result.Within, err = checker.Check(options.Range, options.Probe)
	}
	if err != nil {
		result.Error = err.Error()
	}

	if options.JSONOutput {
		if encodeErr := payload.Encode(stdout, result); encodeErr != nil {
			fmt.Fprintf(stderr, "Error: %v\n", encodeErr)
			return 1
		}
	} else if err == nil {
		fmt.Fprintln(stdout, result.Message())
	}

	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func loadProfile(name string, environment config.Env) (config.Profile, error) {
	profile, err := config.LoadProfileByName(name)
	if err != nil {
		return config.Profile{}, err
	}

	return environment.Apply(*profile), nil
}

func prompt(reader *bufio.Reader, stdout io.Writer, message string) (string, error) {
	fmt.Fprint(stdout, message)

	line, err := reader.ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		return "", errors.Wrap(err, "failed to read input")
	}

	return strings.TrimSpace(line), nil
}
