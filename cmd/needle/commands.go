package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"needle/internal/platform/config"
	"needle/internal/services/api/search/domain"
	searchsvc "needle/internal/services/api/search/service"
)

// newApp builds the root command, limits come from NEEDLE_MAX_TEXT_BYTES and NEEDLE_MAX_NUMBERS
// every call returns a fresh tree, urfave/cli keeps parsed flag values on the command
func newApp() *cli.Command {
	return &cli.Command{
		Name:  "needle",
		Usage: "Locate substrings and subarray sums from the command line",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print results as JSON",
			},
		},
		Commands: []*cli.Command{
			newSubstringCommand(),
			newSubarrayCommand(),
			newFirstOfCommand(),
			newFirstWordCommand(),
		},
	}
}

func newSubstringCommand() *cli.Command {
	return &cli.Command{
		Name:      "substring",
		Aliases:   []string{"sub"},
		Usage:     "Print the byte offset of the first occurrence of PATTERN in TEXT",
		ArgsUsage: "TEXT PATTERN",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "normalize",
				Usage: "none, nfc, nfkc or fold applied to both arguments",
				Value: "none",
			},
		},
		Action: runSubstring,
	}
}

func newSubarrayCommand() *cli.Command {
	return &cli.Command{
		Name:      "subarray",
		Usage:     "Print the longest contiguous run of NUMBERS summing to --sum",
		ArgsUsage: "NUMBERS... (space or comma separated, use -- before negatives)",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "sum",
				Usage:    "target sum",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "strategy",
				Usage: "scan or prefix",
				Value: "scan",
			},
		},
		Action: runSubarray,
	}
}

func newFirstOfCommand() *cli.Command {
	return &cli.Command{
		Name:      "first-of",
		Usage:     "Print the leftmost match of any PATTERN in TEXT",
		ArgsUsage: "TEXT PATTERN...",
		Action:    runFirstOf,
	}
}

func newFirstWordCommand() *cli.Command {
	return &cli.Command{
		Name:      "first-word",
		Usage:     "Print TEXT up to the first space",
		ArgsUsage: "TEXT",
		Action:    runFirstWord,
	}
}

func service() *searchsvc.Svc {
	return searchsvc.New(searchsvc.LimitsFromConf(config.New().Prefix("NEEDLE_")), nil, nil)
}

func runSubstring(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 2 {
		return fmt.Errorf("substring needs TEXT and PATTERN, got %d arguments", cmd.Args().Len())
	}
	out, err := service().Substring(ctx, domain.SubstringInput{
		Text:      cmd.Args().Get(0),
		Pattern:   cmd.Args().Get(1),
		Normalize: cmd.String("normalize"),
	})
	if err != nil {
		return err
	}
	return render(cmd, out, func(w io.Writer) {
		if !out.Found {
			fmt.Fprintf(w, "not found (sentinel %d)\n", out.Sentinel)
			return
		}
		fmt.Fprintf(w, "position %d (rune %d)\n", out.Position, out.RunePosition)
	})
}

func runSubarray(ctx context.Context, cmd *cli.Command) error {
	nums, err := parseNumbers(cmd.Args().Slice())
	if err != nil {
		return err
	}
	out, err := service().Subarray(ctx, domain.SubarrayInput{
		Numbers:  nums,
		Sum:      int(cmd.Int("sum")),
		Strategy: cmd.String("strategy"),
	})
	if err != nil {
		return err
	}
	return render(cmd, out, func(w io.Writer) {
		if !out.Found {
			fmt.Fprintf(w, "not found (sentinel %d)\n", out.Sentinel)
			return
		}
		fmt.Fprintf(w, "start %d length %d: %v\n", out.Start, out.Length, out.Slice)
	})
}

func runFirstOf(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 2 {
		return fmt.Errorf("first-of needs TEXT and at least one PATTERN")
	}
	args := cmd.Args().Slice()
	out, err := service().FirstOf(ctx, domain.FirstOfInput{Text: args[0], Patterns: args[1:]})
	if err != nil {
		return err
	}
	return render(cmd, out, func(w io.Writer) {
		if !out.Found {
			fmt.Fprintf(w, "not found (sentinel %d)\n", out.Position)
			return
		}
		fmt.Fprintf(w, "position %d pattern %d %q\n", out.Position, out.PatternIndex, out.Pattern)
	})
}

func runFirstWord(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("first-word needs exactly one TEXT argument")
	}
	out, err := service().FirstWord(ctx, domain.FirstWordInput{Text: cmd.Args().First()})
	if err != nil {
		return err
	}
	return render(cmd, out, func(w io.Writer) { fmt.Fprintln(w, out.Word) })
}

// parseNumbers accepts ints as separate args, comma separated, or both
func parseNumbers(args []string) ([]int, error) {
	nums := []int{}
	for _, a := range args {
		for _, f := range strings.Split(a, ",") {
			f = strings.TrimSpace(f)
			if f == "" {
				continue
			}
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("invalid number %q", f)
			}
			nums = append(nums, n)
		}
	}
	return nums, nil
}

// render prints v as indented JSON under --json, otherwise calls text
func render(cmd *cli.Command, v any, text func(io.Writer)) error {
	w := cmd.Root().Writer
	if cmd.Bool("json") {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(w)
	return nil
}
