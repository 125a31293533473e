package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/cheesycod/luaup/syntax"
	"github.com/spf13/cobra"
)

func cmdParse() *cobra.Command {
	var checkRoundTrip bool

	cmd := &cobra.Command{
		Use:   "parse <file.luau>...",
		Short: "parse one or more Luau source files and report success or the first error",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := false
			for _, path := range args {
				if err := parseOne(path, checkRoundTrip); err != nil {
					fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
					failed = true
					continue
				}
				fmt.Printf("%s: ok\n", path)
			}
			if failed {
				return fail("one or more files failed to parse")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&checkRoundTrip, "check-roundtrip", false, "verify print(parse(s)) == s")
	return cmd
}

// errSpan extracts the span of a *syntax.LexError or *syntax.ParseError,
// the two concrete error types Parse can return.
func errSpan(err error) (syntax.Span, bool) {
	switch e := err.(type) {
	case *syntax.LexError:
		return e.Span, true
	case *syntax.ParseError:
		return e.Span, true
	default:
		return syntax.Span{}, false
	}
}

func parseOne(path string, checkRoundTrip bool) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	slog.Debug("parsing", "path", path, "bytes", len(source))

	cst, parseErr := syntax.Parse(source)
	if parseErr != nil {
		span, ok := errSpan(parseErr)
		if !ok {
			return parseErr
		}
		line, col := locate(source, span.Start)
		return fmt.Errorf("%d:%d: %w\n%s", line, col, parseErr, snippet(source, span.Start, parseErr.Error()))
	}

	if checkRoundTrip {
		printed := syntax.Print(cst)
		if printed != string(source) {
			return fmt.Errorf("round trip mismatch: printed output differs from source")
		}
	}
	return nil
}
