package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/cheesycod/luaup/syntax"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func cmdBench() *cobra.Command {
	var configPath string
	var repeat int

	cmd := &cobra.Command{
		Use:   "bench <file.luau>...",
		Short: "parse files repeatedly and report a timing table",
		RunE: func(cmd *cobra.Command, args []string) error {
			files := args
			runRepeat := repeat
			if configPath != "" {
				cfg, err := loadBenchConfig(configPath)
				if err != nil {
					return err
				}
				if len(files) == 0 {
					files = cfg.Files
				}
				if runRepeat <= 0 {
					runRepeat = cfg.Repeat
				}
			}
			if runRepeat <= 0 {
				runRepeat = 1
			}
			if len(files) == 0 {
				return fail("no files given, and none configured")
			}

			runID := uuid.NewString()
			slog.Info("starting bench run", "run_id", runID, "files", len(files), "repeat", runRepeat)

			w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "name\tsize KB\ttime ms\tspeed KB/s\tresult")
			for _, path := range files {
				row, err := benchOne(path, runRepeat)
				if err != nil {
					fmt.Fprintf(w, "%s\t-\t-\t-\t%s\n", path, err)
					continue
				}
				fmt.Fprintln(w, row)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "TOML config with repeat/warmup/files")
	cmd.Flags().IntVar(&repeat, "repeat", 0, "parse each file this many times")
	return cmd
}

// benchOne parses path repeat times and returns a tab-separated result row
// in the "name | size KB | time ms | speed KB/s | result" shape.
func benchOne(path string, repeat int) (string, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	var elapsed time.Duration
	var parseErr error
	for i := 0; i < repeat; i++ {
		start := time.Now()
		_, parseErr = syntax.Parse(source)
		elapsed += time.Since(start)
		if parseErr != nil {
			break
		}
	}

	sizeKB := float64(len(source)) / 1024
	result := "ok"
	if parseErr != nil {
		result = "error: " + parseErr.Error()
	}

	avg := elapsed / time.Duration(max(repeat, 1))
	speed := 0.0
	if avg > 0 {
		speed = sizeKB / avg.Seconds()
	}

	return fmt.Sprintf("%s\t%s\t%.3f\t%s\t%s",
		path,
		humanize.CommafWithDigits(sizeKB, 1),
		float64(avg.Microseconds())/1000,
		humanize.CommafWithDigits(speed, 1),
		result,
	), nil
}
