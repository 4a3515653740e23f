package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/NickG123/AdventOfCode2021/aocsite"
	"github.com/NickG123/AdventOfCode2021/config"
	"github.com/NickG123/AdventOfCode2021/days"
)

func newRunCmd() *cobra.Command {
	var inputFile string

	cmd := &cobra.Command{
		Use:   "run <day>",
		Short: "Run the solution for a day, downloading its input if missing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dayNum, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid day %q", args[0])
			}

			cfg, err := config.Load(".")
			if err != nil {
				return err
			}

			solution, ok := days.Lookup(dayNum)
			if !ok {
				return fmt.Errorf("no solution registered for day %d", dayNum)
			}

			path := cfg.InputPath(dayNum, inputFile)
			if inputFile == "input" {
				if _, err := os.Stat(path); err != nil {
					client := aocsite.NewClient(cfg.Session)
					if err := client.FetchInputFile(cfg.Year, dayNum, path); err != nil {
						return err
					}
				}
			}

			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			result, err := solution(f)
			if err != nil {
				return fmt.Errorf("day %d: %w", dayNum, err)
			}
			fmt.Println(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input-file", "i", "input", "input file name within the day's directory")

	return cmd
}
