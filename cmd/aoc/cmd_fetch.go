package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/NickG123/AdventOfCode2021/aocsite"
	"github.com/NickG123/AdventOfCode2021/config"
)

func newFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch <day>",
		Short: "Download the puzzle input for a day",
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

			client := aocsite.NewClient(cfg.Session)
			return client.FetchInputFile(cfg.Year, dayNum, cfg.InputPath(dayNum, "input"))
		},
	}

	return cmd
}
