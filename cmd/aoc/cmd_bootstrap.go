package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"text/template"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/NickG123/AdventOfCode2021/aocsite"
	"github.com/NickG123/AdventOfCode2021/config"
)

var log = commonlog.GetLogger("bootstrap")

var dayTemplate = template.Must(template.New("day").Parse(`// Package day{{.Day}} solves day {{.DayNum}}.
package day{{.Day}}

import (
	"github.com/NickG123/AdventOfCode2021/day"
	"github.com/NickG123/AdventOfCode2021/parse"
)

// Run solves day {{.DayNum}}.
var Run = parse.Parse(parse.Lines, solve)

func solve(lines []string) day.Result {
	return day.Result{}
}
`))

func newBootstrapCmd() *cobra.Command {
	var skipInput bool

	cmd := &cobra.Command{
		Use:   "bootstrap <day>",
		Short: "Create a skeleton package for a day and download its input",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dayNum, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid day %q", args[0])
			}
			dayStr := fmt.Sprintf("%02d", dayNum)

			cfg, err := config.Load(".")
			if err != nil {
				return err
			}

			dir := filepath.Join("days", "day"+dayStr)
			path := filepath.Join(dir, "day"+dayStr+".go")
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}

			f, err := os.Create(path)
			if err != nil {
				return err
			}
			defer f.Close()

			data := struct {
				Day    string
				DayNum int
			}{Day: dayStr, DayNum: dayNum}
			if err := dayTemplate.Execute(f, data); err != nil {
				return err
			}
			log.Noticef("created %s; remember to register it in days/days.go", path)

			if skipInput {
				return nil
			}
			client := aocsite.NewClient(cfg.Session)
			return client.FetchInputFile(cfg.Year, dayNum, cfg.InputPath(dayNum, "input"))
		},
	}

	cmd.Flags().BoolVar(&skipInput, "skip-input", false, "do not download the puzzle input")

	return cmd
}
