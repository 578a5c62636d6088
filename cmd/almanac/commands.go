package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/evan-taojiangcb/huangli-programmer/internal/adapters/cache"
	"github.com/evan-taojiangcb/huangli-programmer/internal/adapters/clock"
	"github.com/evan-taojiangcb/huangli-programmer/internal/app"
	"github.com/evan-taojiangcb/huangli-programmer/internal/domain"
	"github.com/evan-taojiangcb/huangli-programmer/internal/ports"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "almanac",
		Short:         "Programmer's almanac: today's 宜 and 忌 for your birth date",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newFortuneCmd(clock.System{}), newPoolsCmd(), newVersionCmd())
	return root
}

type fortuneOptions struct {
	name     string
	birth    string
	gender   string
	date     string
	timezone string
	asJSON   bool
}

func newFortuneCmd(clk ports.Clock) *cobra.Command {
	var opts fortuneOptions

	cmd := &cobra.Command{
		Use:   "fortune",
		Short: "Read the fortune for a birth date",
		Example: `  almanac fortune --birth 1999-09-09 --name 老黄
  almanac fortune --birth 2000-01-01 --date 2024-02-10 --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFortune(cmd, clk, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.birth, "birth", "", "birth date, YYYY-MM-DD")
	f.StringVar(&opts.name, "name", "", "display name (道号)")
	f.StringVar(&opts.gender, "gender", "", "male, female or other")
	f.StringVar(&opts.date, "date", "", "evaluation day, YYYY-MM-DD (default today)")
	f.StringVar(&opts.timezone, "tz", "Local", "time zone that decides which day is today")
	f.BoolVar(&opts.asJSON, "json", false, "print JSON instead of the scroll")
	_ = cmd.MarkFlagRequired("birth")

	return cmd
}

func runFortune(cmd *cobra.Command, clk ports.Clock, opts fortuneOptions) error {
	loc, err := time.LoadLocation(opts.timezone)
	if err != nil {
		return fmt.Errorf("invalid --tz %q: %w", opts.timezone, err)
	}

	svc := app.NewAlmanacService(cache.NewMemoryStore(1, nil), clk, loc)
	resp, err := svc.ReadFortune(cmd.Context(), app.ReadFortuneRequest{
		Name:      opts.name,
		BirthDate: opts.birth,
		Gender:    opts.gender,
		Date:      opts.date,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.asJSON {
		return writeJSON(out, resp)
	}
	_, err = fmt.Fprintln(out, renderScroll(resp))
	return err
}

type jsonReading struct {
	Name      string         `json:"name,omitempty"`
	Gender    domain.Gender  `json:"gender"`
	BirthDate string         `json:"birth_date"`
	Date      string         `json:"date"`
	CoderDay  string         `json:"coder_day,omitempty"`
	Seed      int            `json:"seed"`
	Fortune   domain.Fortune `json:"fortune"`
	ShareText string         `json:"share_text"`
}

func writeJSON(w io.Writer, resp app.ReadFortuneResponse) error {
	r := resp.Reading
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonReading{
		Name:      r.Name,
		Gender:    r.Gender,
		BirthDate: r.Birth.String(),
		Date:      r.Date.String(),
		CoderDay:  r.CoderDay,
		Seed:      r.Seed,
		Fortune:   r.Fortune,
		ShareText: resp.ShareText,
	})
}

func newPoolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pools",
		Short: "List every activity, message and language a fortune can draw",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			sections := []struct {
				title string
				items []string
			}{
				{"宜", domain.SuitableActivities()},
				{"忌", domain.UnsuitableActivities()},
				{"玄学预言", domain.MysticMessages()},
				{"幸运语言", domain.LuckyLanguages()},
			}
			for i, s := range sections {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "%s (%d)\n", s.title, len(s.items))
				fmt.Fprintln(out, "  "+strings.Join(s.items, "\n  "))
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
