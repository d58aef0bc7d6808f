/*
Copyright © 2025 Hanulsoft <dev@hanulsoft.dev>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	adapterrepo "github.com/hanulsoft/sajunet/internal/adapter/repository"
	"github.com/hanulsoft/sajunet/internal/entity"
	"github.com/hanulsoft/sajunet/internal/infrastructure/config"
	"github.com/hanulsoft/sajunet/internal/infrastructure/database"
	"github.com/hanulsoft/sajunet/internal/usecase"
)

// chartCmd represents the chart command
var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Compute a single chart and print it as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		conns, cleanup, err := database.NewConnections(cfg)
		if err != nil {
			return fmt.Errorf("open databases: %w", err)
		}
		defer cleanup()

		engine := usecase.NewChartUsecase(
			adapterrepo.NewCalendarRepository(conns.Calendar),
			adapterrepo.NewSolarTermRepository(conns.Season),
			usecase.Defaults{
				PivotMinutes:      cfg.Engine.PivotMinutes,
				TZAdjustMinutes:   cfg.Engine.TZAdjustMinutes,
				TermAdjustMinutes: cfg.Engine.TermAdjustMinutes,
				Rounding:          cfg.Engine.RoundingMode(),
			},
		)

		req, err := chartRequestFromFlags(cmd)
		if err != nil {
			return err
		}

		chart, err := engine.ComputeChart(ctx, req)
		if err != nil {
			return fmt.Errorf("compute chart: %w", err)
		}

		out, err := json.MarshalIndent(chart, "", "  ")
		if err != nil {
			return fmt.Errorf("encode chart: %w", err)
		}
		cmd.Println(string(out))
		return nil
	},
}

func chartRequestFromFlags(cmd *cobra.Command) (entity.ChartRequest, error) {
	flags := cmd.Flags()

	var req entity.ChartRequest
	req.Year, _ = flags.GetInt("year")
	req.Month, _ = flags.GetInt("month")
	req.Day, _ = flags.GetInt("day")
	req.Hour, _ = flags.GetInt("hour")
	req.Minute, _ = flags.GetInt("minute")
	req.LeapMonth, _ = flags.GetBool("leap")

	calendar, _ := flags.GetString("calendar")
	req.Calendar = entity.ParseCalendarKind(calendar)

	sex, _ := flags.GetString("sex")
	req.Sex = entity.ParseSex(sex)

	// Engine overrides only when the flag was given; the configured
	// defaults apply otherwise.
	overrides := []struct {
		name string
		dst  **int
	}{
		{"pivot", &req.Options.PivotMinutes},
		{"tz-adjust", &req.Options.TZAdjustMinutes},
		{"term-adjust", &req.Options.TermAdjustMinutes},
	}
	for _, o := range overrides {
		if flags.Changed(o.name) {
			v, _ := flags.GetInt(o.name)
			*o.dst = &v
		}
	}
	if flags.Changed("rounding") {
		rounding, _ := flags.GetString("rounding")
		req.Options.Rounding = entity.ParseRoundingMode(rounding)
	}

	return req, nil
}

func init() {
	rootCmd.AddCommand(chartCmd)

	chartCmd.Flags().Int("year", 0, "birth year")
	chartCmd.Flags().Int("month", 0, "birth month")
	chartCmd.Flags().Int("day", 0, "birth day")
	chartCmd.Flags().Int("hour", 0, "birth hour (0-23)")
	chartCmd.Flags().Int("minute", 0, "birth minute")
	chartCmd.Flags().String("calendar", "solar", "input calendar: solar or lunar")
	chartCmd.Flags().Bool("leap", false, "lunar date falls in a leap month")
	chartCmd.Flags().String("sex", "", "sex: male or female")
	chartCmd.Flags().Int("pivot", 0, "hour pillar pivot offset in minutes")
	chartCmd.Flags().Int("tz-adjust", 0, "birth time adjustment in minutes")
	chartCmd.Flags().Int("term-adjust", 0, "solar term timestamp adjustment in minutes")
	chartCmd.Flags().String("rounding", "", "start age rounding: floor, ceil or round")

	_ = chartCmd.MarkFlagRequired("year")
	_ = chartCmd.MarkFlagRequired("month")
	_ = chartCmd.MarkFlagRequired("day")
	_ = chartCmd.MarkFlagRequired("sex")
}
