// ABOUTME: CLI commands for calendar views.
// ABOUTME: Renders a Monday-first week, a month grid, or a year summary of trained days.
package main

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/lift/internal/calendar"
)

var (
	calendarDate  string
	calendarYear  int
	calendarMonth int
)

var calendarCmd = &cobra.Command{
	Use:     "calendar",
	Aliases: []string{"cal"},
	Short:   "Show training days on a calendar",
}

var calendarWeekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show one week, Monday first",
	Long: `Show the seven days of a week with the days you trained marked.

EXAMPLES:

  lift calendar week
  lift calendar week --date 2024-03-06`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ref := time.Now()
		if calendarDate != "" {
			var err error
			if ref, err = calendar.ParseDate(calendarDate); err != nil {
				return fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", calendarDate)
			}
		}

		days, err := calendar.NewService(store).Week(cmd.Context(), ref)
		if err != nil {
			return fmt.Errorf("failed to build week: %w", err)
		}

		out := cmd.OutOrStdout()
		for _, d := range days {
			fmt.Fprintf(out, "%s %s  %s\n", d.Weekday.String()[:3], d.Date, dayMark(d))
		}
		return nil
	},
}

var calendarMonthCmd = &cobra.Command{
	Use:   "month",
	Short: "Show a month grid",
	Long: `Show a month as a Monday-first grid. Trained days are marked with *.

EXAMPLES:

  lift calendar month
  lift calendar month --year 2024 --month 3`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		year, month := now.Year(), now.Month()
		if cmd.Flags().Changed("year") {
			year = calendarYear
		}
		if cmd.Flags().Changed("month") {
			if calendarMonth < 1 || calendarMonth > 12 {
				return fmt.Errorf("invalid month: %d", calendarMonth)
			}
			month = time.Month(calendarMonth)
		}

		days, err := calendar.NewService(store).Month(cmd.Context(), year, month)
		if err != nil {
			return fmt.Errorf("failed to build month: %w", err)
		}
		printMonth(cmd.OutOrStdout(), year, month, days)
		return nil
	},
}

var calendarYearCmd = &cobra.Command{
	Use:   "year",
	Short: "List training days in a year",
	Long: `List every training day in a year, one line per month.

EXAMPLES:

  lift calendar year
  lift calendar year --year 2024`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		year := time.Now().Year()
		if cmd.Flags().Changed("year") {
			year = calendarYear
		}

		trained, err := calendar.NewService(store).WorkoutDays(cmd.Context(), year)
		if err != nil {
			return fmt.Errorf("failed to load year: %w", err)
		}
		printYear(cmd.OutOrStdout(), year, trained)
		return nil
	},
}

func printYear(w io.Writer, year int, trained map[string]bool) {
	dates := make([]string, 0, len(trained))
	for d := range trained {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	fmt.Fprintf(w, "%s: %d training days\n", color.CyanString("%d", year), len(dates))
	byMonth := make(map[time.Month][]string)
	for _, d := range dates {
		t, err := calendar.ParseDate(d)
		if err != nil {
			continue
		}
		byMonth[t.Month()] = append(byMonth[t.Month()], fmt.Sprintf("%02d", t.Day()))
	}
	for m := time.January; m <= time.December; m++ {
		days := byMonth[m]
		if len(days) == 0 {
			continue
		}
		fmt.Fprintf(w, "  %s %2d  %s\n", m.String()[:3], len(days), color.GreenString(strings.Join(days, " ")))
	}
}

func dayMark(d calendar.Day) string {
	switch {
	case d.HasWorkout && d.IsToday:
		return color.GreenString("trained (today)")
	case d.HasWorkout:
		return color.GreenString("trained")
	case d.IsToday:
		return color.New(color.Faint).Sprint("today")
	}
	return ""
}

func printMonth(w io.Writer, year int, month time.Month, days []calendar.Day) {
	fmt.Fprintf(w, "%s %d\n", month, year)
	fmt.Fprintln(w, " Mo  Tu  We  Th  Fr  Sa  Su")

	if len(days) == 0 {
		return
	}
	lead := (int(days[0].Weekday) + 6) % 7
	for i := 0; i < lead; i++ {
		fmt.Fprint(w, "    ")
	}

	col := lead
	for i, d := range days {
		cell := fmt.Sprintf("%3d", i+1)
		if d.HasWorkout {
			cell = color.GreenString("%3d*", i+1)
		} else {
			cell += " "
		}
		fmt.Fprint(w, cell)
		col++
		if col == 7 {
			fmt.Fprintln(w)
			col = 0
		}
	}
	if col != 0 {
		fmt.Fprintln(w)
	}
}

func init() {
	calendarWeekCmd.Flags().StringVarP(&calendarDate, "date", "d", "", "any date in the week (default: today)")
	calendarMonthCmd.Flags().IntVar(&calendarYear, "year", 0, "year (default: current)")
	calendarMonthCmd.Flags().IntVar(&calendarMonth, "month", 0, "month 1-12 (default: current)")
	calendarYearCmd.Flags().IntVar(&calendarYear, "year", 0, "year (default: current)")

	calendarCmd.AddCommand(calendarWeekCmd, calendarMonthCmd, calendarYearCmd)
	rootCmd.AddCommand(calendarCmd)
}
