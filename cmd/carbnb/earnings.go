// Earnings commands report revenue aggregates over rental orders.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/carbnb/carbnb/pkg/types"
)

var earningsCmd = &cobra.Command{
	Use:   "earnings",
	Short: "Report rental earnings",
}

var earningsYearCmd = &cobra.Command{
	Use:   "year <yyyy>",
	Short: "Total earnings from orders picked up in a calendar year",
	Args:  cobra.ExactArgs(1),
	RunE:  runEarningsYear,
}

var earningsRangeCmd = &cobra.Command{
	Use:   "range --start <yyyy-mm-dd> --end <yyyy-mm-dd>",
	Short: "Total earnings from orders picked up strictly inside a date range",
	Args:  cobra.NoArgs,
	RunE:  runEarningsRange,
}

var (
	earningsStartFlag string
	earningsEndFlag   string
)

func init() {
	earningsRangeCmd.Flags().StringVar(&earningsStartFlag, "start", "", "range start date (yyyy-mm-dd)")
	earningsRangeCmd.Flags().StringVar(&earningsEndFlag, "end", "", "range end date (yyyy-mm-dd)")
	_ = earningsRangeCmd.MarkFlagRequired("start")
	_ = earningsRangeCmd.MarkFlagRequired("end")

	earningsCmd.AddCommand(earningsYearCmd)
	earningsCmd.AddCommand(earningsRangeCmd)
}

func runEarningsYear(cmd *cobra.Command, args []string) error {
	year, err := strconv.Atoi(args[0])
	if err != nil || len(args[0]) != 4 {
		return fmt.Errorf("%w: year %q must be a four-digit number", types.ErrValidation, args[0])
	}

	svc, detach, err := attachService()
	if err != nil {
		return err
	}
	defer detach()

	total, err := svc.EarningsYear(year)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "earnings for %d: %d\n", year, total)
	return nil
}

func runEarningsRange(cmd *cobra.Command, args []string) error {
	start, err := parseEarningsDate(earningsStartFlag)
	if err != nil {
		return err
	}
	end, err := parseEarningsDate(earningsEndFlag)
	if err != nil {
		return err
	}

	svc, detach, err := attachService()
	if err != nil {
		return err
	}
	defer detach()

	total, err := svc.EarningsRange(start, end)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "earnings from %s to %s: %d\n",
		earningsStartFlag, earningsEndFlag, total)
	return nil
}

// parseEarningsDate accepts a bare date and anchors it at midnight UTC.
func parseEarningsDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q must look like 2006-01-02", types.ErrValidation, value)
	}
	return t, nil
}
