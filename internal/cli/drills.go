package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/kata/internal/domain"
	"github.com/aalvaropc/kata/internal/kata"
)

// drillCmds exposes each exercise directly, one invocation per call.
func drillCmds() []*cobra.Command {
	return []*cobra.Command{
		formatCmd(),
		filterCmd(),
		concatCmd(),
		vehicleCmd(),
		processCmd(),
		priciestCmd(),
		dayCmd(),
		squareCmd(),
	}
}

func formatCmd() *cobra.Command {
	var lower bool

	c := &cobra.Command{
		Use:   "format <text>...",
		Short: "Upper-case text, or lower-case it with --lower",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lc := domain.DefaultLetterCase
			if lower {
				lc = domain.Lower
			}
			fmt.Fprintln(cmd.OutOrStdout(), kata.FormatString(strings.Join(args, " "), lc))
			return nil
		},
	}

	c.Flags().BoolVar(&lower, "lower", false, "Lower-case instead of upper-case")
	return c
}

func filterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "filter <title:rating>...",
		Short: fmt.Sprintf("Keep items rated %d or higher", kata.MinRating),
		RunE: func(cmd *cobra.Command, args []string) error {
			items := make([]domain.RatedItem, 0, len(args))
			for _, a := range args {
				title, rating, err := splitPair(a)
				if err != nil {
					return err
				}
				items = append(items, domain.RatedItem{Title: title, Rating: rating})
			}

			out := cmd.OutOrStdout()
			for _, it := range kata.FilterByRating(items) {
				fmt.Fprintf(out, "%s (%s)\n", it.Title, formatNumber(it.Rating))
			}
			return nil
		},
	}
}

func concatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "concat <a,b,...>...",
		Short: "Concatenate comma-separated sequences in order",
		RunE: func(cmd *cobra.Command, args []string) error {
			seqs := make([][]string, 0, len(args))
			for _, a := range args {
				if a == "" {
					seqs = append(seqs, nil)
					continue
				}
				seqs = append(seqs, strings.Split(a, ","))
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(kata.Concat(seqs...), ","))
			return nil
		},
	}
}

func vehicleCmd() *cobra.Command {
	var maker string
	var year int
	var model string

	c := &cobra.Command{
		Use:   "vehicle",
		Short: "Print vehicle info, plus the model line for a car",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if model == "" {
				return domain.NewVehicle(maker, year).PrintInfo(out)
			}
			car := domain.NewCar(maker, year, model)
			if err := car.PrintInfo(out); err != nil {
				return err
			}
			return car.PrintModel(out)
		},
	}

	c.Flags().StringVar(&maker, "make", "", "Manufacturer (required)")
	c.Flags().IntVar(&year, "year", 0, "Model year (required)")
	c.Flags().StringVar(&model, "model", "", "Car model (optional)")
	_ = c.MarkFlagRequired("make")
	_ = c.MarkFlagRequired("year")
	return c
}

func processCmd() *cobra.Command {
	var asText bool

	c := &cobra.Command{
		Use:   "process <value>",
		Short: "Double a number, or count the characters of text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatNumber(kata.ProcessValue(parseValue(args[0], asText))))
			return nil
		},
	}

	c.Flags().BoolVar(&asText, "text", false, "Treat the argument as text even if it looks numeric")
	return c
}

func priciestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "priciest <name:price>...",
		Short: "Print the most expensive product (first one wins ties)",
		RunE: func(cmd *cobra.Command, args []string) error {
			products := make([]domain.Product, 0, len(args))
			for _, a := range args {
				name, price, err := splitPair(a)
				if err != nil {
					return err
				}
				products = append(products, domain.Product{Name: name, Price: price})
			}

			out := cmd.OutOrStdout()
			p, ok := kata.MostExpensive(products)
			if !ok {
				fmt.Fprintln(out, "(no products)")
				return nil
			}
			fmt.Fprintf(out, "%s (%s)\n", p.Name, formatNumber(p.Price))
			return nil
		},
	}
}

func dayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "day <day>",
		Short: "Classify a day (name or 0-6 from Monday) as Weekday or Weekend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := domain.ParseDay(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), kata.DayType(d))
			return nil
		},
	}
}

func squareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "square [--] <n>",
		Short: "Square a number after a fixed delay",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid number %q", args[0])
			}
			v, err := kata.SquareAsync(n).Await(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatNumber(v))
			return nil
		},
	}
}

// splitPair parses "label:number", splitting on the last colon so labels may contain one.
func splitPair(s string) (string, float64, error) {
	i := strings.LastIndex(s, ":")
	if i <= 0 {
		return "", 0, fmt.Errorf("expected label:number, got %q", s)
	}
	n, err := strconv.ParseFloat(s[i+1:], 64)
	if err != nil {
		return "", 0, fmt.Errorf("invalid number in %q", s)
	}
	return s[:i], n, nil
}

// parseValue reads finite numbers as Number; anything else, including words
// ParseFloat accepts such as "nan" or "inf", stays Text.
func parseValue(s string, asText bool) domain.Value {
	if !asText {
		if n, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(n, 0) && !math.IsNaN(n) {
			return domain.Number(n)
		}
	}
	return domain.Text(s)
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
