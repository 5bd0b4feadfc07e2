package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/imorrison/euler/internal/calculation"
	"github.com/imorrison/euler/internal/domain"
	"github.com/imorrison/euler/pkg/decimal"
	"github.com/spf13/cobra"
)

// parseWholeFlag reads an integer flag that may be written in exponent form.
func parseWholeFlag(name, value string) (int64, error) {
	w, err := decimal.NewWholeFromString(value)
	if err != nil {
		return 0, fmt.Errorf("invalid --%s: %w", name, err)
	}
	v, ok := w.Int64()
	if !ok {
		return 0, fmt.Errorf("invalid --%s: %s does not fit in int64", name, value)
	}
	return v, nil
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tALIASES")
			for _, p := range calculation.NewEngine().Problems() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.Title, strings.Join(p.Aliases, ", "))
			}
			return w.Flush()
		},
	}
}

func newRunCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run [problem...]",
		Short: "Solve the named problems, or all of them",
		Example: "  euler run\n" +
			"  euler run 1 fib --format console",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfiguration()
			if err != nil {
				return err
			}
			return opts.run(cmd, cfg, args)
		},
	}
}

func newMultiplesCommand(opts *rootOptions) *cobra.Command {
	var (
		factors []int64
		bound   string
		method  string
		exact   bool
	)
	cmd := &cobra.Command{
		Use:   "multiples",
		Short: "Sum the multiples of the given factors below a bound",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfiguration()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("factors") {
				cfg.Multiples.Factors = factors
			}
			if flags.Changed("bound") {
				if cfg.Multiples.Bound, err = parseWholeFlag("bound", bound); err != nil {
					return err
				}
			}
			if flags.Changed("method") {
				cfg.Multiples.Method = domain.ParseMethod(method)
			}
			if flags.Changed("exact") {
				cfg.Multiples.Precision = domain.PrecisionInt64
				if exact {
					cfg.Multiples.Precision = domain.PrecisionExact
				}
			}
			return opts.run(cmd, cfg, []string{calculation.ProblemMultiples})
		},
	}
	cmd.Flags().Int64SliceVar(&factors, "factors", []int64{3, 5}, "factors whose multiples are summed")
	cmd.Flags().StringVar(&bound, "bound", "1000", "exclusive upper bound, e.g. 1000 or 1e12")
	cmd.Flags().StringVar(&method, "method", string(domain.MethodClosedForm), "closed-form or loop")
	cmd.Flags().BoolVar(&exact, "exact", false, "use arbitrary precision instead of int64")
	return cmd
}

func newFibonacciCommand(opts *rootOptions) *cobra.Command {
	var (
		index  int
		method string
	)
	cmd := &cobra.Command{
		Use:   "fibonacci",
		Short: "Print the n-th Fibonacci number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfiguration()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("index") {
				cfg.Fibonacci.Index = index
			}
			if cmd.Flags().Changed("method") {
				cfg.Fibonacci.Method = domain.ParseMethod(method)
			}
			return opts.run(cmd, cfg, []string{calculation.ProblemFibonacci})
		},
	}
	cmd.Flags().IntVarP(&index, "index", "n", 10, "0-based index into the sequence")
	cmd.Flags().StringVar(&method, "method", string(domain.MethodRecursive), "recursive or iterative")
	return cmd
}

func newEvenFibonacciCommand(opts *rootOptions) *cobra.Command {
	var limit string
	cmd := &cobra.Command{
		Use:   "even-fibonacci",
		Short: "Sum the even Fibonacci terms not exceeding a limit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfiguration()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("limit") {
				if cfg.EvenFibonacci.Limit, err = parseWholeFlag("limit", limit); err != nil {
					return err
				}
			}
			return opts.run(cmd, cfg, []string{calculation.ProblemEvenFibonacci})
		},
	}
	cmd.Flags().StringVar(&limit, "limit", "4000000", "largest term considered, e.g. 4000000 or 4e6")
	return cmd
}
