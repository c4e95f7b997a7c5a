package analysis

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// WriteReports prints one summary row per report
func WriteReports(w io.Writer, reports []*Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CASE\tTRIALS\tEV\tMEAN\tSTDERR\tCHI2\tP\tRESULT")
	for _, r := range reports {
		result := "✓ PASS"
		if !r.Pass() {
			result = "✗ FAIL"
		}
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%.2f\t%.2f\t%.2f\t%.3f\t%s\n",
			r.Name, r.Trials, r.ExpectedValue, r.Mean, r.StdError, r.ChiSquared, r.PValue, result)
	}
	return tw.Flush()
}

// WriteDetail prints the per-outcome frequency table of one report
func WriteDetail(w io.Writer, r *Report) error {
	if _, err := fmt.Fprintf(w, "\n%s (%d trials)\n", r.Name, r.Trials); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "OUTCOME\tEXPECTED\tOBSERVED\tCOUNT\tDEVIATION\t")
	for _, f := range r.Frequencies {
		fmt.Fprintf(tw, "%s\t%.4f\t%.4f\t%d\t%+.4f\t%s\n",
			f.ID, f.Expected, f.Observed, f.Count, f.Deviation, bar(f.Observed))
	}
	return tw.Flush()
}

func bar(p float64) string {
	return strings.Repeat("█", int(p*40))
}
