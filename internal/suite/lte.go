package suite

import (
	"context"
	"fmt"
	"io"

	"cireport/internal/report"
)

const LTEWorkerID = "lte_integ_test"

// LTE publishes the LTE integration test verdict with a page redirecting to
// the full report at --url.
func LTE() Suite {
	return Suite{
		Name:     "lte",
		Short:    "Publish an LTE integration test result",
		WorkerID: LTEWorkerID,
		Flags: []Flag{
			{Name: "url", Usage: "Report URL", Required: true},
		},
		Run: runRedirectReport(LTEWorkerID),
	}
}

// runRedirectReport publishes an HTML page that redirects to the "url" arg.
func runRedirectReport(workerID string) func(context.Context, io.Writer, Invocation, Publisher) error {
	return func(ctx context.Context, out io.Writer, inv Invocation, p Publisher) error {
		fmt.Fprintln(out, inv)
		html := report.HTMLURLRedirect(inv.Args["url"])
		fmt.Fprintln(out, html)
		_, err := p.Publish(ctx, workerID, inv.BuildID, report.Passed(inv.Verdict), html)
		return err
	}
}
