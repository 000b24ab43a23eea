package archive

import (
	"context"
	"fmt"

	"github.com/garrettladley/thoura/internal/client/oura"
	"github.com/garrettladley/thoura/internal/xslog"
)

type Counts struct {
	Sleep     int
	Activity  int
	Readiness int
}

// Export fetches the three collections one after another for the same window
// and writes each into sink. The first failure stops the export; collections
// already written stay written.
func Export(ctx context.Context, client *oura.Client, sink Sink, params *oura.ListParams) (Counts, error) {
	var counts Counts
	logger := xslog.FromContext(ctx)

	params = client.Window(params)
	logger.InfoContext(ctx, "exporting window", xslog.Start(params.Start), xslog.End(params.End))

	sleeps, err := client.Sleep.List(ctx, params)
	if err != nil {
		return counts, fmt.Errorf("fetching sleep: %w", err)
	}
	if err := sink.PutSleeps(ctx, sleeps); err != nil {
		return counts, fmt.Errorf("archiving sleep: %w", err)
	}
	counts.Sleep = len(sleeps)
	logger.InfoContext(ctx, "archived", xslog.Resource("sleep"), xslog.Count(counts.Sleep))

	activities, err := client.Activity.List(ctx, params)
	if err != nil {
		return counts, fmt.Errorf("fetching activity: %w", err)
	}
	if err := sink.PutActivities(ctx, activities); err != nil {
		return counts, fmt.Errorf("archiving activity: %w", err)
	}
	counts.Activity = len(activities)
	logger.InfoContext(ctx, "archived", xslog.Resource("activity"), xslog.Count(counts.Activity))

	readiness, err := client.Readiness.List(ctx, params)
	if err != nil {
		return counts, fmt.Errorf("fetching readiness: %w", err)
	}
	if err := sink.PutReadiness(ctx, readiness); err != nil {
		return counts, fmt.Errorf("archiving readiness: %w", err)
	}
	counts.Readiness = len(readiness)
	logger.InfoContext(ctx, "archived", xslog.Resource("readiness"), xslog.Count(counts.Readiness))

	return counts, nil
}
