// Command topicseed reconciles the topic catalog into postgres and the
// prompt blob store. It runs at deploy time and on demand; exit code 1
// means the catalog and the stores still disagree.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/growthpilot/backend/internal/app"
)

func main() {
	var (
		force    = flag.Bool("force", false, "overwrite existing records with catalog defaults")
		dryRun   = flag.Bool("dry-run", false, "report what would change without writing")
		validate = flag.Bool("validate", false, "report drift between catalog and stores, no writes")
		topic    = flag.String("topic", "", "seed a single topic instead of the full catalog")
		timeout  = flag.Duration("timeout", 5*time.Minute, "overall deadline")
	)
	flag.Parse()

	a, err := app.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init app: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if *validate {
		report, err := a.Services.Reconciler.Validate(ctx)
		if err != nil {
			a.Log.Error("validation failed", "error", err)
			os.Exit(1)
		}
		if !report.Clean() {
			a.Log.Warn("drift detected",
				"missing_topics", report.MissingTopics,
				"orphaned_topics", report.OrphanedTopics,
				"missing_prompts", len(report.MissingPrompts),
				"invalid_parameters", len(report.InvalidParameters),
			)
			os.Exit(1)
		}
		a.Log.Info("catalog and stores are in sync")
		return
	}

	if *topic != "" {
		changed, err := a.Services.Reconciler.SeedOne(ctx, *topic, *force)
		if err != nil {
			a.Log.Error("seed failed", "topic_id", *topic, "error", err)
			os.Exit(1)
		}
		a.Log.Info("seed complete", "topic_id", *topic, "changed", changed)
		return
	}

	result := a.Services.Reconciler.Reconcile(ctx, *force, *dryRun)
	a.Log.Info("reconcile complete",
		"created", result.Created,
		"updated", result.Updated,
		"skipped", result.Skipped,
		"deactivated", result.Deactivated,
		"dry_run", result.DryRun,
	)
	if !result.Success() {
		for _, e := range result.Errors {
			a.Log.Error("seed error", "topic_id", e.TopicID, "error", e.Message)
		}
		os.Exit(1)
	}
}
