package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"naukri/matcher-service/internal/alerts"
	"naukri/matcher-service/internal/catalog"
	"naukri/matcher-service/internal/competition"
	"naukri/matcher-service/internal/export"
	"naukri/matcher-service/internal/matcher"
	"naukri/matcher-service/internal/model"
	"naukri/matcher-service/internal/profile"
)

// runOnce evaluates the catalog for one applicant and writes the result to w.
func runOnce(ctx context.Context, repo catalog.Repository, store profile.Store, opts options, w io.Writer) error {
	m := matcher.New(repo)

	if opts.latest > 0 {
		results, err := m.Latest(ctx, opts.latest)
		if err != nil {
			return err
		}
		return printResults(w, results, time.Now())
	}

	if opts.bookmark != "" || opts.subscribePath != "" || opts.prefill != "" {
		if opts.userID == "" {
			return fmt.Errorf("-bookmark and -subscribe require -user")
		}
		if opts.bookmark != "" {
			return toggleBookmark(ctx, repo, store, opts, w)
		}
		return subscribeAlerts(ctx, repo, store, opts, w)
	}

	p, err := resolveProfile(ctx, store, opts)
	if err != nil {
		return err
	}

	if opts.explain {
		verdicts, err := m.Explain(ctx, p)
		if err != nil {
			return err
		}
		return printVerdicts(w, verdicts)
	}

	tier, err := model.ParseTierFilter(opts.tier)
	if err != nil {
		return err
	}
	mo := matcher.MatchOptions{
		JobCategory: opts.category,
		Filter:      competition.FilterState{SmartMode: opts.smart, HideVeryHigh: opts.hideHigh, Tier: tier},
		SavedOnly:   opts.savedOnly,
	}
	if opts.savedOnly {
		if opts.userID == "" {
			return fmt.Errorf("-saved requires -user")
		}
		if mo.SavedIDs, err = store.Bookmarks(ctx, opts.userID); err != nil {
			return err
		}
	}

	results, err := m.Match(ctx, p, mo)
	if err != nil {
		return err
	}
	if err := printResults(w, results, time.Now()); err != nil {
		return err
	}

	if opts.exportPath != "" {
		path, err := export.WriteWorkbook(results, opts.exportPath)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\nExported %d match(es) to %s\n", len(results), path)
	}
	return nil
}

// ─── User actions ────────────────────────────────────────────────────────────

func toggleBookmark(ctx context.Context, repo catalog.Repository, store profile.Store, opts options, w io.Writer) error {
	job, err := repo.Get(ctx, opts.bookmark)
	if err != nil {
		return fmt.Errorf("bookmark %s: %w", opts.bookmark, err)
	}
	saved, err := store.ToggleBookmark(ctx, opts.userID, job.ID)
	if err != nil {
		return fmt.Errorf("bookmark %s: %w", job.ID, err)
	}
	if saved {
		fmt.Fprintf(w, "Saved %s\n", job.Name)
	} else {
		fmt.Fprintf(w, "Removed %s from saved jobs\n", job.Name)
	}
	return nil
}

// subscribeAlerts overlays the -subscribe file on the user's current
// preferences, optionally prefilled from a posting, and stores the result.
// Field errors of a rejected subscription are printed one per line.
func subscribeAlerts(ctx context.Context, repo catalog.Repository, store profile.Store, opts options, w io.Writer) error {
	if opts.subscribePath == "" {
		return fmt.Errorf("-prefill requires -subscribe")
	}
	prefs, err := store.LoadPreferences(ctx, opts.userID)
	if err != nil {
		return fmt.Errorf("load preferences of %s: %w", opts.userID, err)
	}
	b, err := os.ReadFile(opts.subscribePath)
	if err != nil {
		return fmt.Errorf("read preferences: %w", err)
	}
	if err := json.Unmarshal(b, &prefs); err != nil {
		return fmt.Errorf("decode preferences %s: %w", opts.subscribePath, err)
	}

	if opts.prefill != "" {
		job, err := repo.Get(ctx, opts.prefill)
		if err != nil {
			return fmt.Errorf("prefill from %s: %w", opts.prefill, err)
		}
		prefs = alerts.Prefill(prefs, job)
	}

	stored, err := store.SavePreferences(ctx, opts.userID, prefs)
	var verr *alerts.ValidationError
	if errors.As(err, &verr) {
		for _, fe := range verr.Errors {
			fmt.Fprintf(w, "%s: %s\n", fe.Field, fe.Message)
		}
		return fmt.Errorf("alert preferences of %s rejected", opts.userID)
	}
	if err != nil {
		return fmt.Errorf("save preferences of %s: %w", opts.userID, err)
	}

	channels := make([]string, len(stored.Channels))
	for i, c := range stored.Channels {
		channels[i] = string(c)
	}
	fmt.Fprintf(w, "Subscribed %s to %s via %s (%s, %d day(s) before deadline)\n",
		stored.Contact, strings.Join(stored.Categories, ", "), strings.Join(channels, ", "),
		stored.Frequency, stored.DeadlineDays)
	return nil
}

// ─── Matching ────────────────────────────────────────────────────────────────

// resolveProfile reads -profile when given, saving it for -user, and
// otherwise loads the stored profile of -user.
func resolveProfile(ctx context.Context, store profile.Store, opts options) (model.ApplicantProfile, error) {
	if opts.profilePath == "" {
		if opts.userID == "" {
			return model.ApplicantProfile{}, fmt.Errorf("one of -profile or -user is required")
		}
		p, err := store.LoadProfile(ctx, opts.userID)
		if err != nil {
			return model.ApplicantProfile{}, fmt.Errorf("load profile of %s: %w", opts.userID, err)
		}
		return p, nil
	}

	p, err := readProfile(opts.profilePath)
	if err != nil {
		return model.ApplicantProfile{}, err
	}
	if opts.userID != "" {
		if err := store.SaveProfile(ctx, opts.userID, p); err != nil {
			return model.ApplicantProfile{}, fmt.Errorf("save profile of %s: %w", opts.userID, err)
		}
	}
	return p, nil
}

func readProfile(path string) (model.ApplicantProfile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return model.ApplicantProfile{}, fmt.Errorf("read profile: %w", err)
	}
	var p model.ApplicantProfile
	if err := json.Unmarshal(b, &p); err != nil {
		return model.ApplicantProfile{}, fmt.Errorf("decode profile %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return model.ApplicantProfile{}, fmt.Errorf("invalid profile %s: %w", path, err)
	}
	return p, nil
}

func printResults(w io.Writer, results []matcher.Result, now time.Time) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "No matching jobs.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "JOB\tCATEGORY\tSTATE\tCOMPETITION\tLAST DATE\tAPPLY")
	for _, r := range results {
		last := "-"
		if !r.Job.Deadline.IsZero() {
			last = fmt.Sprintf("%s (%s)", r.Job.Deadline.Format("02 Jan 2006"), humanize.RelTime(r.Job.Deadline, now, "ago", "left"))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Job.Name, r.Tag, r.Job.State, r.Job.CompetitionLevel, last, r.Job.ApplyLink)
	}
	return tw.Flush()
}

func printVerdicts(w io.Writer, verdicts []matcher.Verdict) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "JOB\tCATEGORY\tELIGIBLE\tREASON")
	for _, v := range verdicts {
		eligible := "no"
		if v.Result.Eligible {
			eligible = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", v.Job.Name, v.Tag, eligible, v.Result.Reason)
	}
	return tw.Flush()
}
