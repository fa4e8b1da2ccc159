package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/hyprsession/internal/hypr"
	"github.com/GriffinCanCode/hyprsession/internal/restore"
	"github.com/GriffinCanCode/hyprsession/internal/session"
	"github.com/GriffinCanCode/hyprsession/internal/watch"
)

func (a *app) subcommand(name, args string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.Usage = func() {
		fmt.Fprintf(a.stderr, "usage: hyprsession %s %s\n", name, args)
		fs.PrintDefaults()
	}
	return fs
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	return nil
}

func (a *app) snapshotPath(fs *flag.FlagSet) string {
	if fs.NArg() > 0 {
		return fs.Arg(0)
	}
	return a.cfg.Session.SnapshotPath()
}

func (a *app) save(ctx context.Context, args []string) error {
	fs := a.subcommand("save", "[path]")
	ignore := fs.String("ignore", strings.Join(a.cfg.Session.IgnoreClasses, ","), "comma-separated class globs to leave out")
	if err := parse(fs, args); err != nil {
		return err
	}

	client, err := a.client()
	if err != nil {
		return err
	}

	store := session.NewStore(a.snapshotPath(fs)).WithLogger(a.logger).WithMetrics(a.metrics)
	manager := session.NewManager(client, store, session.CaptureOptions{IgnoreClasses: splitList(*ignore)})

	snap, err := manager.Save(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "saved %d windows to %s\n", len(snap.Clients), store.Path())
	return nil
}

func (a *app) restore(ctx context.Context, args []string) error {
	fs := a.subcommand("restore", "[path]")
	notify := fs.Bool("notify", a.cfg.Restore.Notify, "show a desktop notification for each launch")
	aliasFile := fs.String("aliases", a.cfg.Restore.AliasPath(), "YAML file mapping window classes to launch commands")
	if err := parse(fs, args); err != nil {
		return err
	}

	client, err := a.client()
	if err != nil {
		return err
	}
	store := session.NewStore(a.snapshotPath(fs)).WithLogger(a.logger)
	snap, err := session.NewManager(client, store, session.CaptureOptions{}).Load()
	if err != nil {
		return err
	}
	aliases, err := restore.LoadAliases(*aliasFile)
	if err != nil {
		return err
	}

	restorer := restore.NewRestorer(client, restore.NewHyprPositioner(client)).
		WithAliases(aliases).
		WithLogger(a.logger).
		WithMetrics(a.metrics)
	if *notify {
		restorer.WithNotifier(restore.NewExecNotifier(a.cfg.Restore.NotifyCommand))
	}

	report, err := restorer.Run(ctx, snap)
	if report != nil {
		fmt.Fprintf(a.stdout, "matched %d, launched %d, failed %d, untouched %d\n",
			len(report.Matched), len(report.Launched), len(report.LaunchFailures), len(report.Remaining))
	}
	return err
}

func (a *app) listen(ctx context.Context, args []string) error {
	fs := a.subcommand("listen", "[-filter kinds] [-reconnect]")
	filter := fs.String("filter", "", "comma-separated event kinds to print (default all)")
	reconnect := fs.Bool("reconnect", a.cfg.Watch.Reconnect, "re-dial when the compositor closes the stream")
	if err := parse(fs, args); err != nil {
		return err
	}

	ep, err := a.endpoint()
	if err != nil {
		return err
	}

	opts := watch.Options{
		Reconnect:   *reconnect,
		Interval:    a.cfg.Watch.ReconnectInterval,
		MaxFailures: a.cfg.Watch.MaxFailures,
	}
	if kinds := splitList(*filter); len(kinds) > 0 {
		set := make([]hypr.Kind, len(kinds))
		for i, k := range kinds {
			set[i] = hypr.Kind(k)
		}
		opts.Filter = hypr.KindIn(set...)
	}

	return watch.New(ep, opts).
		WithLogger(a.logger).
		WithMetrics(a.metrics).
		Run(ctx, a.printEvent)
}

// printEvent writes one JSON line per event: {"kind":...,"data":{...}}.
func (a *app) printEvent(ev hypr.Event) {
	line, err := sonic.MarshalString(struct {
		Kind hypr.Kind  `json:"kind"`
		Data hypr.Event `json:"data"`
	}{ev.Kind(), ev})
	if err != nil {
		a.logger.Warn("encode event", zap.Error(err))
		return
	}
	fmt.Fprintln(a.stdout, line)
}

func (a *app) query(ctx context.Context, args []string) error {
	fs := a.subcommand("query", "<key>")
	if err := parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errUsage
	}

	client, err := a.client()
	if err != nil {
		return err
	}
	resp, err := client.QueryJSON(ctx, fs.Arg(0))
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, resp)
	return hypr.CheckResponse(resp)
}

func (a *app) dispatch(ctx context.Context, args []string) error {
	fs := a.subcommand("dispatch", "<dispatcher> [args...]")
	if err := parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}

	client, err := a.client()
	if err != nil {
		return err
	}
	resp, err := client.Dispatch(ctx, strings.Join(fs.Args(), " "))
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, resp)
	return hypr.CheckResponse(resp)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
