package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	"github.com/leonardotrapani/colorcontrast/internal/config"
	"github.com/leonardotrapani/colorcontrast/internal/deps"
	"github.com/leonardotrapani/colorcontrast/internal/filewatch"
	"github.com/leonardotrapani/colorcontrast/internal/notify"
	"github.com/leonardotrapani/colorcontrast/internal/palette"
	"github.com/leonardotrapani/colorcontrast/internal/report"
)

// notifierFor returns the configured notifier, falling back to the log when
// desktop notifications are requested but notify-send is missing. Log
// notifications go to w regardless of --verbose.
func notifierFor(cfg *config.Config, w io.Writer) notify.Notifier {
	if cfg.Notifications.Enabled && cfg.Notifications.Type == "desktop" && !deps.CheckNotifySend().Installed {
		log.Printf("Watch: notify-send not found, logging notifications instead")
		return notify.Log{W: w}
	}
	n := cfg.ToNotifier()
	if _, ok := n.(notify.Log); ok {
		return notify.Log{W: w}
	}
	return n
}

type paletteWatcher struct {
	mu         sync.Mutex
	w          io.Writer
	path       string
	renderer   *report.Renderer
	minOpacity float64
	notifier   notify.Notifier
	messages   map[notify.MessageType]notify.Message
	failing    bool
	watcher    *filewatch.Watcher
}

func newPaletteWatcher(w io.Writer, path string, r *report.Renderer, cfg *config.Config, n notify.Notifier) *paletteWatcher {
	pw := &paletteWatcher{w: w, path: path, renderer: r}
	pw.configure(cfg, n)
	return pw
}

func (pw *paletteWatcher) configure(cfg *config.Config, n notify.Notifier) {
	pw.mu.Lock()
	defer pw.mu.Unlock()
	pw.minOpacity = cfg.Check.MinOpacity
	pw.notifier = n
	pw.messages = cfg.Notifications.Messages.Resolve()
}

// check evaluates the palette once, prints the outcome and notifies about
// failing pairs, invalid files and recoveries.
func (pw *paletteWatcher) check() {
	pw.mu.Lock()
	defer pw.mu.Unlock()

	p, err := palette.Load(pw.path)
	if err != nil {
		log.Printf("Watch: failed to load palette: %v", err)
		fmt.Fprintln(pw.w, pw.renderer.Failure(err.Error()))
		notify.Send(pw.notifier, pw.messages[notify.MsgPaletteInvalid], err.Error())
		pw.failing = true
		return
	}

	outcomes := p.Evaluate(pw.minOpacity)
	fmt.Fprintln(pw.w, pw.renderer.Outcomes(outcomes))

	failed := palette.Failing(outcomes)
	if len(failed) > 0 {
		names := make([]string, 0, len(failed))
		for _, o := range failed {
			names = append(names, o.Pair.Name)
		}
		notify.Send(pw.notifier, pw.messages[notify.MsgPairFailed], strings.Join(names, ", "))
		pw.failing = true
		return
	}

	if pw.failing {
		notify.Send(pw.notifier, pw.messages[notify.MsgPaletteFixed], "")
	}
	pw.failing = false
}

func (pw *paletteWatcher) start(ctx context.Context) error {
	pw.watcher = filewatch.New(pw.path, func(string) { pw.check() })
	return pw.watcher.Start(ctx)
}

func (pw *paletteWatcher) stop() {
	if pw.watcher != nil {
		pw.watcher.Stop()
	}
}
