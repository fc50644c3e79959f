package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/gologme/log"
	"github.com/olekukonko/tablewriter"

	"floodcross/internal/driver"
	"floodcross/internal/logging"
	"floodcross/internal/settings"
	"floodcross/internal/sims/flood"
)

type dayRow struct {
	day       int
	row, col  int
	crossable bool
	last      int
}

// options holds the trace flags.
type options struct {
	rows, cols int
	random     bool
	seed       int64
	intervalMs int
	instant    bool
	showGrid   bool
	loglevel   string
	config     string
}

func (o *options) bind(fs *flag.FlagSet) {
	fs.IntVar(&o.rows, "rows", 3, "grid rows (2-20)")
	fs.IntVar(&o.cols, "cols", 3, "grid columns (2-20)")
	fs.BoolVar(&o.random, "random", false, "flood cells in a random order")
	fs.Int64Var(&o.seed, "seed", 42, "seed for random flood schedules (0 picks one from the clock)")
	fs.IntVar(&o.intervalMs, "interval", 200, "autoplay interval in milliseconds (200-2000)")
	fs.BoolVar(&o.instant, "instant", false, "step without waiting for the autoplay timer")
	fs.BoolVar(&o.showGrid, "grid", false, "print the grid after every day")
	fs.StringVar(&o.loglevel, "loglevel", "info", "loglevel to enable (error, warn, info, debug, trace)")
	fs.StringVar(&o.config, "config", "", "optional HJSON settings file")
}

// applySettings copies values from a settings file. Flags set explicitly on
// fs keep their command-line values.
func (o *options) applySettings(f settings.File, fs *flag.FlagSet) {
	explicit := map[string]bool{}
	fs.Visit(func(fl *flag.Flag) { explicit[fl.Name] = true })
	if !explicit["rows"] {
		o.rows = f.Rows
	}
	if !explicit["cols"] {
		o.cols = f.Cols
	}
	if !explicit["random"] {
		o.random = f.Randomize
	}
	if !explicit["seed"] {
		o.seed = f.Seed
	}
	if !explicit["interval"] {
		o.intervalMs = f.IntervalMs
	}
	if !explicit["loglevel"] {
		o.loglevel = f.LogLevel
	}
}

func (o *options) floodConfig() flood.Config {
	return flood.Config{Rows: o.rows, Cols: o.cols, Randomize: o.random, Seed: o.seed}
}

func main() {
	var opts options
	opts.bind(flag.CommandLine)
	flag.Parse()

	if opts.config != "" {
		f, err := settings.Load(opts.config)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		opts.applySettings(f, flag.CommandLine)
	}
	cfg := opts.floodConfig().WithTimeSeed()
	period := time.Duration(opts.intervalMs) * time.Millisecond
	logger := logging.New(os.Stderr, opts.loglevel)
	session, err := driver.NewSession(cfg, period, logger)
	if err != nil {
		logger.Fatalln(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	schedule := session.Schedule()
	var days []dayRow
	record := func(p flood.Progress) {
		c := schedule[p.Day-1]
		days = append(days, dayRow{day: p.Day, row: c.Row, col: c.Col, crossable: p.Crossable, last: p.LastCrossableDay})
		if opts.showGrid {
			grid, _ := session.Snapshot()
			fmt.Printf("Day %d\n%s\n", p.Day, flood.Format(grid, session.Route()))
		}
	}

	if opts.instant {
		for {
			p := session.Step()
			record(p)
			if p.Complete || ctx.Err() != nil {
				break
			}
		}
	} else {
		logger.Infof("Autoplay every %v over %d days", session.Interval(), len(schedule))
		session.Play(ctx, record)
		<-session.Done()
	}

	printDays(days)
	printSummary(logger, session.Progress())
}

func printDays(days []dayRow) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Day", "Flooded", "Crossable", "Last crossable day"})
	for _, d := range days {
		table.Append([]string{
			strconv.Itoa(d.day),
			fmt.Sprintf("(%d,%d)", d.row, d.col),
			strconv.FormatBool(d.crossable),
			strconv.Itoa(d.last),
		})
	}
	table.Render()
}

func printSummary(logger *log.Logger, p flood.Progress) {
	if !p.Complete {
		logger.Warnf("Stopped early on day %d of %d", p.Day, p.Total)
	}
	fmt.Printf("Last Day You Can Cross: %d\n", p.LastCrossableDay)
}
