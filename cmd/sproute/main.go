// Command sproute computes the shortest-path tree of a static topology read
// from a TOML file and prints one forwarding entry per destination switch.
//
//	sproute -config topo.toml [-source 7] [-metrics]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/sproute/config"
	"github.com/katalvlaran/sproute/logging"
	"github.com/katalvlaran/sproute/routing"
	"github.com/katalvlaran/sproute/topology"
)

const helpMessage = `
sproute computes hop-count shortest paths from one switch to every other.

Usage: sproute [options]

      -config     =string   TOML file with [logging], [routing] and [topology]
      -source     =string   Source switch id; overrides topology.source
      -metrics    (flag)    Print engine metrics after the routes
  -h, -help       (flag)    Show help message
`

var (
	configFile  = flag.String("config", "", "")
	sourceFlag  = flag.String("source", "", "")
	showMetrics = flag.Bool("metrics", false, "")
	showHelp    = flag.Bool("help", false, "")
)

func main() {
	flag.BoolVar(showHelp, "h", false, "Show help message")
	flag.Usage = func() { fmt.Print(helpMessage) }
	flag.Parse()

	if *showHelp || *configFile == "" {
		flag.Usage()
		os.Exit(0)
	}

	if err := run(os.Stdout, *configFile, *sourceFlag, *showMetrics); err != nil {
		fmt.Fprintln(os.Stderr, "sproute:", err)
		os.Exit(1)
	}
}

// run loads path, computes the tree and writes the route table to w.
// A failure to close the log file is reported alongside any run error.
func run(w io.Writer, path, source string, metrics bool) (err error) {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	logger, closer := logging.New(cfg.Logging)
	defer func() { err = errors.Join(err, closer.Close()) }()

	src := topology.SwitchID(cfg.Topology.Source)
	if source != "" {
		v, err := strconv.ParseUint(source, 0, 64)
		if err != nil {
			return fmt.Errorf("bad -source %q: %w", source, err)
		}
		src = topology.SwitchID(v)
	}

	opts := []routing.Option{
		routing.WithLogger(logger),
		routing.WithRelaxationTrace(cfg.Routing.TraceRelaxations),
		routing.WithVerify(cfg.Routing.Verify),
	}
	reg := prometheus.NewRegistry()
	if cfg.Routing.Metrics {
		opts = append(opts, routing.WithRegisterer(reg))
	}
	engine := routing.NewEngine(opts...)

	if _, err := engine.Recompute(context.Background(), cfg.Topology.Snapshot(), src); err != nil {
		return err
	}
	routes, err := engine.Routes()
	if err != nil {
		return err
	}
	if err := writeRoutes(w, src, routes); err != nil {
		return err
	}
	if metrics && cfg.Routing.Metrics {
		return writeMetrics(w, reg)
	}

	return nil
}

func writeRoutes(w io.Writer, src topology.SwitchID, routes []routing.Route) error {
	if _, err := fmt.Fprintf(w, "source %d\n", uint64(src)); err != nil {
		return err
	}
	for _, r := range routes {
		var err error
		if r.Reachable {
			_, err = fmt.Fprintf(w, "%d\t%d\t%v\n", uint64(r.Dst), r.Distance, r.Path)
		} else {
			_, err = fmt.Fprintf(w, "%d\tunreachable\n", uint64(r.Dst))
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// writeMetrics writes the gathered families in the Prometheus text format.
func writeMetrics(w io.Writer, reg prometheus.Gatherer) error {
	mfs, err := reg.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}

	return nil
}
