package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/corvidchess/corvid/pkg/engine"
	"github.com/corvidchess/corvid/pkg/engine/uci"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/seekerror/logw"
)

var (
	hash    = flag.Uint("hash", 32, "Transposition table size in MB (zero disables it)")
	depth   = flag.Uint("depth", 0, "Search depth limit (zero means no limit)")
	noise   = flag.Uint("noise", 0, "Evaluation noise in centipawns (zero if deterministic)")
	useBook = flag.Bool("book", false, "Use the built-in opening book, if any")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: corvid [options]

corvid is a UCI chess engine.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	root := search.AlphaBeta{
		Quiescence: search.Quiescence{
			Eval: eval.Static{},
		},
	}

	e := engine.New(ctx, "corvid", "corvidchess", root,
		engine.WithOptions(engine.Options{Depth: *depth, Hash: *hash, Noise: *noise}))

	var opts []uci.Option
	if *useBook {
		opts = append(opts, uci.UseBook(engine.NoBook, time.Now().UnixNano()))
	}

	in := engine.ReadStdinLines(ctx)
	driver, out := uci.NewDriver(ctx, e, in, opts...)
	go engine.WriteStdoutLines(ctx, out)

	<-driver.Closed()
	logw.Infof(ctx, "Exiting")
}
