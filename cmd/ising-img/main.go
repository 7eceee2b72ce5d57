package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"ising-ca/internal/render"
	"ising-ca/internal/sims/ising"
)

func main() {
	scale := flag.Int("scale", 1, "integer upscale factor")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-scale n] <state dump> [out.png]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "ising-img"})
	if flag.NArg() < 1 || flag.NArg() > 2 {
		flag.Usage()
		os.Exit(2)
	}
	in := flag.Arg(0)
	out := flag.Arg(1)
	if out == "" {
		out = strings.TrimSuffix(in, filepath.Ext(in)) + ".png"
	}

	f, err := os.Open(in)
	if err != nil {
		logger.Fatal("open state", "err", err)
	}
	lat, err := ising.ReadState(f)
	f.Close()
	if err != nil {
		logger.Fatal("decode state", "path", in, "err", err)
	}
	if err := render.SavePNG(out, lat, *scale); err != nil {
		logger.Fatal("write image", "err", err)
	}
	logger.Info("image written", "path", out, "rows", lat.Rows(), "cols", lat.Cols(),
		"magnetization", lat.NetMagnetization())
}
