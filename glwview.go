// Lays out a widget tree file and previews the result.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/jmigpin/glw/core"
	"github.com/jmigpin/glw/core/preview"
	"github.com/jmigpin/glw/util/flagutil"
	"github.com/jmigpin/glw/util/uiutil/widget"
)

func main() {
	log.SetFlags(log.Llongfile)
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opt := core.DefaultOptions()

	// config file first, flags override its values
	if cfg, ok := flagutil.GetFlagString(args, "config"); ok {
		if err := opt.LoadFile(cfg); err != nil {
			return err
		}
	}

	fs := flag.NewFlagSet("glwview", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: glwview [flags] file.yaml\n")
		fs.PrintDefaults()
	}
	_ = fs.String("config", "", "toml `file` with options (flags override it)")
	addOptionsFlags(fs, opt)
	classes := fs.Bool("classes", false, "list registered node classes and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *classes {
		fmt.Fprintln(stdout, strings.Join(widget.ClassNames(), "\n"))
		return nil
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return flag.ErrHelp
	}
	opt.Filename = fs.Arg(0)

	v, err := core.NewViewer(opt, stdout)
	if err != nil {
		return err
	}
	err = v.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func addOptionsFlags(fs *flag.FlagSet, opt *core.Options) {
	fs.IntVar(&opt.Width, "width", opt.Width, "surface width")
	fs.IntVar(&opt.Height, "height", opt.Height, "surface height")
	fs.StringVar(&opt.Output, "o", opt.Output, "preview image output `file`")
	ff := flagutil.StringFuncFlag(func(s string) error {
		if _, err := preview.ParseFormat(s); err != nil {
			return err
		}
		opt.Format = s
		return nil
	})
	fs.Var(ff, "format", "preview image format: [png, bmp, tiff] (default: from output extension)")
	fs.Float64Var(&opt.FontSize, "fontsize", opt.FontSize, "labels font size, 0 to disable labels")
	fs.BoolVar(&opt.Watch, "watch", opt.Watch, "reload on file changes")
	fs.BoolVar(&opt.Dump, "dump", opt.Dump, "print the layout of each node")
	fs.BoolVar(&opt.Color, "color", opt.Color, "colored dump")
	fs.BoolVar(&opt.Debug, "debug", opt.Debug, "log signals and options")
	fs.Var(&opt.Clicks, "click", "send a mouse click at `x,y` after layout (can be repeated)")
}
