package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mzki/fakedpi/app"
)

var (
	version string = "dev"
	commit  string = "none"
)

const Title = "fakedpi demo"

func main() {
	conf, err := app.LoadConfigOrDefault(app.ConfigFile)
	switch err {
	case app.ErrDefaultConfigGenerated:
		fmt.Fprintf(os.Stderr, "Config file (%v) does not exist. Use default config and write it to file.\n", app.ConfigFile)
		fallthrough
	case nil:
		// no errors. do nothing.
	default:
		// fatal error for loading config. quits
		panic(err)
	}

	showVersion := parseFlags(conf)
	if showVersion {
		fmt.Println(version + "-" + commit)
		return
	}
	app.Main(Title, conf)
}

func parseFlags(c *app.Config) (showVersion bool) {
	flag.StringVar(&c.LogFile, "logfile", c.LogFile, "`output-file` to write log. { stdout | stderr } is OK.")
	flag.StringVar(&c.LogLevel, "loglevel", c.LogLevel, "`level` = { info | debug }.\n\t"+
		"info outputs information level log only, and debug also outputs debug level log.")
	flag.Float64Var(&c.Dpi, "dpi", c.Dpi, "simulated DPI `factor` applied to the window.")
	flag.Float64Var(&c.Width, "width", c.Width, "initial window `width` in logical units.")
	flag.Float64Var(&c.Height, "height", c.Height, "initial window `height` in logical units.")
	flag.BoolVar(&showVersion, "version", false, "print version and quit.")
	flag.Parse()
	return showVersion
}
