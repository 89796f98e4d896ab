package main

import (
	"log/syslog"
	"os"
	"os/signal"
	"time"

	"github.com/buzkaaclicker/steamprofile/config"
	"github.com/sirupsen/logrus"
	logrusys "github.com/sirupsen/logrus/hooks/syslog"
	"github.com/spf13/cobra"
)

// Set with -ldflags at build time.
var (
	version   = "dev"
	buildHash = "unknown"
)

func setupLogger(verbose bool, useSyslog bool) {
	logrus.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: time.Stamp,
		FullTimestamp:   true,
	})
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if !useSyslog {
		return
	}

	syslogHook, err := logrusys.NewSyslogHook("", "", syslog.LOG_USER, "steamprofile")
	if err != nil {
		logrus.WithError(err).Fatalln("Could not create syslog hook.")
		return
	}
	logrus.AddHook(syslogHook)
}

func awaitInterruption() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c
}

func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatalln("Could not load config.")
	}
	setupLogger(cfg.Debug, cfg.Syslog)
	return cfg
}

func main() {
	root := &cobra.Command{
		Use:          "steamprofile",
		Short:        "Steam profile badge plugin",
		Version:      version + " (" + buildHash + ")",
		SilenceUsage: true,
	}
	root.AddCommand(serveCommand(), popoverCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
