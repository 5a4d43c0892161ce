package main

import (
	"os"

	"github.com/bastiangx/wordseg/internal/cli"
	"github.com/bastiangx/wordseg/internal/utils"
	"github.com/bastiangx/wordseg/pkg/server"
	"github.com/charmbracelet/log"
)

// runServe starts the IPC server on stdin/stdout.
func runServe(a *app, args []string) error {
	fs := newFlagSet("serve")
	vocabulary := fs.String("vocabulary", "", "File containing vocabulary for word segmentation")
	knownPath := fs.String("known", "", "File containing words the learner knows")
	if _, err := parseArgs(fs, args); err != nil {
		return err
	}

	dict, err := a.loadDictionary(*vocabulary)
	if err != nil {
		return err
	}
	known, err := a.loadKnown(*knownPath)
	if err != nil {
		return err
	}

	srv := server.NewServer(dict, known, a.config)
	showStartupInfo(dict.Size(), known.Len())
	return srv.Start()
}

// runCLI starts the interactive prompt.
func runCLI(a *app, args []string) error {
	fs := newFlagSet("cli")
	vocabulary := fs.String("vocabulary", "", "File containing vocabulary for word segmentation")
	knownPath := fs.String("known", "", "File containing words the learner knows")
	limit := fs.Int("limit", a.config.Server.MaxPrefixResults, "Number of words listed for a '?prefix' lookup")
	if _, err := parseArgs(fs, args); err != nil {
		return err
	}

	dict, err := a.loadDictionary(*vocabulary)
	if err != nil {
		return err
	}
	known, err := a.loadKnown(*knownPath)
	if err != nil {
		return err
	}

	log.SetReportTimestamp(false)
	log.Debug("Input info:", "words", dict.Size(), "known", known.Len(), "limit", *limit)
	return cli.NewInputHandler(dict, known, *limit).Start()
}

// showStartupInfo displays some basic info about the init process on stderr.
func showStartupInfo(words, known int) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("===========")
	println("  WordSeg  ")
	println("===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("vocabulary: %s words", utils.FormatWithCommas(words))
	log.Infof("known: %s words", utils.FormatWithCommas(known))
	log.Info("status: ready")
	println("===========")

	log.SetLevel(currentLevel)
}
