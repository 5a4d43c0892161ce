// Copyright 2025 The WordSeg Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the wordseg command line tools and IPC server.

WordSeg splits unspaced Chinese text into words by greedy longest match
against a vocabulary, then compares the words of a set of study dialogues
with the words a learner already knows.

# Usage

	wordseg [-d] [-config FILE] <command> [flags]

List the words of a dialogue file that are missing from a known-word list:

	wordseg unknown --wordlist known.txt --dialogue dialogues.yaml

Print the distinct words of dialogues 3 to 5, segmented with a word list:

	wordseg words -d dialogues.yaml -w words.txt -s 2 -c 3

# Commands

	unknown      words of the dialogues that the learner does not know
	words        sorted distinct words of a dialogue range
	brief        the Chinese lines of a dialogue range as "speaker: text"
	convert      convert a legacy dialogue mapping to the JSON list layout
	strip-audio  remove the audio references of a dialogue file
	serve        start the MessagePack IPC server on stdin/stdout
	cli          segment lines typed at an interactive prompt

Run "wordseg <command> -h" for the flags of a command.

# Vocabulary

The segmentation vocabulary is a UTF-8 word list with one word per line.
Without --vocabulary the path from the config file is used, and failing that
words/10K.txt in the directory above the executable.

# Configuration

Defaults for word-list cleaning, output order and server limits come from a
TOML file in the user config directory, created on first run:

	[vocab]
	path = ""
	clean = true
	normalize_nfc = false

	[output]
	random_order = false
	seed = 0
	filter_noise = true

	[server]
	max_text_len = 4096
	max_prefix_results = 64

Flags given on the command line override the file.

# Output

Results go to stdout, one word per line. Logs and warnings go to stderr,
so the output of every command can be piped or redirected.
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/wordseg/internal/logger"
	"github.com/bastiangx/wordseg/internal/utils"
	"github.com/bastiangx/wordseg/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "wordseg"
	gh      = "https://github.com/bastiangx/wordseg"
)

// app carries what every command needs.
type app struct {
	config *config.Config
	paths  *utils.PathResolver
	out    io.Writer
}

type command struct {
	name  string
	short string
	run   func(a *app, args []string) error
}

var commands = []command{
	{"unknown", "words of the dialogues that the learner does not know", runUnknown},
	{"words", "sorted distinct words of a dialogue range", runWords},
	{"brief", "the Chinese lines of a dialogue range", runBrief},
	{"convert", "convert a legacy dialogue mapping to the JSON list layout", runConvert},
	{"strip-audio", "remove the audio references of a dialogue file", runStripAudio},
	{"serve", "start the MessagePack IPC server on stdin/stdout", runServe},
	{"cli", "segment lines typed at an interactive prompt", runCLI},
}

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main only manages the flow: global flags, config and dispatch.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	configPath := flag.String("config", "", "Path to a custom config file")
	flag.Usage = usage
	flag.Parse()

	logger.Setup(*debugMode)

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}

	appConfig, usedPath := config.LoadConfigWithPriority(*configPath, pathResolver.GetConfigPath(config.DefaultFileName))
	log.Debugf("Config dir: (%s)", pathResolver.ConfigDir())
	log.Debugf("Using config file: (%s)", utils.GetAbsolutePath(usedPath))

	a := &app{config: appConfig, paths: pathResolver, out: os.Stdout}
	name, args := flag.Arg(0), flag.Args()[1:]
	for _, cmd := range commands {
		if cmd.name != name {
			continue
		}
		if err := cmd.run(a, args); err != nil && !isHelp(err) {
			log.Fatalf("%s: %v", name, err)
		}
		return
	}

	log.Errorf("Unknown command: %s", name)
	usage()
	os.Exit(2)
}

func usage() {
	w := flag.CommandLine.Output()
	fmt.Fprintf(w, "Usage: %s [flags] <command> [command flags]\n\nCommands:\n", AppName)
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-12s %s\n", cmd.name, cmd.short)
	}
	fmt.Fprintf(w, "\nFlags:\n")
	flag.PrintDefaults()
}

func printVersion() {
	banner := logger.NewWithConfig(os.Stderr, "", log.InfoLevel, false, false, log.TextFormatter)

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	banner.SetStyles(styles)

	banner.Print("")
	banner.Print("[ WordSeg ] Finds the words you have not learned yet!")
	banner.Print("", "version", Version)
	banner.Print("")
	banner.Print("use -h or --help to see available options")
	banner.Print("Github Repo", "gh", gh)
}

// parseArgs parses flags that may appear before, between or after the
// positional arguments, which it returns in order.
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		args = fs.Args()
		if len(args) == 0 {
			return positional, nil
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
}

// newFlagSet returns a flag set that reports errors instead of exiting.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	return fs
}

// isHelp reports whether err comes from -h, which is not a failure.
func isHelp(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
