// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the spellsuggest server and commandline interface.

spellsuggest offers Vim/Hunspell-style error-tolerant spelling
suggestions built on a compact array trie. It can operate as a
MessagePack IPC server for editor/generic client integrations or as a
standalone shell for interactive testing.

# Server Mode

The server loads one or more lazy, chunked dictionaries and answers
Suggest requests over stdin/stdout, returning ranked corrections
scored by edit distance and sound-alike similarity.

# Shell Mode

The shell provides an interactive loop for debugging and testing the
suggestion engine's behavior against a loaded dictionary.

# Data Files

The data directory must contain dictionary files named `dict_0001.bin`,
`dict_0002.bin`, etc. These hold case-folded words with attached flags
and frequency counts (see pkg/dictionary).

# Config

Runtime configuration is managed via a `config.toml` file, which
supports settings for suggestion behavior, dictionary tuning, and the
CLI. A default configuration is created automatically if one does not
exist.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/corvisa/spellsuggest/internal/cli"
	"github.com/corvisa/spellsuggest/internal/utils"
	"github.com/corvisa/spellsuggest/pkg/config"
	"github.com/corvisa/spellsuggest/pkg/dictionary"
	"github.com/corvisa/spellsuggest/pkg/server"
	"github.com/corvisa/spellsuggest/pkg/suggest"
)

const (
	Version = "0.1.0-beta"
	AppName = "spellsuggest"
	gh      = "https://github.com/corvisa/spellsuggest"
)

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

// main calls other packages to initialize the server or shell inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	configFile := flag.String("config", "", "Path to custom config.toml file")
	dataDir := flag.String("data", "data/", "Directory containing dict_XXXX.bin files")
	debugMode := flag.Bool("v", false, "Toggle verbose mode")
	shellMode := flag.Bool("c", false, "Run interactive shell -- useful for testing and debugging")
	limit := flag.Int("limit", defaultConfig.CLI.DefaultLimit, "Number of suggestions to return")
	modeFlag := flag.String("mode", defaultConfig.Suggest.Mode, "Suggestion mode: fast, best, or double")
	maxWords := flag.Int("words", 0, "Maximum number of words to load (0 for all words)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	log.Debugf("Using data dir at: %s", *dataDir)

	lang, err := loadLanguage(*dataDir, *maxWords)
	if err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
		os.Exit(1)
	}
	engine := suggest.NewEngine(lang)

	opt := suggest.DefaultOptions()
	opt.MaxCount = *limit
	switch *modeFlag {
	case "fast":
		opt.Mode = suggest.Fast
	case "double":
		opt.Mode = suggest.Double
	default:
		opt.Mode = suggest.Best
	}

	// Shell mode is mainly used for testing and dbg purposes.
	// Any new features or changes should be tested here first.
	// NOTE: server mode has vastly different parameters compared to
	// the shell and what it accepts.
	if *shellMode {
		log.SetReportTimestamp(false)
		log.Debug("Shell info:", "limit", *limit, "mode", *modeFlag)

		shell := cli.NewShell(engine, opt, *dataDir)
		if err := shell.Start(); err != nil {
			log.Fatalf("Shell error: %v", err)
			os.Exit(1)
		}
		return
	}

	log.Debug("spawning IPC")

	appConfig, configPath, err := config.LoadConfigWithPriority(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
		os.Exit(1)
	}
	log.Debugf("Using config file: %s", configPath)
	srv := server.NewServer(engine, appConfig, configPath)

	showStartupInfo(*dataDir)

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}

// loadLanguage waits for every available chunk in dataDir to load and
// builds the resulting Language, or returns an empty Language if
// dataDir has no chunk files (useful for exercising the server without
// a dictionary attached).
func loadLanguage(dataDir string, maxWords int) (*dictionary.Language, error) {
	loader := dictionary.NewLoader(dataDir, "default", maxWords)
	available, err := loader.GetAvailable()
	if err != nil {
		log.Warnf("No dictionary chunks found in %s: %v", dataDir, err)
		return loader.Build(), nil
	}
	if len(available) == 0 {
		log.Warnf("No dictionary chunks found in %s", dataDir)
		return loader.Build(), nil
	}
	log.Debugf("Found %d dictionary chunks", len(available))

	expected := expectedChunkCount(available, maxWords)
	if err := loader.StartLoading(); err != nil {
		return nil, err
	}
	for {
		stats := loader.Stats()
		if stats.LoadedChunks >= expected {
			break
		}
		time.Sleep(25 * time.Millisecond)
	}
	return loader.Build(), nil
}

// expectedChunkCount mirrors StartLoading's own "load until maxWords
// words queued" accounting, so callers know how many chunks to wait
// for without reaching into the loader's internals.
func expectedChunkCount(available []dictionary.ChunkInfo, maxWords int) int {
	wordsToLoad := maxWords
	if wordsToLoad == 0 {
		for _, c := range available {
			wordsToLoad += c.WordCount
		}
	}
	loaded, n := 0, 0
	for _, c := range available {
		if loaded >= wordsToLoad {
			break
		}
		loaded += c.WordCount
		n++
	}
	return n
}

// printVersion renders the version banner with the project's log
// styling, through its own stderr logger.
func printVersion() {
	banner := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	banner.SetStyles(styles)

	banner.Print("")
	banner.Print("[spellsuggest] Vim/Hunspell-style spelling suggestions")
	banner.Print("", "version", Version)
	banner.Print("")
	banner.Print("use --help to see available options")
	banner.Print("")
	banner.Print("Find out more at", "gh", gh)
}

// showStartupInfo displays some basic info about the init process,
// resolving dataDir to an absolute path and checking it's actually
// there so a misconfigured -data flag shows up here rather than as a
// silent empty-dictionary server.
func showStartupInfo(dataDir string) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	absDataDir := utils.GetAbsolutePath(dataDir)
	dirStatus := utils.CheckDirStatus(absDataDir)

	println("===============")
	println(" spellsuggest ")
	println("===============")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	log.Infof("data dir: ( %s )", absDataDir)
	if !dirStatus.Exists || dirStatus.Error != nil {
		log.Warnf("data dir unavailable, server will start with an empty dictionary: %v", dirStatus.Error)
	}
	log.Info("status: ready")
	println("===============")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
