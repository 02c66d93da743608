/*
Package cli implements an interactive shell for debugging and testing
the suggestion engine, the same role the project's server plays over
MessagePack but driven from a terminal instead of a client process.
*/
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/corvisa/spellsuggest/internal/logger"
	"github.com/corvisa/spellsuggest/internal/utils"
	"github.com/corvisa/spellsuggest/pkg/suggest"
)

var (
	wordStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"})
	scoreStyle = lipgloss.NewStyle().Faint(true)

	// log is the shell's prefixed, timestamp-free logger: per-query
	// output where a timestamp on every line would just be noise.
	log = logger.Quiet("shell")
)

// Shell reads words from stdin and prints ranked corrections for each.
type Shell struct {
	engine       *suggest.Engine
	opt          suggest.Options
	dataDir      string
	requestCount int
}

// NewShell builds a Shell over engine using opt for every query. dataDir
// is only used to answer the ":paths" diagnostic command.
func NewShell(engine *suggest.Engine, opt suggest.Options, dataDir string) *Shell {
	return &Shell{engine: engine, opt: opt, dataDir: dataDir}
}

// Start runs the read-eval-print loop until stdin closes or an error
// other than EOF occurs.
func (sh *Shell) Start() error {
	log.Print("spellsuggest shell [BETA]")
	reader := bufio.NewReader(os.Stdin)
	log.Print("type a word and press Enter to see corrections (:paths to inspect resolution, Ctrl+C to exit):")

	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		word := strings.TrimSpace(line)
		if word == "" {
			continue
		}
		if word == ":paths" {
			sh.showPaths()
			continue
		}
		sh.handle(word)
	}
}

// showPaths prints the same executable/config/data-dir resolution a
// maintainer would otherwise have to reconstruct by hand when a -data
// flag isn't finding its dictionary chunks.
func (sh *Shell) showPaths() {
	resolver, err := utils.NewPathResolver()
	if err != nil {
		log.Warnf("could not resolve executable path: %v", err)
		return
	}
	diag := resolver.DiagnosePathIssues(sh.dataDir)
	info, _ := diag["runtime_info"].(map[string]string)
	log.Printf("executable: %s", info["executable_path"])
	log.Printf("config dir: %s", info["config_dir"])
	if resolution, ok := diag["data_dir_resolution"].(map[string]interface{}); ok {
		log.Printf("data dir requested=%q resolved=%q valid=%v", sh.dataDir, resolution["resolved_path"], resolution["is_valid"])
	}
}

func (sh *Shell) handle(word string) {
	sh.requestCount++
	if !utils.IsValidInput(word) {
		log.Warnf("input filtered out: %q", word)
		return
	}

	start := time.Now()
	out := sh.engine.Suggest(context.Background(), word, sh.opt)
	elapsed := time.Since(start)

	log.Debugf("took %v for %q", elapsed, word)

	if len(out) == 0 {
		log.Warnf("no suggestions for %q", word)
		return
	}

	log.Printf("found %d suggestions for %q:", len(out), word)
	for i, s := range out {
		fmt.Printf("%2d. %-30s (score: %s)\n", i+1, wordStyle.Render(s.Word), scoreStyle.Render(utils.FormatWithCommas(s.Score)))
	}
}
