package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/prepstack/prepstack-engine/internal/bank"
	"github.com/prepstack/prepstack-engine/internal/session"
	"github.com/prepstack/prepstack-engine/internal/tui"
)

func main() {
	packPath := flag.String("bank", "", "path to a YAML bank pack")
	mode := flag.String("mode", "", "override the pack's mode (quiz|practice)")
	flag.Parse()

	if *packPath == "" {
		fmt.Fprintln(os.Stderr, "usage: practice -bank <pack.yaml> [-mode quiz|practice]")
		os.Exit(2)
	}

	b, err := bank.LoadFile(*packPath)
	if err != nil {
		log.Fatalf("loading bank pack: %v", err)
	}
	if *mode != "" {
		b.Mode = *mode
	}
	policy, ok := session.PolicyFor(b.Mode)
	if !ok {
		log.Fatalf("unknown mode %q", b.Mode)
	}
	if b.Scheme != nil {
		policy.Scheme = *b.Scheme
	}

	runner, err := session.NewRunner(b.Questions, b.TimeLimitSec, policy)
	if err != nil {
		log.Fatalf("no questions available in %s", b.ID)
	}
	defer runner.Close()

	p := tea.NewProgram(tui.NewModel(b.Title, runner), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("running session: %v", err)
	}

	if res, ok := runner.Result(); ok {
		fmt.Printf("%s: score %.2f, %d/%d attempted, accuracy %d%%\n",
			b.Title, res.RawScore, res.Attempted, len(b.Questions), res.AccuracyPercent)
	}
}
