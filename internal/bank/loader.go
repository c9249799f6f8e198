package bank

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/prepstack/prepstack-engine/internal/session"
)

// YAML pack shape. Kept separate from the engine types so content authors get
// snake_case keys without tagging the core structs for yaml.
type bankFile struct {
	ID           string         `yaml:"id"`
	Title        string         `yaml:"title"`
	Mode         string         `yaml:"mode"`
	TimeLimitSec int            `yaml:"time_limit_sec"`
	Scheme       *schemeFile    `yaml:"scheme"`
	Questions    []questionFile `yaml:"questions"`
}

type schemeFile struct {
	Correct     float64 `yaml:"correct"`
	Incorrect   float64 `yaml:"incorrect"`
	Unattempted float64 `yaml:"unattempted"`
}

type questionFile struct {
	ID            string   `yaml:"id"`
	Prompt        string   `yaml:"prompt"`
	Options       []string `yaml:"options"`
	CorrectOption int      `yaml:"correct_option"`
	RichText      bool     `yaml:"rich_text"`
}

// LoadDir walks a content directory and parses every .yaml/.yml bank pack.
// Files that do not parse as a bank are skipped with a warning so one bad pack
// does not take the whole catalog down.
func LoadDir(root string) ([]Bank, error) {
	var out []Bank
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ".yaml") && !strings.HasSuffix(path, ".yml") {
			return nil
		}
		b, err := LoadFile(path)
		if err != nil {
			slog.Warn("skipping invalid bank pack", "path", path, "error", err)
			return nil
		}
		out = append(out, b)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking bank dir: %w", err)
	}
	slog.Info("bank packs loaded", "dir", root, "banks", len(out))
	return out, nil
}

// LoadFile parses a single YAML bank pack.
func LoadFile(path string) (Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Bank{}, err
	}
	var bf bankFile
	if err := yaml.Unmarshal(data, &bf); err != nil {
		return Bank{}, err
	}
	if bf.ID == "" {
		return Bank{}, fmt.Errorf("not a bank pack (missing id)")
	}
	b := Bank{
		ID:           bf.ID,
		Title:        bf.Title,
		Mode:         bf.Mode,
		TimeLimitSec: bf.TimeLimitSec,
	}
	if bf.Scheme != nil {
		b.Scheme = &session.Scheme{
			Correct:     bf.Scheme.Correct,
			Incorrect:   bf.Scheme.Incorrect,
			Unattempted: bf.Scheme.Unattempted,
		}
	}
	for _, qf := range bf.Questions {
		b.Questions = append(b.Questions, session.Question{
			ID:            qf.ID,
			Prompt:        qf.Prompt,
			Options:       qf.Options,
			CorrectOption: qf.CorrectOption,
			RichText:      qf.RichText,
		})
	}
	if err := b.Validate(); err != nil {
		return Bank{}, err
	}
	return b, nil
}

// Seed loads packs from dir into the provider. Missing dir is not an error; a
// deployment may run purely off imported banks.
func Seed(ctx context.Context, p Provider, dir string) error {
	if dir == "" {
		return nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		slog.Info("no bank pack dir, skipping seed", "dir", dir)
		return nil
	}
	banks, err := LoadDir(dir)
	if err != nil {
		return err
	}
	for _, b := range banks {
		if err := p.PutBank(ctx, b); err != nil {
			return fmt.Errorf("seeding bank %s: %w", b.ID, err)
		}
	}
	return nil
}
