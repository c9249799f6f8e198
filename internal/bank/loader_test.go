package bank

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

const goodPack = `
id: algebra-practice-1
title: Algebra Practice Set 1
mode: practice
time_limit_sec: 900
questions:
  - id: q1
    prompt: "What is 2 + 2?"
    options: ["3", "4", "5"]
    correct_option: 1
  - id: q2
    prompt: "What is 3 * 3?"
    options: ["6", "9"]
    correct_option: 1
`

const badPack = `
id: broken
title: Broken Pack
mode: practice
questions:
  - id: q1
    prompt: "Only one option"
    options: ["a"]
    correct_option: 0
`

func writePack(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write pack: %v", err)
	}
}

func TestLoadDirSkipsInvalidPacks(t *testing.T) {
	dir := t.TempDir()
	writePack(t, dir, "good.yaml", goodPack)
	writePack(t, dir, "bad.yaml", badPack)
	writePack(t, dir, "notes.txt", "not yaml")

	banks, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(banks) != 1 {
		t.Fatalf("expected 1 valid bank, got %d", len(banks))
	}
	b := banks[0]
	if b.ID != "algebra-practice-1" || b.Mode != "practice" || b.TimeLimitSec != 900 {
		t.Fatalf("unexpected bank: %+v", b)
	}
	if len(b.Questions) != 2 || b.Questions[0].CorrectOption != 1 {
		t.Fatalf("unexpected questions: %+v", b.Questions)
	}
}

func TestSeedIntoProvider(t *testing.T) {
	dir := t.TempDir()
	writePack(t, dir, "good.yaml", goodPack)

	p := NewInMemoryStore()
	if err := Seed(context.Background(), p, dir); err != nil {
		t.Fatalf("seed: %v", err)
	}
	b, err := p.GetBank(context.Background(), "algebra-practice-1")
	if err != nil {
		t.Fatalf("get seeded bank: %v", err)
	}
	if b.Title != "Algebra Practice Set 1" {
		t.Fatalf("unexpected title: %s", b.Title)
	}
}

func TestSeedMissingDirIsNoError(t *testing.T) {
	p := NewInMemoryStore()
	if err := Seed(context.Background(), p, filepath.Join(t.TempDir(), "nope")); err != nil {
		t.Fatalf("missing dir should not error: %v", err)
	}
}
