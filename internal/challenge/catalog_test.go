package challenge

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/abhisek/promptquest/internal/i18n"
)

func TestLoadEmbedded(t *testing.T) {
	c, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded failed: %v", err)
	}
	if c.Len() == 0 {
		t.Fatal("expected embedded challenges")
	}

	ch, err := c.Get(1)
	if err != nil {
		t.Fatalf("Get(1) failed: %v", err)
	}
	if ch.Title.For(i18n.LangEN) == "" {
		t.Error("challenge 1 missing english title")
	}
	if ch.Title.For(i18n.LangJA) == "" {
		t.Error("challenge 1 missing japanese title")
	}
	if ch.Goal.For(i18n.LangEN) == "" {
		t.Error("challenge 1 missing english goal")
	}
}

func TestGetUnknownID(t *testing.T) {
	c, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded failed: %v", err)
	}
	_, err = c.Get(999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestAllOrderedByID(t *testing.T) {
	c, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded failed: %v", err)
	}
	all := c.All()
	for i := 1; i < len(all); i++ {
		if all[i-1].ID >= all[i].ID {
			t.Fatalf("challenges not in ascending id order: %d before %d", all[i-1].ID, all[i].ID)
		}
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	data := `
id: 42
title:
  ja: "テスト課題"
  en: "Test Challenge"
description:
  ja: "説明"
  en: "Description"
goal:
  ja: "目標"
  en: "Goal"
`
	if err := os.WriteFile(filepath.Join(dir, "42.yaml"), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}
	if c.Len() != 1 {
		t.Fatalf("expected 1 challenge, got %d", c.Len())
	}
	ch, err := c.Get(42)
	if err != nil {
		t.Fatalf("Get(42) failed: %v", err)
	}
	if ch.Title.For(i18n.LangEN) != "Test Challenge" {
		t.Errorf("title = %q", ch.Title.For(i18n.LangEN))
	}
}

func TestLoadDirMissingFallsBackToDefaults(t *testing.T) {
	c, err := LoadDir("/nonexistent/challenges")
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}
	if c.Len() == 0 {
		t.Fatal("expected embedded defaults")
	}
}

func TestDuplicateIDRejected(t *testing.T) {
	dir := t.TempDir()
	data := "id: 1\ntitle:\n  ja: \"a\"\n"
	for _, name := range []string{"a.yaml", "b.yaml"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := LoadDir(dir); err == nil {
		t.Fatal("expected duplicate id error")
	}
}
