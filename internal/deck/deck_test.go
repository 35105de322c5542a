package deck

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeDeck(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRead(t *testing.T) {
	path := writeDeck(t, "slides.toml", `
title = "Talk"

[[item]]
title = "Intro"
body = "hello"

[[item]]
title = "Outro"
`)

	d, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if d.Title != "Talk" {
		t.Errorf("Title = %q, want Talk", d.Title)
	}
	if len(d.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(d.Items))
	}
	if d.Items[0].Body != "hello" || d.Items[1].Title != "Outro" {
		t.Errorf("Items = %+v", d.Items)
	}
	if !filepath.IsAbs(d.Source) {
		t.Errorf("Source = %q, want absolute path", d.Source)
	}
}

func TestRead_TitleFromFilename(t *testing.T) {
	path := writeDeck(t, "recipes.toml", "[[item]]\ntitle = \"Soup\"\n")

	d, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if d.Title != "recipes" {
		t.Errorf("Title = %q, want recipes", d.Title)
	}
}

func TestRead_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := Read(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("empty deck", func(t *testing.T) {
		path := writeDeck(t, "empty.toml", `title = "Nothing"`)
		_, err := Read(path)
		if !errors.Is(err, ErrEmpty) {
			t.Errorf("Read() error = %v, want ErrEmpty", err)
		}
	})

	t.Run("invalid toml", func(t *testing.T) {
		path := writeDeck(t, "bad.toml", "[[item]\n")
		if _, err := Read(path); err == nil {
			t.Error("expected error")
		}
	})
}

func TestFromStrings(t *testing.T) {
	d, err := FromStrings([]string{"one", "two\nsecond line"})
	if err != nil {
		t.Fatalf("FromStrings() error = %v", err)
	}

	want := []Item{{Title: "one"}, {Title: "two", Body: "second line"}}
	if len(d.Items) != len(want) {
		t.Fatalf("Items = %+v", d.Items)
	}
	for i := range want {
		if d.Items[i] != want[i] {
			t.Errorf("Items[%d] = %+v, want %+v", i, d.Items[i], want[i])
		}
	}
	if d.Source != "" {
		t.Errorf("Source = %q, want empty for ad-hoc decks", d.Source)
	}

	if _, err := FromStrings(nil); !errors.Is(err, ErrEmpty) {
		t.Errorf("FromStrings(nil) error = %v, want ErrEmpty", err)
	}
}

func TestItemText(t *testing.T) {
	if got := (Item{Title: "a"}).Text(); got != "a" {
		t.Errorf("Text() = %q", got)
	}
	if got := (Item{Title: "a", Body: "b"}).Text(); got != "a\n\nb" {
		t.Errorf("Text() = %q", got)
	}
}
