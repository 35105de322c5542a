package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/juanibiapina/sideswipe/internal/storage"
	"github.com/mark3labs/mcp-go/mcp"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s := NewServer("test")
	s.dbPath = filepath.Join(t.TempDir(), "state", "state.db")
	return s
}

// call invokes a registered tool and returns its text payload
func call(t *testing.T, s *Server, name string, args map[string]any) (string, bool) {
	t.Helper()

	tool, ok := s.mcpServer.ListTools()[name]
	if !ok {
		t.Fatalf("tool %q not registered", name)
	}

	var request mcp.CallToolRequest
	request.Params.Name = name
	request.Params.Arguments = args

	result, err := tool.Handler(context.Background(), request)
	if err != nil {
		t.Fatalf("%s returned error: %v", name, err)
	}
	if len(result.Content) == 0 {
		t.Fatalf("%s returned no content", name)
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("%s returned %T, want text", name, result.Content[0])
	}
	return text.Text, result.IsError
}

func decode(t *testing.T, text string) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		t.Fatalf("invalid JSON %q: %v", text, err)
	}
	return out
}

func TestListToolNames(t *testing.T) {
	names := NewServer("test").ListToolNames()
	want := []string{"sideswipe_layout", "sideswipe_positions", "sideswipe_resolve"}

	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("ListToolNames() = %v, want %v", names, want)
	}
}

func TestResolveTool(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
		want float64
	}{
		{
			name: "short drag stays",
			args: map[string]any{"current_index": 2, "item_width": 300, "item_count": 5, "dx": -100},
			want: 2,
		},
		{
			name: "half page advances",
			args: map[string]any{"current_index": 2, "item_width": 300, "item_count": 5, "dx": -160},
			want: 3,
		},
		{
			name: "fast flick skips pages",
			args: map[string]any{"current_index": 0, "item_width": 300, "item_count": 5, "dx": -100, "vx": -3.2},
			want: 2,
		},
	}

	s := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, isError := call(t, s, "sideswipe_resolve", tt.args)
			if isError {
				t.Fatalf("tool error: %s", text)
			}
			if got := decode(t, text)["index"]; got != tt.want {
				t.Errorf("index = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveTool_InvalidInput(t *testing.T) {
	s := newTestServer(t)

	tests := []map[string]any{
		{"item_width": 300, "item_count": 5, "dx": 0},
		{"current_index": 0, "item_width": 0, "item_count": 5, "dx": 0},
		{"current_index": 0, "item_width": 300, "item_count": 0, "dx": 0},
		{"current_index": 7, "item_width": 300, "item_count": 5, "dx": 0},
	}

	for _, args := range tests {
		if text, isError := call(t, s, "sideswipe_resolve", args); !isError {
			t.Errorf("args %v: expected an error, got %s", args, text)
		}
	}
}

func TestLayoutTool(t *testing.T) {
	s := newTestServer(t)

	text, isError := call(t, s, "sideswipe_layout", map[string]any{
		"item_count":     3,
		"item_width":     100,
		"content_offset": 8,
	})
	if isError {
		t.Fatalf("tool error: %s", text)
	}

	out := decode(t, text)
	items, ok := out["items"].([]any)
	if !ok || len(items) != 3 {
		t.Fatalf("items = %v", out["items"])
	}
	last := items[2].(map[string]any)
	if last["offset"] != 208.0 || last["snap_offset"] != 200.0 || last["key"] != "sideswipe-carousel-item-2" {
		t.Errorf("items[2] = %v", last)
	}
}

func TestLayoutTool_Deck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "talk.toml")
	content := "[[item]]\ntitle = \"Hello\"\n\n[[item]]\ntitle = \"Bye\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s := newTestServer(t)
	text, isError := call(t, s, "sideswipe_layout", map[string]any{"deck": path, "item_width": 50})
	if isError {
		t.Fatalf("tool error: %s", text)
	}

	out := decode(t, text)
	if out["title"] != "talk" {
		t.Errorf("title = %v, want talk", out["title"])
	}
	items := out["items"].([]any)
	if items[1].(map[string]any)["title"] != "Bye" {
		t.Errorf("items[1] = %v", items[1])
	}
}

func TestLayoutTool_NeedsItems(t *testing.T) {
	s := newTestServer(t)
	if _, isError := call(t, s, "sideswipe_layout", map[string]any{"item_width": 50}); !isError {
		t.Error("expected an error without deck or item_count")
	}
}

func TestPositionsTool(t *testing.T) {
	s := newTestServer(t)

	text, isError := call(t, s, "sideswipe_positions", map[string]any{})
	if isError {
		t.Fatalf("tool error: %s", text)
	}
	if positions := decode(t, text)["positions"].([]any); len(positions) != 0 {
		t.Errorf("positions = %v, want none", positions)
	}

	store, err := storage.Open(s.dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.SavePosition("/decks/a.toml", 4); err != nil {
		t.Fatal(err)
	}
	store.Close()

	text, _ = call(t, s, "sideswipe_positions", map[string]any{})
	positions := decode(t, text)["positions"].([]any)
	if len(positions) != 1 || positions[0].(map[string]any)["index"] != 4.0 {
		t.Errorf("positions = %v", positions)
	}

	text, _ = call(t, s, "sideswipe_positions", map[string]any{"forget": "/decks/a.toml"})
	if decode(t, text)["removed"] != true {
		t.Errorf("forget result = %s", text)
	}
}
