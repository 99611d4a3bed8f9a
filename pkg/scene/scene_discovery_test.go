package scene

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"glass-bubbles", "Glass Bubbles"},
		{"two_balls", "Two Balls"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestNewByName(t *testing.T) {
	for _, info := range ListBuiltinScenes() {
		s, err := NewByName(info.ID)
		if err != nil {
			t.Errorf("NewByName(%q) failed: %v", info.ID, err)
			continue
		}
		if s.Name != info.ID {
			t.Errorf("Expected scene name %q, got %q", info.ID, s.Name)
		}
	}

	if _, err := NewByName("cornell"); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func writeSceneFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseSceneMetadata(t *testing.T) {
	dir := t.TempDir()

	named := ParseSceneMetadata(writeSceneFile(t, dir, "two-balls.json", validSceneJSON))
	if named.ID != "file:two-balls" || named.DisplayName != "Two Balls" || named.Type != "file" {
		t.Errorf("Unexpected metadata %+v", named)
	}

	unnamed := ParseSceneMetadata(writeSceneFile(t, dir, "my_scene.json", `{"description": "x"}`))
	if unnamed.DisplayName != "My Scene" || unnamed.Description != "x" {
		t.Errorf("Expected fallback name, got %+v", unnamed)
	}

	broken := ParseSceneMetadata(writeSceneFile(t, dir, "broken.json", `{`))
	if broken.DisplayName != "Broken" {
		t.Errorf("Expected fallback metadata for broken JSON, got %+v", broken)
	}
}

func TestListAllScenes(t *testing.T) {
	dir := t.TempDir()
	writeSceneFile(t, dir, "zeta.json", `{"name": "Zeta"}`)
	writeSceneFile(t, dir, "alpha.json", `{"name": "Alpha"}`)
	writeSceneFile(t, dir, "notes.txt", "ignored")

	response, err := ListAllScenes(dir)
	if err != nil {
		t.Fatalf("ListAllScenes failed: %v", err)
	}
	if len(response.Groups) != 2 {
		t.Fatalf("Expected built-in and file groups, got %d", len(response.Groups))
	}
	if response.Groups[0].Name != builtinGroup || len(response.Groups[0].Scenes) != len(ListBuiltinScenes()) {
		t.Errorf("Unexpected built-in group %+v", response.Groups[0])
	}

	files := response.Groups[1].Scenes
	if len(files) != 2 || files[0].DisplayName != "Alpha" || files[1].DisplayName != "Zeta" {
		t.Errorf("Expected sorted scene files, got %+v", files)
	}

	// A missing directory just yields the built-ins
	response, err = ListAllScenes(filepath.Join(dir, "nope"))
	if err != nil || len(response.Groups) != 1 {
		t.Errorf("Expected only built-ins for a missing directory, got %+v, %v", response, err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeSceneFile(t, dir, "two-balls.json", validSceneJSON)

	tests := []struct {
		ref     string
		name    string
		wantErr error
	}{
		{"default", "default", nil},
		{"basic", "basic", nil},
		{"file:two-balls", "Two Balls", nil},
		{path, "Two Balls", nil},
		{"file:../two-balls", "", ErrUnknownScene},
		{"nonsense", "", ErrUnknownScene},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			s, err := Load(tt.ref, dir)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if s.Name != tt.name {
				t.Errorf("Expected scene %q, got %q", tt.name, s.Name)
			}
		})
	}
}
