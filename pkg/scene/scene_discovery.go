package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	builtinGroup = "Built-in Scenes"
	fileGroup    = "Scene Files"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Scene name
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Type        string `json:"type"`        // "builtin" or "file"
	FilePath    string `json:"filePath"`    // Path to the JSON file (file type only)
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse represents the complete response for /api/scenes
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

var builtinScenes = []struct {
	info   SceneInfo
	create func() *Scene
}{
	{
		info: SceneInfo{
			ID:          "default",
			Name:        "Default Scene",
			DisplayName: "Default Scene",
			Description: "Diffuse, metal and hollow glass spheres lit by a large light",
			Group:       builtinGroup,
			Type:        "builtin",
		},
		create: NewDefaultScene,
	},
	{
		info: SceneInfo{
			ID:          "basic",
			Name:        "Basic Scene",
			DisplayName: "Basic Scene",
			Description: "A grey sphere on a grey ground under a white to blue sky",
			Group:       builtinGroup,
			Type:        "builtin",
		},
		create: NewBasicScene,
	},
}

// ListBuiltinScenes returns the scenes compiled into the binary
func ListBuiltinScenes() []SceneInfo {
	infos := make([]SceneInfo, 0, len(builtinScenes))
	for _, b := range builtinScenes {
		infos = append(infos, b.info)
	}
	return infos
}

// NewByName creates a built-in scene by ID
func NewByName(id string) (*Scene, error) {
	for _, b := range builtinScenes {
		if b.info.ID == id {
			return b.create(), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
}

// Load resolves a scene reference: a path to a .json file, a "file:<name>"
// reference into scenesDir, or a built-in scene ID
func Load(ref, scenesDir string) (*Scene, error) {
	switch {
	case strings.HasPrefix(ref, "file:"):
		name := strings.TrimPrefix(ref, "file:")
		if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
			return nil, fmt.Errorf("%w: %q", ErrUnknownScene, ref)
		}
		return LoadFile(filepath.Join(scenesDir, name+".json"))
	case strings.HasSuffix(ref, ".json"):
		return LoadFile(ref)
	}
	return NewByName(ref)
}

// ListSceneFiles scans dir for JSON scene files. A missing directory is not an error.
func ListSceneFiles(dir string) ([]SceneInfo, error) {
	if dir == "" {
		return []SceneInfo{}, nil
	}
	if _, err := os.Stat(dir); err != nil {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := []SceneInfo{}
	for _, filePath := range files {
		scenes = append(scenes, ParseSceneMetadata(filePath))
	}

	// Sort scenes by display name
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})

	return scenes, nil
}

// ParseSceneMetadata reads the name and description of a scene file, falling back
// to values derived from the file name when they are missing or unreadable
func ParseSceneMetadata(filePath string) SceneInfo {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	sceneInfo := SceneInfo{
		ID:          "file:" + nameWithoutExt,
		Name:        titleCase(nameWithoutExt),
		DisplayName: titleCase(nameWithoutExt),
		Group:       fileGroup,
		Type:        "file",
		FilePath:    filePath,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return sceneInfo
	}

	var header struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return sceneInfo
	}

	if header.Name != "" {
		sceneInfo.Name = header.Name
		sceneInfo.DisplayName = header.Name
	}
	sceneInfo.Description = header.Description

	return sceneInfo
}

// ListAllScenes returns built-in scenes followed by the scene files in dir
func ListAllScenes(dir string) (ScenesResponse, error) {
	response := ScenesResponse{
		Groups: []SceneGroup{{Name: builtinGroup, Scenes: ListBuiltinScenes()}},
	}

	files, err := ListSceneFiles(dir)
	if err != nil {
		return response, fmt.Errorf("failed to list scene files: %w", err)
	}
	if len(files) > 0 {
		response.Groups = append(response.Groups, SceneGroup{Name: fileGroup, Scenes: files})
	}

	return response, nil
}

// titleCase converts a filename-style string to title case
// e.g., "glass-bubbles" -> "Glass Bubbles"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
