package mod

import (
	"encoding/json"
)

type quiltDescriptor struct {
	QuiltLoader struct {
		Version  string `json:"version"`
		Metadata struct {
			Name string `json:"name"`
		} `json:"metadata"`
		Depends []json.RawMessage `json:"depends"`
	} `json:"quilt_loader"`
}

// parseQuiltDescriptor reads quilt.mod.json: mod identity lives under a
// nested metadata object, and dependencies are a list of objects keyed by
// id, with the minecraft entry carrying a versions constraint.
func parseQuiltDescriptor(text string) (*Descriptor, bool) {
	var meta quiltDescriptor
	if err := json.Unmarshal([]byte(text), &meta); err != nil {
		return nil, false
	}

	d := &Descriptor{
		Kind:    QuiltDescriptor,
		Name:    meta.QuiltLoader.Metadata.Name,
		Version: meta.QuiltLoader.Version,
	}

	for _, raw := range meta.QuiltLoader.Depends {
		var dep struct {
			ID       string          `json:"id"`
			Versions json.RawMessage `json:"versions"`
		}
		if err := json.Unmarshal(raw, &dep); err != nil || dep.ID != "minecraft" {
			continue
		}

		var asString string
		if err := json.Unmarshal(dep.Versions, &asString); err == nil {
			d.GameConstraints = []string{asString}
			break
		}
		var asList []string
		if err := json.Unmarshal(dep.Versions, &asList); err == nil {
			d.GameConstraints = asList
			break
		}
	}

	return d, true
}
