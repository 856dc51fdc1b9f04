package mod

import (
	"encoding/json"
)

type fabricDescriptor struct {
	ID      string                     `json:"id"`
	Name    string                     `json:"name"`
	Version string                     `json:"version"`
	Depends map[string]json.RawMessage `json:"depends"`
}

// parseFabricDescriptor reads fabric.mod.json. The "minecraft" entry of
// the depends map may be a plain string, an object carrying a version
// field, or a list mixing both; all shapes normalize to a flat list of raw
// constraint strings.
func parseFabricDescriptor(text string) (*Descriptor, bool) {
	var meta fabricDescriptor
	if err := json.Unmarshal([]byte(text), &meta); err != nil {
		return nil, false
	}

	name := meta.Name
	if name == "" {
		name = meta.ID
	}

	d := &Descriptor{
		Kind:    FabricDescriptor,
		Name:    name,
		Version: meta.Version,
	}

	if raw, ok := meta.Depends["minecraft"]; ok {
		d.GameConstraints = normalizeDependency(raw)
	}
	return d, true
}

// normalizeDependency flattens the three accepted dependency shapes into
// raw constraint strings, dropping anything unrecognized.
func normalizeDependency(raw json.RawMessage) []string {
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return []string{asString}
	}

	var asObject struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(raw, &asObject); err == nil && asObject.Version != "" {
		return []string{asObject.Version}
	}

	var asList []json.RawMessage
	if err := json.Unmarshal(raw, &asList); err == nil {
		var constraints []string
		for _, item := range asList {
			constraints = append(constraints, normalizeDependency(item)...)
		}
		return constraints
	}

	return nil
}
