package mod

// DescriptorKind identifies the descriptor family a metadata file belongs to.
type DescriptorKind string

const (
	FabricDescriptor   DescriptorKind = "fabric"
	ForgeDescriptor    DescriptorKind = "forge"
	NeoForgeDescriptor DescriptorKind = "neoforge"
	QuiltDescriptor    DescriptorKind = "quilt"
)

// Loader returns the loader identity a descriptor of this kind declares.
func (k DescriptorKind) Loader() string {
	return string(k)
}

// Descriptor is the normalized outcome of parsing one embedded metadata
// file: the declared mod identity plus the raw game-version constraint
// strings, exactly as authored (interpretation belongs to the version
// package).
type Descriptor struct {
	Kind            DescriptorKind
	Name            string
	Version         string
	GameConstraints []string
}

// entry names probed per family, in the fixed priority order; within a
// family the first structurally valid file wins so that an artifact
// shipping more than one format never has its descriptors merged
var descriptorProbes = []struct {
	kind  DescriptorKind
	entry string
	parse func(text string) (*Descriptor, bool)
}{
	{kind: FabricDescriptor, entry: "fabric.mod.json", parse: parseFabricDescriptor},
	{kind: ForgeDescriptor, entry: "META-INF/mods.toml", parse: parseForgeDescriptor(ForgeDescriptor)},
	{kind: NeoForgeDescriptor, entry: "META-INF/neoforge.mods.toml", parse: parseForgeDescriptor(NeoForgeDescriptor)},
	{kind: QuiltDescriptor, entry: "quilt.mod.json", parse: parseQuiltDescriptor},
}

// ExtractDescriptors parses every descriptor family present in the
// archive. Families are independent: a broken fabric.mod.json does not
// stop a valid mods.toml in the same jar from being read.
func ExtractDescriptors(a *Archive) []Descriptor {
	var found []Descriptor
	for _, probe := range descriptorProbes {
		text, ok := a.ReadEntryText(probe.entry)
		if !ok {
			continue
		}
		if d, ok := probe.parse(text); ok {
			found = append(found, *d)
		}
	}
	return found
}
