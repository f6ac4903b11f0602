package wikitext

import "testing"

func TestNewConfigurationCompilesNamespaces(t *testing.T) {
	cfg := New(ConfigurationSource{
		CategoryNamespaces: []string{"Category"},
		FileNamespaces:     []string{"File"},
	})

	length, value, ok, _ := cfg.Namespaces.Find("Category:Foo")
	if !ok {
		t.Fatalf("expected Namespaces trie to match %q", "Category:Foo")
	}
	if length != len("Category") {
		t.Errorf("length = %d, want %d", length, len("Category"))
	}
	if value.(Namespace) != NamespaceCategory {
		t.Errorf("value = %v, want NamespaceCategory", value)
	}
}

func TestNewConfigurationExtensionTagsOverrideBuiltins(t *testing.T) {
	cfg := New(ConfigurationSource{ExtensionTags: []string{"ref", "Math"}})

	if cfg.TagNameMap["ref"] != TagClassExtensionTag {
		t.Errorf("ref class = %v, want TagClassExtensionTag", cfg.TagNameMap["ref"])
	}
	if cfg.TagNameMap["math"] != TagClassExtensionTag {
		t.Errorf("math class = %v, want TagClassExtensionTag (case-insensitive)", cfg.TagNameMap["math"])
	}
	if cfg.TagNameMap["span"] != TagClassTag {
		t.Errorf("span class = %v, want TagClassTag", cfg.TagNameMap["span"])
	}
}

func TestDefaultConfigurationParsesWithoutPanicking(t *testing.T) {
	output := Default().Parse("simple text with no markup")
	if len(output.Nodes) == 0 {
		t.Fatal("expected at least one node")
	}
}
