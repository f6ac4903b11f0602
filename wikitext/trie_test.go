package wikitext

import "testing"

func TestTrieFindExactMatch(t *testing.T) {
	trie := NewTrie()
	trie.AddCaseSensitiveTerm("amp;", 'a')
	trie.AddCaseSensitiveTerm("lt;", 'b')

	length, value, ok, _ := trie.Find("amp;rest")
	if !ok {
		t.Fatalf("expected match")
	}
	if length != 4 {
		t.Errorf("length = %d, want 4", length)
	}
	if value.(rune) != 'a' {
		t.Errorf("value = %v, want 'a'", value)
	}
}

func TestTrieFindNoMatch(t *testing.T) {
	trie := NewTrie()
	trie.AddCaseSensitiveTerm("amp;", 'a')

	_, _, ok, _ := trie.Find("xyz")
	if ok {
		t.Errorf("expected no match")
	}
}

func TestTrieFindCaseFolded(t *testing.T) {
	trie := NewTrie()
	trie.AddTerm("REDIRECT", nil)

	length, _, ok, _ := trie.Find("redirect and more")
	if !ok {
		t.Fatalf("expected case-folded match")
	}
	if length != len("redirect") {
		t.Errorf("length = %d, want %d", length, len("redirect"))
	}
}

func TestTrieFindDistinguishesTermsSharingAPrefix(t *testing.T) {
	trie := NewTrie()
	trie.AddCaseSensitiveTerm("http:", nil)
	trie.AddCaseSensitiveTerm("https://", nil)

	length, _, ok, _ := trie.Find("https://example.com")
	if !ok {
		t.Fatalf("expected match")
	}
	if length != len("https://") {
		t.Errorf("length = %d, want %d (https:// should match, not http:)", length, len("https://"))
	}
}
