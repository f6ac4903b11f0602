package wikitext

// simpleFoldBytes returns the simple case-folding equivalents of an ASCII
// byte other than itself: the other case of an ASCII letter. Wiki-text
// trie lookups (protocols, namespace names, magic words) are matched
// case-insensitively over ASCII only; non-ASCII letters are not folded and
// match only in the exact case of the inserted term.
func simpleFoldBytes(b byte) []byte {
	switch {
	case b >= 'a' && b <= 'z':
		return []byte{b - 32}
	case b >= 'A' && b <= 'Z':
		return []byte{b + 32}
	default:
		return nil
	}
}
