package wikitext

// parseCharacterEntity handles the code starting at the '&' at
// state.ScanPosition. If the bytes following it match a known entity name
// from the trie, a CharacterEntity node is emitted for the named character
// and scanning resumes after it; otherwise the '&' is left as plain text
// and scanning advances by one byte.
func parseCharacterEntity(state *State, configuration *Configuration) {
	start := state.ScanPosition
	length, value, ok, _ := configuration.CharacterEntities.Find(state.WikiText[start+1:])
	if !ok {
		state.ScanPosition = start + 1
		return
	}
	end := start + 1 + length
	state.Flush(start)
	state.FlushedPosition = end
	state.ScanPosition = end
	state.Nodes = append(state.Nodes, CharacterEntity{
		span:      span{start, end},
		Character: value.(rune),
	})
}
