package wikitext

// parseBoldItalic handles a run of one or more apostrophes. Two apostrophes
// open or close italics, three open or close bold, five open or close bold
// and italic together. A run of four emits bold over its last three
// apostrophes and leaves the first as plain text, matching MediaWiki's
// apostrophe-counting quirk; a run longer than five emits bold and italic
// over its first five apostrophes, and the rest of the run is scanned again
// as a run of its own.
func parseBoldItalic(state *State) {
	start := state.ScanPosition
	position := start
	for state.GetByte(position) == '\'' {
		position++
	}
	length := position - start

	switch {
	case length < 2:
		state.ScanPosition = start + 1
	case length < 3:
		state.Flush(start)
		state.FlushedPosition = start + length
		state.ScanPosition = state.FlushedPosition
		state.Nodes = append(state.Nodes, Italic{span{start, state.ScanPosition}})
	case length < 5:
		italicStart := start + (length - 3)
		state.Flush(italicStart)
		state.FlushedPosition = position
		state.ScanPosition = position
		state.Nodes = append(state.Nodes, Bold{span{italicStart, position}})
	default:
		state.Flush(start)
		state.FlushedPosition = start + 5
		state.ScanPosition = state.FlushedPosition
		state.Nodes = append(state.Nodes, BoldItalic{span{start, state.ScanPosition}})
	}
}
