package wikitext

// parseExternalLinkStart handles a single '[' at state.ScanPosition, which
// opens an external link if and only if it is immediately followed by a
// configured protocol. Otherwise the '[' is left as plain text.
func parseExternalLinkStart(state *State, configuration *Configuration) {
	start := state.ScanPosition
	innerStart := start + 1
	_, _, ok, _ := configuration.Protocols.Find(state.WikiText[innerStart:])
	if !ok {
		state.ScanPosition = innerStart
		return
	}
	state.PushOpenNode(OpenNodeType{Kind: OpenExternalLink}, innerStart)
}

// parseExternalLinkEnd handles ']' closing the innermost ExternalLink
// frame.
func parseExternalLinkEnd(state *State, openNode OpenNode) {
	end := state.ScanPosition + 1
	state.Flush(state.ScanPosition)
	state.Stack = state.Stack[:len(state.Stack)-1]
	state.Nodes = append(openNode.Nodes, ExternalLink{
		span:  span{openNode.Start, end},
		Nodes: state.Nodes,
	})
	state.FlushedPosition = end
	state.ScanPosition = end
}

// parseExternalLinkEndOfLine abandons an ExternalLink frame left open at
// the end of a line, reinterpreting its contents as plain text.
func parseExternalLinkEndOfLine(state *State, openNode OpenNode) {
	state.Stack = state.Stack[:len(state.Stack)-1]
	state.Warnings = append(state.Warnings, Warning{
		Start:   openNode.Start,
		End:     openNode.Start + 1,
		Message: InvalidLinkSyntax,
	})
	state.Rewind(openNode.Nodes, openNode.Start)
}
