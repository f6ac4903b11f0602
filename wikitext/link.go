package wikitext

// parseLinkStart handles "[[" at state.ScanPosition. A target that matches
// a configured namespace name followed by ':' opens a Category or Image
// link rather than a plain Link; nesting a non-File link inside another
// link is invalid and rewinds the outer link back to plain text (MediaWiki
// does not support nested piped links), except for the File namespace,
// which is allowed to nest since a File link's caption commonly contains
// further links.
func parseLinkStart(state *State, configuration *Configuration) {
	start := state.ScanPosition
	innerStart := start + 2

	for i := len(state.Stack) - 1; i >= 0; i-- {
		if state.Stack[i].Type.Kind == OpenLink {
			if state.Stack[i].Type.Namespace == nil || *state.Stack[i].Type.Namespace != NamespaceFile {
				openNode := state.Stack[i]
				state.Stack = state.Stack[:i]
				state.Warnings = append(state.Warnings, Warning{
					Start:   openNode.Start,
					End:     openNode.Start + 2,
					Message: InvalidLinkSyntax,
				})
				state.Rewind(openNode.Nodes, openNode.Start)
				return
			}
			break
		}
	}

	nameLen, value, ok, _ := configuration.Namespaces.Find(state.WikiText[innerStart:])
	if ok && state.GetByte(innerStart+nameLen) == ':' {
		ns := value.(Namespace)
		targetStart := innerStart + nameLen + 1
		state.PushOpenNode(OpenNodeType{Kind: OpenLink, Namespace: &ns}, targetStart)
		parseLinkTarget(state, configuration, targetStart)
		return
	}

	state.PushOpenNode(OpenNodeType{Kind: OpenLink}, innerStart)
	parseLinkTarget(state, configuration, innerStart)
}

// parseLinkTarget scans the link target text starting at targetStart,
// ending at '|', ']', a newline, or an unexpected '[', '{', '}' (any of
// which rewind the link as invalid), then records the scanned text as the
// frame's Target and resumes normal scanning inside the link.
func parseLinkTarget(state *State, configuration *Configuration, targetStart int) {
	position := targetStart
	for {
		b := state.GetByte(position)
		switch b {
		case '|':
			openNode := &state.Stack[len(state.Stack)-1]
			openNode.Type.Target = state.WikiText[targetStart:position]
			state.FlushedPosition = position + 1
			state.ScanPosition = position
			return
		case ']':
			openNode := &state.Stack[len(state.Stack)-1]
			openNode.Type.Target = state.WikiText[targetStart:position]
			state.FlushedPosition = position
			state.ScanPosition = position
			return
		case -1, '\n', '[', '{', '}':
			openNode := state.Stack[len(state.Stack)-1]
			state.Stack = state.Stack[:len(state.Stack)-1]
			state.Warnings = append(state.Warnings, Warning{
				Start:   openNode.Start,
				End:     openNode.Start + 2,
				Message: InvalidLinkSyntax,
			})
			state.Rewind(openNode.Nodes, openNode.Start)
			return
		default:
			position++
		}
	}
}

// parseLinkEnd handles "]]" closing the innermost Link/Category/Image
// frame. For a plain Link only, a run of configured link-trail characters
// immediately following "]]" is appended to the link's display text and
// absorbed into its End position — MediaWiki's "link trail" feature, which
// lets "[[cat]]s" render as a single link reading "cats". Category and
// Image links have no such trail: the "]]" itself ends the node and
// anything after it is ordinary text.
func parseLinkEnd(state *State, configuration *Configuration, openNode OpenNode) {
	end := state.ScanPosition + 2
	target := openNode.Type.Target
	state.Flush(state.ScanPosition)

	var node Node
	switch {
	case openNode.Type.Namespace != nil && *openNode.Type.Namespace == NamespaceCategory:
		node = Category{span: span{openNode.Start, end}, Target: target, Ordinal: append([]Node{}, state.Nodes...)}
	case openNode.Type.Namespace != nil && *openNode.Type.Namespace == NamespaceFile:
		node = Image{span: span{openNode.Start, end}, Target: target, Text: append([]Node{}, state.Nodes...)}
	default:
		trailEnd := end
		for {
			r, size := decodeRuneAt(state.WikiText, trailEnd)
			if size == 0 {
				break
			}
			if _, ok := configuration.LinkTrailCharacterSet[r]; !ok {
				break
			}
			trailEnd += size
		}

		text := append([]Node{}, state.Nodes...)
		if trailEnd > end {
			text = append(text, Text{
				span:  span{end, trailEnd},
				Value: state.WikiText[end:trailEnd],
			})
		}
		node = Link{span: span{openNode.Start, trailEnd}, Target: target, Text: text}
		end = trailEnd
	}

	state.Stack = state.Stack[:len(state.Stack)-1]
	state.Nodes = append(openNode.Nodes, node)
	state.FlushedPosition = end
	state.ScanPosition = end
}

// decodeRuneAt decodes the UTF-8 rune starting at byte offset i in s,
// returning the rune and its width in bytes, or (0, 0) if i is at or past
// the end of s.
func decodeRuneAt(s string, i int) (rune, int) {
	if i >= len(s) {
		return 0, 0
	}
	for j, r := range s[i:] {
		if j == 0 {
			return r, len(string(r))
		}
	}
	return 0, 0
}
