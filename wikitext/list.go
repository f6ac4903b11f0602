package wikitext

// parseListItemStart handles a run of '#', '*', ':' and ';' at the start of
// a line (or immediately following such a run already opened on this line),
// pushing one new OrderedList/UnorderedList/DefinitionList frame per marker
// character. Each marker nests one level deeper than the last, matching
// MediaWiki's list-level-by-prefix-length convention. Spaces and tabs after
// the last marker are skipped; the item's content starts after them.
func parseListItemStart(state *State) {
	for {
		start := state.ScanPosition
		switch state.GetByte(start) {
		case '#':
			state.PushOpenNode(OpenNodeType{Kind: OpenOrderedList, ItemStart: start}, start+1)
		case '*':
			state.PushOpenNode(OpenNodeType{Kind: OpenUnorderedList, ItemStart: start}, start+1)
		case ':', ';':
			state.PushOpenNode(OpenNodeType{
				Kind:             OpenDefinitionList,
				DefinitionMarker: byte(state.GetByte(start)),
				ItemStart:        start,
			}, start+1)
		default:
			state.ScanPosition = state.SkipWhitespaceForwards(start)
			state.FlushedPosition = state.ScanPosition
			return
		}
	}
}

// isListMarker reports whether b opens or continues a list level.
func isListMarker(b int) bool {
	switch b {
	case '#', '*', ':', ';':
		return true
	default:
		return false
	}
}

// listFrameMatchesMarker reports whether the list frame opened by kind can
// be continued by marker byte b.
func listFrameMatchesMarker(kind OpenNodeKind, b int) bool {
	switch b {
	case '#':
		return kind == OpenOrderedList
	case '*':
		return kind == OpenUnorderedList
	case ':', ';':
		return kind == OpenDefinitionList
	default:
		return false
	}
}

// openListFrameCount returns how many of the innermost stack frames are
// list frames (Ordered/Unordered/Definition), i.e. the current list
// nesting depth.
func openListFrameCount(state *State) int {
	depth := 0
	for i := len(state.Stack) - 1; i >= 0; i-- {
		switch state.Stack[i].Type.Kind {
		case OpenOrderedList, OpenUnorderedList, OpenDefinitionList:
			depth++
		default:
			return depth
		}
	}
	return depth
}

// parseListEndOfLine handles the end of a line while one or more list
// frames are open. It walks the new line's marker prefix against the
// currently open list levels, outermost first: a matching marker continues
// that level, a mismatching or absent marker closes it and every level
// inside it. A ';' continuing a level opened by ':' (or vice versa) raises
// DefinitionTermContinuation, since MediaWiki treats switching between term
// and details markers mid-list as a tolerated anomaly rather than a level
// change. If further markers follow the matched ones, beginning-of-line
// handling runs on them and opens deeper nested levels; if the line matched
// at least one level and no further marker follows, the spaces after the
// markers are skipped and the rest of the line becomes the new item's
// content; a line that matched no level gets ordinary beginning-of-line
// handling.
func parseListEndOfLine(state *State, lineStart int) {
	depth := openListFrameCount(state)
	if depth == 0 {
		parseBeginningOfLine(state, lineStart)
		return
	}

	state.Flush(state.ScanPosition)
	base := len(state.Stack) - depth
	position := lineStart
	matched := 0
	lastMarker := 0
	for matched < depth {
		b := state.GetByte(position)
		if !isListMarker(b) {
			break
		}
		kind := state.Stack[base+matched].Type.Kind
		if !listFrameMatchesMarker(kind, b) {
			break
		}
		if kind == OpenDefinitionList && byte(b) != state.Stack[base+matched].Type.DefinitionMarker {
			state.Warnings = append(state.Warnings, Warning{
				Start:   position,
				End:     position + 1,
				Message: DefinitionTermContinuation,
			})
		}
		lastMarker = b
		matched++
		position++
	}

	for depth > matched {
		closeInnermostListFrame(state)
		depth--
	}

	// A marker still at position means the line wants to nest deeper than
	// the matched nesting level: let that markup open further frames whose
	// content folds into the item still accumulating, rather than starting
	// a new sibling item at the matched level.
	if matched > 0 && !isListMarker(state.GetByte(position)) {
		startNewListItem(state, position, byte(lastMarker))
		position = state.SkipWhitespaceForwards(position)
		state.FlushedPosition = position
		state.ScanPosition = position
		return
	}

	state.FlushedPosition = position
	state.ScanPosition = position
	parseBeginningOfLine(state, position)
}

// startNewListItem commits the innermost open list frame's accumulated
// content as one finished item and resets it to accumulate a fresh item
// starting at itemStart, without popping the frame — used when a
// continuing line's marker prefix matches the frame's level exactly,
// meaning the list continues rather than closes. nextMarker is the ':' or
// ';' byte that matched this frame on the continuing line, recorded for the
// next item's type; it is ignored for Ordered/UnorderedList frames.
func startNewListItem(state *State, itemStart int, nextMarker byte) {
	top := &state.Stack[len(state.Stack)-1]
	switch top.Type.Kind {
	case OpenOrderedList, OpenUnorderedList:
		top.Type.Items = append(top.Type.Items, ListItem{
			span:  span{top.Type.ItemStart, itemStart},
			Nodes: state.Nodes,
		})
	case OpenDefinitionList:
		itemType := DefinitionListDetails
		if top.Type.DefinitionMarker == ';' {
			itemType = DefinitionListTerm
		}
		top.Type.DefinitionItems = append(top.Type.DefinitionItems, DefinitionListItem{
			span:  span{top.Type.ItemStart, itemStart},
			Nodes: state.Nodes,
			Type:  itemType,
		})
		top.Type.DefinitionMarker = nextMarker
	}
	top.Type.ItemStart = itemStart
	state.Nodes = nil
}

// closeInnermostListFrame closes the innermost open list frame, combining
// whatever items it already committed via startNewListItem with the item
// still accumulating, and emits the completed List/DefinitionList node among
// the nodes of the frame that was open when this one was pushed — its
// current item, if another list frame encloses this one.
func closeInnermostListFrame(state *State) {
	openNode := state.Stack[len(state.Stack)-1]
	state.Stack = state.Stack[:len(state.Stack)-1]
	end := state.ScanPosition

	var node Node
	switch openNode.Type.Kind {
	case OpenOrderedList:
		items := append(openNode.Type.Items, ListItem{
			span:  span{openNode.Type.ItemStart, end},
			Nodes: state.Nodes,
		})
		node = OrderedList{span: span{openNode.Start, end}, Items: items}
	case OpenUnorderedList:
		items := append(openNode.Type.Items, ListItem{
			span:  span{openNode.Type.ItemStart, end},
			Nodes: state.Nodes,
		})
		node = UnorderedList{span: span{openNode.Start, end}, Items: items}
	case OpenDefinitionList:
		itemType := DefinitionListDetails
		if openNode.Type.DefinitionMarker == ';' {
			itemType = DefinitionListTerm
		}
		items := append(openNode.Type.DefinitionItems, DefinitionListItem{
			span:  span{openNode.Type.ItemStart, end},
			Nodes: state.Nodes,
			Type:  itemType,
		})
		node = DefinitionList{span: span{openNode.Start, end}, Items: items}
	default:
		state.Nodes = append(openNode.Nodes, state.Nodes...)
		return
	}
	state.Nodes = append(openNode.Nodes, node)
}
