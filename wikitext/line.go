package wikitext

// parseBeginningOfLine dispatches on the first byte(s) of a new line at
// position. It recognizes list markers, heading markers, a horizontal
// divider (four or more '-'), a table opener ("{|"), and a leading literal
// space (Preformatted); anything else falls through to normal scanning
// from position. A blank line emits a ParagraphBreak node (a run of two or
// more blank lines also raises RepeatedEmptyLine).
func parseBeginningOfLine(state *State, position int) {
	state.ScanPosition = position
	state.FlushedPosition = position

	switch state.GetByte(position) {
	case '\n':
		parseEmptyLine(state, position)
		return
	case '#', '*', ':', ';':
		parseListItemStart(state)
		return
	case '=':
		parseHeadingStart(state)
		return
	case '-':
		if isHorizontalDividerRun(state, position) {
			parseHorizontalDivider(state, position)
			return
		}
	case ' ':
		state.PushOpenNode(OpenNodeType{Kind: OpenPreformatted}, position+1)
		return
	case '{':
		if state.GetByte(position+1) == '|' {
			parseTableStart(state)
			return
		}
	}
	state.ScanPosition = position
}

func isHorizontalDividerRun(state *State, position int) bool {
	count := 0
	for state.GetByte(position+count) == '-' {
		count++
	}
	return count >= 4
}

func parseHorizontalDivider(state *State, position int) {
	end := position
	for state.GetByte(end) == '-' {
		end++
	}
	state.Flush(position)
	state.FlushedPosition = end
	state.ScanPosition = end
	state.Nodes = append(state.Nodes, HorizontalDivider{span{position, end}})
}

// parseEmptyLine handles a blank line: the first blank line between
// paragraph content becomes a ParagraphBreak node; every further
// consecutive blank line raises RepeatedEmptyLine instead of emitting
// another node, and scanning resumes after the whole run of blank lines.
func parseEmptyLine(state *State, position int) {
	lineStart := position
	count := 0
	for state.GetByte(position) == '\n' {
		count++
		position++
	}
	end := position
	if count > 1 {
		state.Warnings = append(state.Warnings, Warning{
			Start:   lineStart,
			End:     end,
			Message: RepeatedEmptyLine,
		})
	}
	state.Flush(lineStart)
	state.FlushedPosition = end
	state.Nodes = append(state.Nodes, ParagraphBreak{span{lineStart, end}})
	state.ScanPosition = end
}

// parseEndOfLine handles a '\n' encountered during normal scanning,
// dispatching by the innermost open construct: lists and tables have
// dedicated per-line continuation logic; an ExternalLink frame left open at
// a newline is rewound to plain text and scanning resumes just past its
// '['; a Preformatted block continues onto a next line that starts with a
// space and closes otherwise; a Heading frame runs its real
// trailing-run closing analysis here, since a newline is the heading's
// actual end of line; a Link, Parameter, Tag or Template frame simply
// continues across the newline (a newline is ordinary content inside those
// constructs); with no frame open, the pending text up to and including
// the newline is flushed and beginning-of-line dispatch runs on the next
// line.
func parseEndOfLine(state *State) {
	position := state.ScanPosition
	lineStart := position + 1

	if len(state.Stack) == 0 {
		state.Flush(lineStart)
		parseBeginningOfLine(state, lineStart)
		return
	}

	top := state.Stack[len(state.Stack)-1]
	switch top.Type.Kind {
	case OpenOrderedList, OpenUnorderedList, OpenDefinitionList:
		parseListEndOfLine(state, lineStart)
	case OpenTable:
		parseTableEndOfLine2(state, lineStart)
	case OpenExternalLink:
		parseExternalLinkEndOfLine(state, top)
	case OpenHeading:
		parseHeadingEnd(state)
	case OpenPreformatted:
		parsePreformattedEndOfLine(state, lineStart)
	default:
		state.ScanPosition = position + 1
	}
}

func parseTableEndOfLine2(state *State, lineStart int) {
	state.Flush(state.ScanPosition)
	state.ScanPosition = lineStart
	state.FlushedPosition = lineStart
	parseTableEndOfLine(state)
}

// parsePreformattedEndOfLine handles the end of a line inside a
// Preformatted block: if the next line also begins with a literal space,
// the block continues (the space is consumed and excluded from content);
// otherwise the block closes here.
func parsePreformattedEndOfLine(state *State, lineStart int) {
	if state.GetByte(lineStart) == ' ' {
		state.Flush(lineStart)
		state.FlushedPosition = lineStart + 1
		state.ScanPosition = lineStart + 1
		return
	}
	openNode := state.Stack[len(state.Stack)-1]
	state.Stack = state.Stack[:len(state.Stack)-1]
	state.Flush(state.ScanPosition)
	state.Nodes = append(openNode.Nodes, Preformatted{
		span:  span{openNode.Start, state.ScanPosition},
		Nodes: state.Nodes,
	})
	state.FlushedPosition = state.ScanPosition
	parseBeginningOfLine(state, lineStart)
}
