package wikitext

// parseHeadingStart handles the run of '=' at the beginning of a line,
// pushing a Heading frame whose level is the run's length capped at 6, the
// maximum heading level MediaWiki recognizes.
func parseHeadingStart(state *State) {
	start := state.ScanPosition
	position := start
	for state.GetByte(position) == '=' {
		position++
	}
	level := position - start
	if level > 6 {
		level = 6
	}
	state.PushOpenNode(OpenNodeType{Kind: OpenHeading, Level: level}, start+level)
}

// parseHeadingEnd is called once a Heading frame reaches the actual end of
// its line — a '\n' byte or EOF — and inspects the line's tail as a whole
// to decide whether it closes the heading. Trailing whitespace is skipped
// back over, then the run of '=' immediately before that becomes the
// closing run. The closing run's length becomes the heading's end level;
// if it is less than the level the heading opened with, the shortfall is
// prepended as plain text to the heading's own nodes and an
// UnexpectedHeadingLevelCorrecting warning is raised — MediaWiki corrects
// rather than rejects a heading whose markers don't balance. If the line's
// tail has no closing run at all, or the closing run is immediately
// preceded by '>' (matching the reference parser's lookback quirk), the
// heading is rewound entirely and reinterpreted as plain text with an
// InvalidHeadingSyntaxRewinding warning. A closed heading followed only by
// whitespace up to a '\n' consumes that line break as well.
func parseHeadingEnd(state *State) {
	openNode := state.Stack[len(state.Stack)-1]
	startLevel := openNode.Type.Level
	contentStart := openNode.Start + startLevel

	lineEnd := state.ScanPosition
	for state.GetByte(lineEnd) != '\n' && state.GetByte(lineEnd) != -1 {
		lineEnd++
	}

	endRunEnd := state.SkipWhitespaceBackwards(lineEnd, contentStart)
	endRunStart := endRunEnd
	for endRunStart > contentStart && state.GetByte(endRunStart-1) == '=' {
		endRunStart--
	}

	noClosingRun := endRunStart == endRunEnd
	precededByCloseAngle := endRunStart > contentStart && state.GetByte(endRunStart-1) == '>'
	if noClosingRun || precededByCloseAngle {
		rewindHeading(state, startLevel, openNode)
		return
	}

	endLevel := endRunEnd - endRunStart
	if endLevel > 6 {
		endLevel = 6
	}

	state.Stack = state.Stack[:len(state.Stack)-1]
	state.Flush(endRunStart)
	headingStart := openNode.Start
	innerNodes := state.Nodes

	if endLevel < startLevel {
		diff := startLevel - endLevel
		textStart := headingStart + endLevel
		prefixed := append([]Node{}, Text{
			span:  span{textStart, textStart + diff},
			Value: state.WikiText[textStart : textStart+diff],
		})
		innerNodes = append(prefixed, innerNodes...)
		state.Warnings = append(state.Warnings, Warning{
			Start:   headingStart,
			End:     headingStart + startLevel,
			Message: UnexpectedHeadingLevelCorrecting,
		})
		headingStart = textStart + diff
		startLevel = endLevel
	}

	end := endRunStart + endLevel
	heading := Heading{
		span:  span{headingStart, end},
		Level: startLevel,
		Nodes: innerNodes,
	}
	state.Nodes = append(openNode.Nodes, heading)
	state.FlushedPosition = end
	state.ScanPosition = end
	if state.SkipWhitespaceForwards(end) == lineEnd && state.GetByte(lineEnd) == '\n' {
		state.FlushedPosition = lineEnd + 1
	}
}

func rewindHeading(state *State, startLevel int, openNode OpenNode) {
	state.Stack = state.Stack[:len(state.Stack)-1]
	state.Warnings = append(state.Warnings, Warning{
		Start:   openNode.Start,
		End:     openNode.Start + startLevel,
		Message: InvalidHeadingSyntaxRewinding,
	})
	state.Rewind(openNode.Nodes, openNode.Start)
}
