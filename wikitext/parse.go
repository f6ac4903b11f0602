package wikitext

// parse runs the single-pass, byte-indexed parser over wikiText under
// configuration, producing the top-level node tree and any warnings
// collected along the way. It mirrors the reference parser's structure: a
// short preamble (leading blank lines, an optional "#REDIRECT"), then
// parseBeginningOfLine once, then the main dispatch loop which runs until
// the end of the text and every open construct has been closed or
// abandoned.
func parse(configuration *Configuration, wikiText string) Output {
	state := NewState(wikiText)

	position := state.SkipEmptyLines(0)
	state.ScanPosition = position
	state.FlushedPosition = position
	if !parseRedirect(state, configuration) {
		state.ScanPosition = position
		state.FlushedPosition = position
	}

	parseBeginningOfLine(state, state.ScanPosition)

	for {
		position = state.ScanPosition
		b := state.GetByte(position)

		if b == -1 {
			break
		}

		if isControlByte(b) {
			state.Warnings = append(state.Warnings, Warning{
				Start:   position,
				End:     position + 1,
				Message: InvalidCharacter,
			})
			state.ScanPosition = position + 1
			continue
		}

		switch b {
		case '\n':
			parseEndOfLine(state)
			continue
		case '&':
			parseCharacterEntity(state, configuration)
			continue
		case '\'':
			parseBoldItalic(state)
			continue
		case '<':
			switch {
			case state.GetByte(position+1) == '!' && state.GetByte(position+2) == '-' && state.GetByte(position+3) == '-':
				parseComment(state)
			case state.GetByte(position+1) == '/':
				parseEndTag(state, configuration)
			default:
				parseStartTag(state, configuration)
			}
			continue
		case '=':
			switch {
			case topKind(state) == OpenParameter && !state.Stack[len(state.Stack)-1].Type.HasName:
				parseParameterNameEnd(state)
			case topKind(state) == OpenTemplate && state.Stack[len(state.Stack)-1].Type.HasTemplateName && !state.Stack[len(state.Stack)-1].Type.HasName:
				parseTemplateParameterNameEnd(state)
			default:
				state.ScanPosition = position + 1
			}
			continue
		case '[':
			if state.GetByte(position+1) == '[' {
				parseLinkStart(state, configuration)
			} else {
				parseExternalLinkStart(state, configuration)
			}
			continue
		case ']':
			switch topKind(state) {
			case OpenLink:
				top := state.Stack[len(state.Stack)-1]
				if state.GetByte(position+1) == ']' {
					parseLinkEnd(state, configuration, top)
				} else {
					state.ScanPosition = position + 1
				}
			case OpenExternalLink:
				top := state.Stack[len(state.Stack)-1]
				parseExternalLinkEnd(state, top)
			default:
				state.ScanPosition = position + 1
			}
			continue
		case '_':
			if state.GetByte(position+1) == '_' {
				parseMagicWord(state, configuration)
			} else {
				state.ScanPosition = position + 1
			}
			continue
		case '{':
			parseTemplateStart(state)
			continue
		case '|':
			switch topKind(state) {
			case OpenParameter:
				parseParameterSeparator(state)
			case OpenTemplate:
				parseTemplateSeparator(state)
			case OpenTable:
				parseInlineToken(state, '|')
			default:
				state.ScanPosition = position + 1
			}
			continue
		case '!':
			if topKind(state) == OpenTable {
				parseInlineToken(state, '!')
			} else {
				state.ScanPosition = position + 1
			}
			continue
		case '}':
			switch topKind(state) {
			case OpenParameter, OpenTemplate:
				parseTemplateEnd(state)
			default:
				state.ScanPosition = position + 1
			}
			continue
		default:
			state.ScanPosition = position + 1
		}
	}

	closeRemainingFrames(state)
	state.Flush(len(state.WikiText))

	return Output{Nodes: state.Nodes, Warnings: state.Warnings}
}

// topKind returns the OpenNodeKind of the innermost open frame, or -1 if
// the stack is empty.
func topKind(state *State) OpenNodeKind {
	if len(state.Stack) == 0 {
		return -1
	}
	return state.Stack[len(state.Stack)-1].Type.Kind
}

// isControlByte reports whether b is one of the control bytes the
// reference parser always flags as InvalidCharacter: 0x00-0x08, 0x0B-0x1F,
// and 0x7F (DEL). Tab (0x09) and newline (0x0A) are ordinary content bytes
// handled elsewhere.
func isControlByte(b int) bool {
	return b <= 8 || (b >= 11 && b <= 31) || b == 127
}

// closeRemainingFrames abandons every construct still open when the text
// ends, innermost first, reinterpreting each as plain text the same way an
// end-of-line abandonment would, except Parameter/Template/Tag/Link frames
// which the reference parser also rewinds wholesale at end of input. A
// Heading frame gets the same real end-of-line closing analysis it would
// get from a '\n', and Preformatted and list frames are closed into their
// nodes as at the end of a line — EOF is the other place a line can end.
func closeRemainingFrames(state *State) {
	end := len(state.WikiText)
	for len(state.Stack) > 0 {
		switch state.Stack[len(state.Stack)-1].Type.Kind {
		case OpenHeading:
			state.ScanPosition = end
			parseHeadingEnd(state)
			continue
		case OpenPreformatted:
			openNode := state.Stack[len(state.Stack)-1]
			state.Stack = state.Stack[:len(state.Stack)-1]
			state.Flush(end)
			state.Nodes = append(openNode.Nodes, Preformatted{span: span{openNode.Start, end}, Nodes: state.Nodes})
			continue
		case OpenOrderedList, OpenUnorderedList, OpenDefinitionList:
			state.ScanPosition = end
			state.Flush(end)
			closeInnermostListFrame(state)
			continue
		}
		state.Flush(end)
		openNode := state.Stack[len(state.Stack)-1]
		state.Stack = state.Stack[:len(state.Stack)-1]
		state.Nodes = append(openNode.Nodes, state.Nodes...)
	}
	state.ScanPosition = end
}
