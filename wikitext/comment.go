package wikitext

import "strings"

// parseComment handles a construct starting with "<!--" at
// state.ScanPosition. It scans for the closing "-->"; if an end tag
// matching an open Tag frame is found first, the comment is abandoned at
// that point and an EndTagInComment warning raised, mirroring how real
// wiki-text occasionally has unterminated comments masked by markup.
func parseComment(state *State) {
	start := state.ScanPosition
	searchFrom := start + 4
	for {
		closeIdx := strings.Index(state.WikiText[searchFrom:], "-->")
		endTagIdx := findEndTagFrom(state, searchFrom)

		if closeIdx == -1 && endTagIdx == -1 {
			state.ScanPosition = len(state.WikiText)
			state.Flush(state.ScanPosition)
			return
		}

		if endTagIdx != -1 && (closeIdx == -1 || endTagIdx < closeIdx) {
			parseEndTagInComment(state, start, searchFrom+endTagIdx)
			return
		}

		end := searchFrom + closeIdx + 3
		state.Flush(start)
		state.FlushedPosition = end
		state.ScanPosition = end
		state.Nodes = append(state.Nodes, Comment{span{start, end}})
		return
	}
}

// findEndTagFrom returns the offset, relative to from, of the nearest "</"
// sequence whose tag name matches an open Tag frame on the stack, or -1 if
// none is found before the wiki-text ends.
func findEndTagFrom(state *State, from int) int {
	text := state.WikiText[from:]
	search := 0
	for {
		idx := strings.Index(text[search:], "</")
		if idx == -1 {
			return -1
		}
		absolute := search + idx
		nameStart := absolute + 2
		nameEnd := nameStart
		for nameEnd < len(text) && isTagNameByte(text[nameEnd]) {
			nameEnd++
		}
		name := strings.ToLower(text[nameStart:nameEnd])
		for i := len(state.Stack) - 1; i >= 0; i-- {
			if state.Stack[i].Type.Kind == OpenTag && state.Stack[i].Type.TagName == name {
				return absolute
			}
		}
		search = absolute + 2
	}
}

func isTagNameByte(b byte) bool {
	switch b {
	case '\t', '\n', ' ', '/', '>':
		return false
	default:
		return true
	}
}

// parseEndTagInComment abandons the unterminated comment at offset
// endTagOffset (relative to the wiki-text start), recording an
// EndTagInComment warning and leaving scanning positioned at the '<' of the
// end tag so it is reprocessed normally.
func parseEndTagInComment(state *State, commentStart, endTagOffset int) {
	state.Warnings = append(state.Warnings, Warning{
		Start:   commentStart,
		End:     endTagOffset,
		Message: EndTagInComment,
	})
	state.Flush(commentStart)
	state.FlushedPosition = endTagOffset
	state.ScanPosition = endTagOffset
}
