package wikitext

import "strings"

// parseRedirect handles the optional "#REDIRECT [[target]]" that may open a
// document. It is only attempted once, at the very start of parsing, after
// leading blank lines and spaces have been skipped. If the text does not
// begin with a configured redirect magic word, parsing falls through to the
// normal beginning-of-line dispatch with no Redirect node produced.
func parseRedirect(state *State, configuration *Configuration) bool {
	start := state.SkipWhitespaceForwards(state.ScanPosition)
	if state.GetByte(start) != '#' {
		return false
	}
	length, _, ok, _ := configuration.RedirectMagicWords.Find(state.WikiText[start+1:])
	if !ok {
		return false
	}
	position := start + 1 + length
	if state.GetByte(position) == ':' {
		position++
	}
	position = state.SkipWhitespaceForwards(position)
	if state.GetByte(position) != '[' || state.GetByte(position+1) != '[' {
		return false
	}
	targetStart := position + 2
	targetEnd := targetStart
	for {
		b := state.GetByte(targetEnd)
		if b == -1 || b == '\n' {
			return false
		}
		if b == ']' || b == '|' {
			break
		}
		targetEnd++
	}
	target := state.WikiText[targetStart:targetEnd]

	rest := targetEnd
	if state.GetByte(rest) == '|' {
		// Anything between '|' and the closing "]]" is useless but tolerated.
		for state.GetByte(rest) != ']' && state.GetByte(rest) != -1 && state.GetByte(rest) != '\n' {
			rest++
		}
		state.Warnings = append(state.Warnings, Warning{
			Start:   targetEnd,
			End:     rest,
			Message: UselessTextInRedirect,
		})
	}
	if state.GetByte(rest) != ']' || state.GetByte(rest+1) != ']' {
		return false
	}
	end := rest + 2

	lineEnd := end
	for state.GetByte(lineEnd) != '\n' && state.GetByte(lineEnd) != -1 {
		lineEnd++
	}
	if len(strings.TrimSpace(state.WikiText[end:lineEnd])) > 0 {
		state.Warnings = append(state.Warnings, Warning{
			Start:   end,
			End:     lineEnd,
			Message: TextAfterRedirect,
		})
	}

	state.Nodes = append(state.Nodes, Redirect{
		span:   span{start, end},
		Target: target,
	})
	state.FlushedPosition = end
	state.ScanPosition = end
	return true
}
