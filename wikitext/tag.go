package wikitext

import "strings"

// isTagNameStopByte reports whether b ends a tag name while scanning
// forwards through "<name...".
func isTagNameStopByte(b int) bool {
	switch b {
	case '\t', '\n', ' ', '/', '>':
		return true
	default:
		return false
	}
}

func lowerTagName(name string) string {
	for i := 0; i < len(name); i++ {
		if name[i] >= 'A' && name[i] <= 'Z' {
			return strings.ToLower(name)
		}
	}
	return name
}

// parseStartTag handles '<' at state.ScanPosition that is not the start of
// a comment or an end tag. An unrecognized tag name is left as plain text
// (UnrecognizedTagName warning, scanning resumes just past '<'); a
// TagClassTag name emits a StartTag node directly; a TagClassExtensionTag
// name either emits an empty self-closing Tag node, scans as opaque plain
// text up to a matching end tag for "math"/"nowiki", or otherwise pushes a
// Tag frame so its body is parsed normally until the matching end tag.
func parseStartTag(state *State, configuration *Configuration) {
	start := state.ScanPosition
	nameStart := start + 1
	nameEnd := nameStart
	for state.GetByte(nameEnd) != -1 && !isTagNameStopByte(state.GetByte(nameEnd)) {
		nameEnd++
	}
	name := lowerTagName(state.WikiText[nameStart:nameEnd])

	class, known := configuration.TagNameMap[name]
	if !known {
		state.ScanPosition = nameStart
		state.Warnings = append(state.Warnings, Warning{Start: nameStart, End: nameEnd, Message: UnrecognizedTagName})
		return
	}

	closeIdx := strings.IndexByte(state.WikiText[nameEnd:], '>')
	if closeIdx == -1 {
		state.ScanPosition = nameStart
		state.Warnings = append(state.Warnings, Warning{Start: nameStart, End: nameEnd, Message: InvalidTagSyntax})
		return
	}
	tagEnd := nameEnd + closeIdx + 1

	switch class {
	case TagClassExtensionTag:
		if tagEnd >= 2 && state.WikiText[tagEnd-2] == '/' {
			attrs := strings.TrimSpace(state.WikiText[nameEnd : tagEnd-2])
			state.Flush(start)
			state.FlushedPosition = tagEnd
			state.ScanPosition = tagEnd
			state.Nodes = append(state.Nodes, Tag{span: span{start, tagEnd}, Name: name, Attributes: attrs})
			return
		}
		if name == "math" || name == "nowiki" {
			parsePlainTextTag(state, start, tagEnd, name)
			return
		}
		attrs := strings.TrimSpace(state.WikiText[nameEnd : tagEnd-1])
		state.PushOpenNode(OpenNodeType{Kind: OpenTag, TagName: name, TagAttributes: attrs}, tagEnd)
	case TagClassTag:
		state.Flush(start)
		state.FlushedPosition = tagEnd
		state.ScanPosition = tagEnd
		state.Nodes = append(state.Nodes, StartTag{span: span{start, tagEnd}, Name: name})
	}
}

// parsePlainTextTag scans verbatim from the end of a "math"/"nowiki" start
// tag to its matching end tag, treating everything in between as opaque
// text with no further wiki-text parsing, since those tags' content is not
// wikitext.
func parsePlainTextTag(state *State, tagStart, afterStartTag int, tagName string) {
	position := afterStartTag
	for {
		b := state.GetByte(position)
		if b == -1 {
			state.ScanPosition = tagStart + 1
			state.Warnings = append(state.Warnings, Warning{Start: tagStart, End: afterStartTag, Message: MissingEndTagRewinding})
			return
		}
		if b == '<' && state.GetByte(position+1) == '/' {
			if end, ok := matchPlainTextEndTag(state, position, tagName); ok {
				state.Flush(tagStart)
				var nodes []Node
				if afterStartTag < position {
					nodes = append(nodes, Text{span: span{afterStartTag, position}, Value: state.WikiText[afterStartTag:position]})
				}
				state.FlushedPosition = end
				state.ScanPosition = end
				state.Nodes = append(state.Nodes, Tag{span: span{tagStart, end}, Name: tagName, Nodes: nodes})
				return
			}
		}
		position++
	}
}

// matchPlainTextEndTag checks whether the "</" at position opens an end tag
// for tagName, tolerating interior whitespace before '>'. Returns the
// position just past '>' and true on a match.
func matchPlainTextEndTag(state *State, position int, tagName string) (int, bool) {
	nameStart := position + 2
	nameEnd := nameStart
	for {
		b := state.GetByte(nameEnd)
		if b == -1 || b == '/' || b == '<' {
			return 0, false
		}
		if b == '\t' || b == '\n' || b == ' ' || b == '>' {
			break
		}
		nameEnd++
	}
	name := lowerTagName(state.WikiText[nameStart:nameEnd])
	if name != tagName {
		return 0, false
	}
	end := state.SkipWhitespaceForwards(nameEnd)
	if state.GetByte(end) != '>' {
		return 0, false
	}
	return end + 1, true
}

// parseEndTag handles "</" at state.ScanPosition. For a TagClassTag name it
// emits an EndTag node directly. For a TagClassExtensionTag name it looks
// for a matching open Tag frame on the stack (searching innermost-first):
// none found raises UnexpectedEndTag and the bytes are left as text; one
// found deeper than the innermost frame closes every frame above it first
// (MissingEndTagRewinding, each rewound to plain text) before closing the
// matched frame into a Tag node.
func parseEndTag(state *State, configuration *Configuration) {
	start := state.ScanPosition
	nameStart := start + 2
	nameEnd := nameStart
	for {
		b := state.GetByte(nameEnd)
		if b == -1 {
			break
		}
		if b == '<' {
			state.ScanPosition = nameEnd
			return
		}
		if isTagNameStopByte(b) {
			break
		}
		nameEnd++
	}
	name := lowerTagName(state.WikiText[nameStart:nameEnd])

	class, known := configuration.TagNameMap[name]
	if !known {
		state.ScanPosition = nameStart
		state.Warnings = append(state.Warnings, Warning{Start: nameStart, End: nameEnd, Message: UnrecognizedTagName})
		return
	}

	switch class {
	case TagClassTag:
		tagEnd := nameEnd
		for {
			b := state.GetByte(tagEnd)
			if b == -1 {
				state.ScanPosition = nameStart
				state.Warnings = append(state.Warnings, Warning{Start: nameStart, End: nameEnd, Message: InvalidTagSyntax})
				return
			}
			if b == '>' {
				break
			}
			tagEnd++
		}
		tagEnd++
		state.Flush(start)
		state.FlushedPosition = tagEnd
		state.ScanPosition = tagEnd
		state.Nodes = append(state.Nodes, EndTag{span: span{start, tagEnd}, Name: name})

	case TagClassExtensionTag:
		tagEnd := nameEnd
		for {
			b := state.GetByte(tagEnd)
			switch b {
			case '>':
				goto found
			case '\t', '\n', ' ':
				tagEnd++
			default:
				state.ScanPosition = nameStart
				state.Warnings = append(state.Warnings, Warning{Start: start, End: tagEnd, Message: InvalidTagSyntax})
				return
			}
		}
	found:
		matchedIndex := -1
		for i := len(state.Stack) - 1; i >= 0; i-- {
			if state.Stack[i].Type.Kind == OpenTag && state.Stack[i].Type.TagName == name {
				matchedIndex = i
				break
			}
		}
		if matchedIndex == -1 {
			state.ScanPosition = nameStart
			state.Warnings = append(state.Warnings, Warning{Start: nameStart, End: nameEnd, Message: UnexpectedEndTag})
			return
		}
		if matchedIndex < len(state.Stack)-1 {
			state.Warnings = append(state.Warnings, Warning{Start: start, End: tagEnd, Message: MissingEndTagRewinding})
			openNode := state.Stack[matchedIndex+1]
			state.Stack = state.Stack[:matchedIndex+1]
			state.Rewind(openNode.Nodes, openNode.Start)
			return
		}
		state.Flush(start)
		openNode := state.Stack[len(state.Stack)-1]
		state.Stack = state.Stack[:len(state.Stack)-1]
		tagEnd++
		state.FlushedPosition = tagEnd
		state.ScanPosition = tagEnd
		nodes := state.Nodes
		state.Nodes = append(openNode.Nodes, Tag{
			span:       span{openNode.Start, tagEnd},
			Name:       name,
			Attributes: openNode.Type.TagAttributes,
			Nodes:      nodes,
		})
	}
}
