package wikitext

// OpenNodeKind identifies which construct an OpenNode frame represents.
type OpenNodeKind int

const (
	OpenDefinitionList OpenNodeKind = iota
	OpenExternalLink
	OpenHeading
	OpenLink
	OpenOrderedList
	OpenParameter
	OpenPreformatted
	OpenTable
	OpenTag
	OpenTemplate
	OpenUnorderedList
)

// TableState tracks which part of a table is currently being accumulated.
type TableState int

const (
	TableBefore TableState = iota
	TableAttributesState
	TableCaptionFirstLine
	TableCaptionRemainder
	TableRowState
	TableCellFirstLine
	TableCellRemainder
	TableHeadingFirstLine
	TableHeadingRemainder
)

// tableScratch holds the in-progress state of an open table construct. It is
// mutated in place while the table's rows, captions and cells accumulate.
type tableScratch struct {
	Attributes             []Node
	Before                 []Node
	Captions               []TableCaption
	ChildElementAttributes []Node
	Rows                   []TableRow
	Start                  int
	State                  TableState
}

// OpenNodeType is the mutable payload of a construct currently open on the
// parser stack. It is a tagged struct rather than an interface because the
// construct handlers need to mutate a variant's payload in place (appending
// a list item, growing a template's parameter list, advancing a table's
// TableState) while the frame sits at the top of the stack.
type OpenNodeType struct {
	Kind OpenNodeKind

	// Heading
	Level int

	// Link
	Namespace *Namespace // nil for a plain Link, non-nil for Category/Image
	Target    string

	// Parameter ({{{name|default}}}); also reused by Template below to hold
	// the name of whichever template parameter is currently accumulating.
	Name    []Node
	Default []Node
	HasName bool

	// Template
	TemplateName       []Node
	TemplateParameters []TemplateParameter
	HasTemplateName    bool
	// ParameterStart is the byte offset the parameter currently
	// accumulating began at, used for its span once committed.
	ParameterStart int

	// OrderedList / UnorderedList
	Items []ListItem

	// DefinitionList
	DefinitionItems []DefinitionListItem
	// DefinitionMarker is the ':' or ';' byte that began the item currently
	// accumulating, tracked directly rather than re-read from WikiText since
	// ItemStart moves forward as items continue within the same frame.
	DefinitionMarker byte

	// OrderedList / UnorderedList / DefinitionList: the byte offset the
	// item currently accumulating began at. Distinct from OpenNode.Start,
	// which stays fixed at the position the whole list frame opened.
	ItemStart int

	// Tag
	TagName       string
	TagAttributes string

	// Table
	Table *tableScratch
}

// OpenNode is one frame of the parser's open-construct stack: the nodes
// accumulated so far inside the construct, the byte offset the construct
// began at, and the construct's own mutable state.
type OpenNode struct {
	Nodes []Node
	Start int
	Type  OpenNodeType
}

// State is the single-pass parser's mutable working state: the byte-indexed
// cursor, the stack of currently open constructs, the nodes accumulated at
// the current nesting level, and the warnings collected so far.
type State struct {
	WikiText        string
	FlushedPosition int
	Nodes           []Node
	ScanPosition    int
	Stack           []OpenNode
	Warnings        []Warning
}

// NewState creates a fresh State positioned at the start of wikiText.
func NewState(wikiText string) *State {
	return &State{WikiText: wikiText}
}

// GetByte returns the byte at position, or -1 if position is out of range.
// Negative returns stand in for Rust's Option<u8> == None; callers compare
// against -1 exactly as the original compares against None.
func (s *State) GetByte(position int) int {
	if position < 0 || position >= len(s.WikiText) {
		return -1
	}
	return int(s.WikiText[position])
}

// Flush materializes any plain text between the last flushed position and
// end into a Text node, then advances the flushed position to end. Called
// before every node is emitted so adjacent unrecognized bytes become text.
func (s *State) Flush(end int) {
	if s.FlushedPosition < end {
		s.Nodes = append(s.Nodes, Text{
			span:  span{StartPos: s.FlushedPosition, EndPos: end},
			Value: s.WikiText[s.FlushedPosition:end],
		})
	}
	s.FlushedPosition = end
}

// PushOpenNode flushes up to the construct's start position, then pushes the
// nodes accumulated so far onto the stack under a new frame of type_, and
// repositions scanning at innerStartPosition, the first byte inside the
// newly opened construct.
func (s *State) PushOpenNode(type_ OpenNodeType, innerStartPosition int) {
	start := s.ScanPosition
	s.Flush(start)
	s.Stack = append(s.Stack, OpenNode{
		Nodes: s.Nodes,
		Start: start,
		Type:  type_,
	})
	s.Nodes = nil
	s.ScanPosition = innerStartPosition
	s.FlushedPosition = innerStartPosition
}

// Rewind abandons the nodes accumulated inside the current frame, restoring
// nodes as the active node list and resuming scanning one byte past
// position, reinterpreting everything from position onward as plain text.
// If the restored nodes end in a Text node that is immediately adjacent to
// the rewind point, its end is retracted so Flush re-extends it.
func (s *State) Rewind(nodes []Node, position int) {
	s.Nodes = nodes
	s.ScanPosition = position + 1
	if n := len(s.Nodes); n > 0 {
		if text, ok := s.Nodes[n-1].(Text); ok {
			s.Nodes = s.Nodes[:n-1]
			s.FlushedPosition = text.StartPos
			return
		}
	}
	s.FlushedPosition = position
}

// SkipWhitespaceForwards returns the first position at or after position
// that is not a space or tab.
func (s *State) SkipWhitespaceForwards(position int) int {
	for {
		switch s.GetByte(position) {
		case ' ', '\t':
			position++
		default:
			return position
		}
	}
}

// SkipWhitespaceBackwards returns the first position at or before position
// that is not a space or tab, scanning toward floor.
func (s *State) SkipWhitespaceBackwards(position, floor int) int {
	for position > floor {
		switch s.GetByte(position - 1) {
		case ' ', '\t':
			position--
		default:
			return position
		}
	}
	return position
}

// SkipEmptyLines advances position past any run of lines containing only
// spaces and tabs, returning the position after the last such line's
// terminating newline, or position unchanged if the current line is not
// empty.
func (s *State) SkipEmptyLines(position int) int {
	for {
		candidate := s.SkipWhitespaceForwards(position)
		if s.GetByte(candidate) != '\n' {
			return position
		}
		position = candidate + 1
	}
}
