package wikitext

// getTable returns the tableScratch of the innermost open Table frame.
func getTable(state *State) *tableScratch {
	for i := len(state.Stack) - 1; i >= 0; i-- {
		if state.Stack[i].Type.Kind == OpenTable {
			return state.Stack[i].Type.Table
		}
	}
	return nil
}

// parseTableStart handles "{|" at the start of a line, pushing a Table
// frame whose attributes run to the end of the line.
func parseTableStart(state *State) {
	start := state.ScanPosition
	lineEnd := start
	for state.GetByte(lineEnd) != '\n' && state.GetByte(lineEnd) != -1 {
		lineEnd++
	}
	table := &tableScratch{Start: start, State: TableAttributesState}
	state.PushOpenNode(OpenNodeType{Kind: OpenTable, Table: table}, start+2)
}

// changeTableState commits whatever nodes have accumulated since the last
// table-structure token into the part of the table currently being built
// (attributes, a caption, a row's pending attributes, or a cell), then
// switches to newState and resets accumulation for it.
func changeTableState(state *State, table *tableScratch, newState TableState) {
	state.Flush(state.ScanPosition)
	nodes := state.Nodes
	state.Nodes = nil

	switch table.State {
	case TableBefore:
		table.Before = append(table.Before, nodes...)
	case TableAttributesState:
		table.Attributes = nodes
	case TableCaptionFirstLine, TableCaptionRemainder:
		if len(table.Captions) > 0 {
			last := &table.Captions[len(table.Captions)-1]
			last.Content = append(last.Content, nodes...)
			last.EndPos = state.ScanPosition
		}
	case TableCellFirstLine, TableCellRemainder, TableHeadingFirstLine, TableHeadingRemainder:
		if len(table.Rows) > 0 {
			row := &table.Rows[len(table.Rows)-1]
			if len(row.Cells) > 0 {
				cell := &row.Cells[len(row.Cells)-1]
				cell.Content = append(cell.Content, nodes...)
				cell.EndPos = state.ScanPosition
			}
		}
	}

	table.State = newState
}

// startTableRow begins a new row, flushing any pending row-attribute text
// collected since the previous '|-' or the table's opening line.
func startTableRow(state *State, table *tableScratch) {
	changeTableState(state, table, TableRowState)
	table.Rows = append(table.Rows, TableRow{
		span:       span{state.ScanPosition, state.ScanPosition},
		Attributes: table.ChildElementAttributes,
	})
	table.ChildElementAttributes = nil
}

// parseInlineToken handles a '|' or '!' encountered while scanning inside an
// open table, which may start a new cell ('|'), a new heading cell ('!'),
// split the current line into two cells when doubled ("||"/"!!"), or commit
// pending row/table attributes when it is a lone leading '|'.
func parseInlineToken(state *State, b byte) {
	table := getTable(state)
	if table == nil {
		return
	}
	start := state.ScanPosition

	switch table.State {
	case TableRowState, TableBefore, TableAttributesState:
		changeTableState(state, table, TableRowState)
		openTableCell(state, table, b, start+1)
	case TableCellFirstLine, TableCellRemainder, TableHeadingFirstLine, TableHeadingRemainder:
		if state.GetByte(start+1) == int(b) {
			changeTableState(state, table, tableRemainderState(b))
			openTableCell(state, table, b, start+2)
		} else {
			state.ScanPosition++
		}
	default:
		state.ScanPosition++
	}
}

func tableRemainderState(b byte) TableState {
	if b == '!' {
		return TableHeadingRemainder
	}
	return TableCellRemainder
}

func openTableCell(state *State, table *tableScratch, b byte, contentStart int) {
	cellType := TableCellOrdinary
	newState := TableCellFirstLine
	if b == '!' {
		cellType = TableCellHeading
		newState = TableHeadingFirstLine
	}
	if len(table.Rows) == 0 {
		startTableRow(state, table)
	}
	row := &table.Rows[len(table.Rows)-1]
	row.Cells = append(row.Cells, TableCell{
		span: span{contentStart, contentStart},
		Type: cellType,
	})
	table.State = newState
	state.FlushedPosition = contentStart
	state.ScanPosition = contentStart
}

// parseHeadingCell handles a line starting with '!' while a table row is
// open but no cell of this line has been opened yet.
func parseHeadingCell(state *State) {
	table := getTable(state)
	if table == nil {
		return
	}
	start := state.ScanPosition
	changeTableState(state, table, TableRowState)
	openTableCell(state, table, '!', start+1)
}

// parseTableEndOfLine dispatches the start of a new line while a Table
// frame is open: "|}" closes the table, "|-" starts a new row, "|+" starts
// a caption, a lone leading "!"/"|" begins a heading/ordinary cell, and
// anything else continues accumulating into whatever part of the table is
// currently open (most commonly row/cell attribute text).
func parseTableEndOfLine(state *State) {
	table := getTable(state)
	if table == nil {
		parseBeginningOfLine(state, state.ScanPosition)
		return
	}
	start := state.ScanPosition
	switch state.GetByte(start) {
	case '|':
		switch state.GetByte(start + 1) {
		case '}':
			closeTable(state, table, start+2)
		case '-':
			changeTableState(state, table, TableBefore)
			state.ScanPosition = start + 2
			state.FlushedPosition = start + 2
			table.ChildElementAttributes = nil
			startTableRow(state, table)
			state.FlushedPosition = state.ScanPosition
		case '+':
			changeTableState(state, table, TableCaptionFirstLine)
			table.Captions = append(table.Captions, TableCaption{span: span{start, start}})
			state.FlushedPosition = start + 2
			state.ScanPosition = state.FlushedPosition
		default:
			changeTableState(state, table, TableRowState)
			openTableCell(state, table, '|', start+1)
		}
	case '!':
		parseHeadingCell(state)
	default:
		state.ScanPosition = start
	}
}

// closeTable closes the innermost Table frame, emitting a Table node. Any
// nodes accumulated before the first row or caption are prepended as plain
// text with a StrayTextInTable warning, matching MediaWiki's tolerance for
// content placed directly after "{|" before any row marker.
func closeTable(state *State, table *tableScratch, end int) {
	for i := len(state.Stack) - 1; i >= 0; i-- {
		if state.Stack[i].Type.Kind == OpenTable {
			openNode := state.Stack[i]
			state.Stack = state.Stack[:i]
			state.Flush(state.ScanPosition)
			changeTableState(state, table, TableBefore)

			if len(table.Before) > 0 {
				state.Warnings = append(state.Warnings, Warning{
					Start:   table.Start,
					End:     table.Start + 2,
					Message: StrayTextInTable,
				})
			}

			state.FlushedPosition = end
			state.ScanPosition = end
			state.Nodes = append(append(openNode.Nodes, table.Before...), Table{
				span:       span{openNode.Start, end},
				Attributes: table.Attributes,
				Captions:   table.Captions,
				Rows:       table.Rows,
			})
			return
		}
	}
}
