package wikitext

import "testing"

func TestTableRowsAndCells(t *testing.T) {
	output := parseDefault(t, "{|\n|-\n|cell1||cell2\n|-\n|cell3||cell4\n|}")
	var table Table
	var found bool
	for _, n := range output.Nodes {
		if tbl, ok := n.(Table); ok {
			table = tbl
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a Table node in %#v", output.Nodes)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(table.Rows))
	}
	for i, row := range table.Rows {
		if len(row.Cells) != 2 {
			t.Errorf("row %d cells = %d, want 2", i, len(row.Cells))
		}
	}
}

func TestTableHeadingCells(t *testing.T) {
	output := parseDefault(t, "{|\n!heading1!!heading2\n|}")
	var table Table
	var found bool
	for _, n := range output.Nodes {
		if tbl, ok := n.(Table); ok {
			table = tbl
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a Table node in %#v", output.Nodes)
	}
	if len(table.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(table.Rows))
	}
	for _, cell := range table.Rows[0].Cells {
		if cell.Type != TableCellHeading {
			t.Errorf("cell type = %v, want TableCellHeading", cell.Type)
		}
	}
}

func TestTableCaption(t *testing.T) {
	output := parseDefault(t, "{|\n|+ My caption\n|-\n|cell\n|}")
	var table Table
	var found bool
	for _, n := range output.Nodes {
		if tbl, ok := n.(Table); ok {
			table = tbl
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a Table node in %#v", output.Nodes)
	}
	if len(table.Captions) != 1 {
		t.Errorf("captions = %d, want 1", len(table.Captions))
	}
}
