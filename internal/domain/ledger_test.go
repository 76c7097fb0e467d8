package domain

import "testing"

func TestLedgerDeplete(t *testing.T) {
	// build test data
	source := []StockRecord{
		{WarehouseID: "W1", ProductID: "P1", Quantity: 100},
		{WarehouseID: "W2", ProductID: "P1", Quantity: 40},
		{WarehouseID: "W1", ProductID: "P2", Quantity: 5},
	}
	ledger := NewLedger(source)

	// call the method under test
	if err := ledger.Deplete("W1", "P1", 60); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// verify behavior
	records := ledger.Records()
	if records[0].Quantity != 40 {
		t.Errorf("W1/P1 quantity = %d, want 40", records[0].Quantity)
	}
	if records[1].Quantity != 40 {
		t.Errorf("W2/P1 quantity = %d, want 40", records[1].Quantity)
	}
	if records[2].Quantity != 5 {
		t.Errorf("W1/P2 quantity = %d, want 5", records[2].Quantity)
	}

	// the caller's slice must be untouched
	if source[0].Quantity != 100 {
		t.Errorf("source slice mutated: W1/P1 = %d, want 100", source[0].Quantity)
	}
}

func TestLedgerDepleteGuardsNegativeStock(t *testing.T) {
	ledger := NewLedger([]StockRecord{
		{WarehouseID: "W1", ProductID: "P1", Quantity: 10},
	})

	if err := ledger.Deplete("W1", "P1", 11); err == nil {
		t.Fatal("expected error depleting below zero, got nil")
	}
	if got := ledger.Records()[0].Quantity; got != 10 {
		t.Errorf("failed depletion changed stock: got %d, want 10", got)
	}

	if err := ledger.Deplete("W9", "P1", 1); err == nil {
		t.Fatal("expected error for unknown record, got nil")
	}
}

func TestLedgerCandidates(t *testing.T) {
	ledger := NewLedger([]StockRecord{
		{WarehouseID: "W1", ProductID: "P1", Quantity: 100},
		{WarehouseID: "W2", ProductID: "P2", Quantity: 40},
		{WarehouseID: "W3", ProductID: "P1", Quantity: 7},
	})

	got := ledger.Candidates("P1")
	if len(got) != 2 {
		t.Fatalf("candidates for P1 = %d rows, want 2", len(got))
	}
	if got[0].WarehouseID != "W1" || got[1].WarehouseID != "W3" {
		t.Errorf("candidates out of dataset order: %v", got)
	}

	if rows := ledger.Candidates("P9"); len(rows) != 0 {
		t.Errorf("candidates for unknown product = %v, want none", rows)
	}
}
