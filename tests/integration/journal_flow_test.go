package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestJournalFlow_CreateFetchArchive(t *testing.T) {
	app := setupApp(t, &stubGenerator{})

	// Create a journal with one sell record.
	id := app.createJournal(t, journalBody("AAPL",
		`{"date": "2024-01-01", "price": "160", "amount": "5", "reason": "partial profit"}`))

	// Fetch immediately after create: exactly one sell record, submission order.
	rec := app.request("GET", "/api/v1/journals", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	journals := parseJSON(t, rec)["journals"].([]interface{})
	if len(journals) != 1 {
		t.Fatalf("expected 1 journal, got %d", len(journals))
	}
	journal := journals[0].(map[string]interface{})
	if journal["asset"] != "AAPL" {
		t.Errorf("expected asset AAPL, got %v", journal["asset"])
	}
	sellRecords := journal["sell_records"].([]interface{})
	if len(sellRecords) != 1 {
		t.Fatalf("expected 1 sell record, got %d", len(sellRecords))
	}
	sr := sellRecords[0].(map[string]interface{})
	if sr["amount"] != "5" || sr["reason"] != "partial profit" {
		t.Errorf("unexpected sell record: %v", sr)
	}

	// Archive: default list omits it, archived list contains it.
	rec = app.request("DELETE", fmt.Sprintf("/api/v1/journals/%.0f", id), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 archiving, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/journals", "")
	if got := len(parseJSON(t, rec)["journals"].([]interface{})); got != 0 {
		t.Errorf("expected archived journal excluded from default list, got %d", got)
	}

	rec = app.request("GET", "/api/v1/journals/archived", "")
	archived := parseJSON(t, rec)["journals"].([]interface{})
	if len(archived) != 1 {
		t.Fatalf("expected 1 archived journal, got %d", len(archived))
	}
	if archived[0].(map[string]interface{})["archived"] != true {
		t.Error("expected archived=true in archived listing")
	}

	rec = app.request("GET", "/api/v1/journals?include_archived=true", "")
	if got := len(parseJSON(t, rec)["journals"].([]interface{})); got != 1 {
		t.Errorf("expected archived journal in include_archived list, got %d", got)
	}

	// Archiving again succeeds (idempotent), as does unarchiving twice.
	rec = app.request("DELETE", fmt.Sprintf("/api/v1/journals/%.0f", id), "")
	if rec.Code != http.StatusOK {
		t.Errorf("expected idempotent archive, got %d", rec.Code)
	}
	rec = app.request("POST", fmt.Sprintf("/api/v1/journals/%.0f/unarchive", id), "")
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 unarchiving, got %d", rec.Code)
	}
	rec = app.request("POST", fmt.Sprintf("/api/v1/journals/%.0f/unarchive", id), "")
	if rec.Code != http.StatusOK {
		t.Errorf("expected idempotent unarchive, got %d", rec.Code)
	}

	rec = app.request("GET", "/api/v1/journals", "")
	if got := len(parseJSON(t, rec)["journals"].([]interface{})); got != 1 {
		t.Errorf("expected unarchived journal back in default list, got %d", got)
	}
}

func TestJournalFlow_UpdateReplacesSellRecords(t *testing.T) {
	app := setupApp(t, &stubGenerator{})

	id := app.createJournal(t, journalBody("TSLA",
		`{"date": "2024-01-01", "price": "200", "amount": "2", "reason": "first"}`,
		`{"date": "2024-01-05", "price": "210", "amount": "1", "reason": "second"}`))

	// Capture old sell-record ids.
	rec := app.request("GET", "/api/v1/journals", "")
	journal := parseJSON(t, rec)["journals"].([]interface{})[0].(map[string]interface{})
	oldRecords := journal["sell_records"].([]interface{})
	if len(oldRecords) != 2 {
		t.Fatalf("expected 2 sell records, got %d", len(oldRecords))
	}
	oldIDs := map[float64]bool{}
	for _, r := range oldRecords {
		oldIDs[r.(map[string]interface{})["id"].(float64)] = true
	}

	// Update with a different set of 3 records.
	update := journalBody("TSLA",
		`{"date": "2024-02-01", "price": "220", "amount": "1", "reason": "new-a"}`,
		`{"date": "2024-02-05", "price": "225", "amount": "1", "reason": "new-b"}`,
		`{"date": "2024-02-09", "price": "230", "amount": "1", "reason": "new-c"}`)
	rec = app.request("PUT", fmt.Sprintf("/api/v1/journals/%.0f", id), update)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 updating, got %d: %s", rec.Code, rec.Body.String())
	}

	updated := parseJSON(t, rec)["journal"].(map[string]interface{})
	newRecords := updated["sell_records"].([]interface{})
	if len(newRecords) != 3 {
		t.Fatalf("expected exactly 3 sell records after update, got %d", len(newRecords))
	}
	for i, want := range []string{"new-a", "new-b", "new-c"} {
		r := newRecords[i].(map[string]interface{})
		if r["reason"] != want {
			t.Errorf("record %d: expected reason %q, got %v", i, want, r["reason"])
		}
		if oldIDs[r["id"].(float64)] {
			t.Errorf("record %d reuses an old sell-record id %v", i, r["id"])
		}
	}
}

func TestJournalFlow_UpdateMissingJournal(t *testing.T) {
	app := setupApp(t, &stubGenerator{})

	rec := app.request("PUT", "/api/v1/journals/9999", journalBody("AAPL",
		`{"date": "2024-01-01", "price": "160", "amount": "5", "reason": "orphan"}`))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}

	// No orphan sell records may exist.
	var count int64
	app.DB.Table("sell_records").Count(&count)
	if count != 0 {
		t.Errorf("expected zero sell records after failed update, got %d", count)
	}
}

func TestJournalFlow_ListOrdering(t *testing.T) {
	app := setupApp(t, &stubGenerator{})

	first := app.createJournal(t, journalBody("AAA"))
	second := app.createJournal(t, journalBody("BBB"))
	third := app.createJournal(t, journalBody("CCC"))

	rec := app.request("GET", "/api/v1/journals", "")
	journals := parseJSON(t, rec)["journals"].([]interface{})
	if len(journals) != 3 {
		t.Fatalf("expected 3 journals, got %d", len(journals))
	}
	gotOrder := []float64{
		journals[0].(map[string]interface{})["id"].(float64),
		journals[1].(map[string]interface{})["id"].(float64),
		journals[2].(map[string]interface{})["id"].(float64),
	}
	if gotOrder[0] != third || gotOrder[1] != second || gotOrder[2] != first {
		t.Errorf("expected newest-first order [%v %v %v], got %v", third, second, first, gotOrder)
	}
}

func TestJournalFlow_ValidationFailure(t *testing.T) {
	app := setupApp(t, &stubGenerator{})

	rec := app.request("POST", "/api/v1/journals", `{"asset": "AAPL"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	errObj := parseJSON(t, rec)["error"].(map[string]interface{})
	if errObj["code"] != "INVALID_INPUT" {
		t.Errorf("expected INVALID_INPUT, got %v", errObj["code"])
	}
}
