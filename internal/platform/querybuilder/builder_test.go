package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("public_id", "name").
		From("leagues").
		Where(Eq("code", "ABC123"), Eq("status", "lobby")).
		OrderBy("created_at DESC").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT public_id, name FROM leagues WHERE code = $1 AND status = $2 ORDER BY created_at DESC LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "ABC123" || args[1] != "lobby" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_Join(t *testing.T) {
	query, _, err := Select("e.public_id", "le.mode").
		From("league_events le").
		Join("JOIN events e ON e.public_id = le.event_public_id").
		Where(Eq("le.league_public_id", "lg-1")).
		OrderBy("le.sort_order").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT e.public_id, le.mode FROM league_events le JOIN events e ON e.public_id = le.event_public_id WHERE le.league_public_id = $1 ORDER BY le.sort_order"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
}

func TestSelectBuilder_RawExpr(t *testing.T) {
	query, args, err := Select("COUNT(*)").
		From("event_entries ee").
		Where(Eq("ee.event_public_id", Raw("e.public_id"))).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT COUNT(*) FROM event_entries ee WHERE ee.event_public_id = e.public_id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 0 {
		t.Fatalf("raw expr must not bind args, got %+v", args)
	}
}

func TestSelectBuilder_InAndILike(t *testing.T) {
	query, args, err := Select("entry_key").
		From("event_entries").
		Where(
			In("event_public_id", []any{"ev-1", "ev-2"}),
			Or(ILike("name", "%lyles%"), ILike("country_code", "%US%")),
		).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT entry_key FROM event_entries WHERE event_public_id IN ($1, $2) AND (name ILIKE $3 OR country_code ILIKE $4)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 || args[2] != "%lyles%" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_EmptyIn(t *testing.T) {
	query, args, err := Select("id").
		From("events").
		Where(In("public_id", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id FROM events WHERE 1=0"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("leagues").
		Columns("public_id", "name").
		Values("lg-1", "Paris Pals").
		Suffix("RETURNING created_at").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO leagues (public_id, name) VALUES ($1, $2) RETURNING created_at"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "lg-1" || args[1] != "Paris Pals" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_MultiRow(t *testing.T) {
	query, args, err := InsertInto("event_entries").
		Columns("event_public_id", "entry_key").
		Values("ev-1", "lyles-noah").
		Values("ev-1", "thompson-kishane").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO event_entries (event_public_id, entry_key) VALUES ($1, $2), ($3, $4)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_RowArityMismatch(t *testing.T) {
	_, _, err := InsertInto("events").
		Columns("public_id", "name").
		Values("ev-1").
		ToSQL()
	if err == nil {
		t.Fatalf("expected arity error")
	}
}
