package fhir

import (
	"strings"
	"testing"
)

func TestSearchQuery_NoParams(t *testing.T) {
	q := NewSearchQuery("location", "uuid, name")
	q.OrderBy("name")
	if got := q.SQL(); got != "SELECT uuid, name FROM location WHERE 1=1 ORDER BY name" {
		t.Errorf("unexpected SQL %q", got)
	}
	if len(q.Args()) != 0 {
		t.Errorf("expected no args, got %v", q.Args())
	}
}

func TestSearchQuery_ApplyParams(t *testing.T) {
	configs := map[string]SearchParamConfig{
		"name": {Type: SearchParamString, Columns: []string{"given_name", "family_name"}},
		"gender": {Type: SearchParamToken, Columns: []string{"gender"}, Normalize: func(v string) (string, bool) {
			if v == "female" {
				return "F", true
			}
			return "", false
		}},
	}

	q := NewSearchQuery("patient", "uuid")
	q.Add("voided = $1", false)
	q.ApplyParams(map[string]string{"name:contains": "an"}, configs)

	sql := q.SQL()
	if !strings.Contains(sql, "AND voided = $1") {
		t.Errorf("expected raw clause in %q", sql)
	}
	if !strings.Contains(sql, "AND (given_name ILIKE $2 OR family_name ILIKE $3)") {
		t.Errorf("expected OR-ed string clause in %q", sql)
	}
	args := q.Args()
	if len(args) != 3 || args[1] != "%an%" || args[2] != "%an%" {
		t.Errorf("unexpected args %v", args)
	}
	if q.Idx() != 4 {
		t.Errorf("expected next index 4, got %d", q.Idx())
	}

	q = NewSearchQuery("patient", "uuid")
	q.ApplyParams(map[string]string{"gender": "female", "unknown": "x"}, configs)
	if !strings.Contains(q.SQL(), "gender = $1") || q.Args()[0] != "F" {
		t.Errorf("unexpected token query %q %v", q.SQL(), q.Args())
	}

	q = NewSearchQuery("patient", "uuid")
	q.ApplyParams(map[string]string{"gender": "robot"}, configs)
	if !strings.Contains(q.SQL(), "AND FALSE") || len(q.Args()) != 0 {
		t.Errorf("expected rejected token to force empty result, got %q", q.SQL())
	}
}

func TestSearchQuery_Subquery(t *testing.T) {
	configs := map[string]SearchParamConfig{
		"name": {
			Type:     SearchParamString,
			Columns:  []string{"n.given_name", "n.family_name"},
			Subquery: "EXISTS (SELECT 1 FROM patient_name n WHERE n.patient_uuid = p.uuid AND %s)",
		},
	}

	q := NewSearchQuery("patient p", "p.uuid")
	q.ApplyParams(map[string]string{"name:exact": "Doe"}, configs)

	want := "SELECT p.uuid FROM patient p WHERE 1=1 AND EXISTS (SELECT 1 FROM patient_name n WHERE n.patient_uuid = p.uuid AND (n.given_name = $1 OR n.family_name = $2))"
	if got := q.SQL(); got != want {
		t.Errorf("unexpected SQL\n got: %s\nwant: %s", got, want)
	}
}
