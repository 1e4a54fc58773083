package submission

import (
	"encoding/json"
	"testing"
	"time"
)

func TestSubmissionDecodeKeepsScalarText(t *testing.T) {
	t.Parallel()

	payload := `{
		"_id": "abc123",
		"fullName": "Asha Nair",
		"yearOfGraduation": 2019,
		"docsReady": true,
		"notes": null,
		"createdAt": "2024-03-05T10:30:00.000Z"
	}`
	var got Submission
	if err := json.Unmarshal([]byte(payload), &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got.ID != "abc123" {
		t.Fatalf("ID = %q, want %q", got.ID, "abc123")
	}
	if got.YearOfGraduation != "2019" {
		t.Fatalf("YearOfGraduation = %q, want %q", got.YearOfGraduation, "2019")
	}
	if got.DocsReady != "true" {
		t.Fatalf("DocsReady = %q, want %q", got.DocsReady, "true")
	}
	if got.Notes != "" {
		t.Fatalf("Notes = %q, want empty", got.Notes)
	}
	want := time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC)
	if !got.CreatedAt.Equal(want) {
		t.Fatalf("CreatedAt = %v, want %v", got.CreatedAt, want)
	}
}

func TestSubmissionDecodeToleratesBadTimestamp(t *testing.T) {
	t.Parallel()

	var got Submission
	if err := json.Unmarshal([]byte(`{"fullName":"A","createdAt":"yesterday"}`), &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !got.CreatedAt.IsZero() {
		t.Fatalf("CreatedAt = %v, want zero", got.CreatedAt)
	}
	if got.FullName != "A" {
		t.Fatalf("FullName = %q, want %q", got.FullName, "A")
	}
}

func TestValueByKey(t *testing.T) {
	t.Parallel()

	record := Submission{
		ID:             "id-1",
		CurrentCountry: "India",
		CreatedAt:      time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	cases := map[string]string{
		"currentCountry": "India",
		KeyID:            "id-1",
		KeyCreatedAt:     "2024-01-02T03:04:05Z",
		"unknown":        "",
		"notes":          "",
	}
	for key, want := range cases {
		if got := record.Value(key); got != want {
			t.Fatalf("Value(%q) = %q, want %q", key, got, want)
		}
	}
}

func TestColumnsMatchTableOrder(t *testing.T) {
	t.Parallel()

	want := []string{
		"fullName", "dateOfBirth", "gender", "nationality", "currentCountry", "phone", "email",
		"position", "qualification", "yearOfGraduation", "councilRegistered", "docsReady",
		"passportStatus", "italianKnowledge", "languageMode", "availabilityDate", "notes",
		"submittedIp", "submittedCountry", "createdAt",
	}
	if len(Columns) != len(want) {
		t.Fatalf("len(Columns) = %d, want %d", len(Columns), len(want))
	}
	for idx, column := range Columns {
		if column.Key != want[idx] {
			t.Fatalf("Columns[%d].Key = %q, want %q", idx, column.Key, want[idx])
		}
	}
}

func TestFieldsKeepPayloadOrder(t *testing.T) {
	t.Parallel()

	var got Submission
	if err := json.Unmarshal([]byte(`{"email":"a@b.c","_id":"x","notes":null,"docsReady":true}`), &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	want := []Field{{Key: "email", Text: "a@b.c"}, {Key: "_id", Text: "x"}, {Key: "notes", Text: ""}, {Key: "docsReady", Text: "true"}}
	fields := got.Fields()
	if len(fields) != len(want) {
		t.Fatalf("len(Fields()) = %d, want %d", len(fields), len(want))
	}
	for idx := range want {
		if fields[idx] != want[idx] {
			t.Fatalf("Fields()[%d] = %+v, want %+v", idx, fields[idx], want[idx])
		}
	}

	built := Submission{ID: "y", FullName: "Z"}.Fields()
	if len(built) != len(Columns)+1 || built[0].Key != KeyID || built[1].Text != "Z" {
		t.Fatalf("built Fields() = %+v", built)
	}
}
