package submission

import "time"

// KeyID is the JSON key of the backend record identifier.
const KeyID = "_id"

// KeyCreatedAt is the JSON key of the creation timestamp column.
const KeyCreatedAt = "createdAt"

// Column describes one dashboard/CSV column.
type Column struct {
	// Key is the backend JSON key and CSV header.
	Key string
	// Field is the snake_case name used in filter and order_by expressions.
	Field string
	value func(Submission) string
}

// Columns lists the table columns in display order.
var Columns = []Column{
	{Key: "fullName", Field: "full_name", value: func(s Submission) string { return s.FullName.String() }},
	{Key: "dateOfBirth", Field: "date_of_birth", value: func(s Submission) string { return s.DateOfBirth.String() }},
	{Key: "gender", Field: "gender", value: func(s Submission) string { return s.Gender.String() }},
	{Key: "nationality", Field: "nationality", value: func(s Submission) string { return s.Nationality.String() }},
	{Key: "currentCountry", Field: "current_country", value: func(s Submission) string { return s.CurrentCountry.String() }},
	{Key: "phone", Field: "phone", value: func(s Submission) string { return s.Phone.String() }},
	{Key: "email", Field: "email", value: func(s Submission) string { return s.Email.String() }},
	{Key: "position", Field: "position", value: func(s Submission) string { return s.Position.String() }},
	{Key: "qualification", Field: "qualification", value: func(s Submission) string { return s.Qualification.String() }},
	{Key: "yearOfGraduation", Field: "year_of_graduation", value: func(s Submission) string { return s.YearOfGraduation.String() }},
	{Key: "councilRegistered", Field: "council_registered", value: func(s Submission) string { return s.CouncilRegistered.String() }},
	{Key: "docsReady", Field: "docs_ready", value: func(s Submission) string { return s.DocsReady.String() }},
	{Key: "passportStatus", Field: "passport_status", value: func(s Submission) string { return s.PassportStatus.String() }},
	{Key: "italianKnowledge", Field: "italian_knowledge", value: func(s Submission) string { return s.ItalianKnowledge.String() }},
	{Key: "languageMode", Field: "language_mode", value: func(s Submission) string { return s.LanguageMode.String() }},
	{Key: "availabilityDate", Field: "availability_date", value: func(s Submission) string { return s.AvailabilityDate.String() }},
	{Key: "notes", Field: "notes", value: func(s Submission) string { return s.Notes.String() }},
	{Key: "submittedIp", Field: "submitted_ip", value: func(s Submission) string { return s.SubmittedIP.String() }},
	{Key: "submittedCountry", Field: "submitted_country", value: func(s Submission) string { return s.SubmittedCountry.String() }},
	{Key: KeyCreatedAt, Field: "created_at", value: func(s Submission) string { return formatCreatedAt(s.CreatedAt) }},
}

var (
	columnByKey   = indexColumns(func(c Column) string { return c.Key })
	columnByField = indexColumns(func(c Column) string { return c.Field })
)

func indexColumns(key func(Column) string) map[string]Column {
	index := make(map[string]Column, len(Columns))
	for _, column := range Columns {
		index[key(column)] = column
	}
	return index
}

// FieldNames returns the snake_case names accepted by filters and ordering.
func FieldNames() []string {
	names := make([]string, 0, len(Columns))
	for _, column := range Columns {
		names = append(names, column.Field)
	}
	return names
}

func formatCreatedAt(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.UTC().Format(time.RFC3339Nano)
}
