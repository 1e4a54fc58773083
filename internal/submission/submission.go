package submission

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// Text is a scalar JSON value kept as display text.
//
// The backend is free to send strings, numbers, booleans or null for any
// field; all of them decode into their textual form and null decodes to "".
type Text string

// UnmarshalJSON accepts any JSON value and keeps its text form.
func (t *Text) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*t = ""
		return nil
	}
	if trimmed[0] == '"' {
		var value string
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return err
		}
		*t = Text(value)
		return nil
	}
	*t = Text(trimmed)
	return nil
}

// String returns the raw text.
func (t Text) String() string {
	return string(t)
}

// Submission is one applicant's form response as served by the backend.
type Submission struct {
	ID                Text      `json:"_id"`
	FullName          Text      `json:"fullName"`
	DateOfBirth       Text      `json:"dateOfBirth"`
	Gender            Text      `json:"gender"`
	Nationality       Text      `json:"nationality"`
	CurrentCountry    Text      `json:"currentCountry"`
	Phone             Text      `json:"phone"`
	Email             Text      `json:"email"`
	Position          Text      `json:"position"`
	Qualification     Text      `json:"qualification"`
	YearOfGraduation  Text      `json:"yearOfGraduation"`
	CouncilRegistered Text      `json:"councilRegistered"`
	DocsReady         Text      `json:"docsReady"`
	PassportStatus    Text      `json:"passportStatus"`
	ItalianKnowledge  Text      `json:"italianKnowledge"`
	LanguageMode      Text      `json:"languageMode"`
	AvailabilityDate  Text      `json:"availabilityDate"`
	Notes             Text      `json:"notes"`
	SubmittedIP       Text      `json:"submittedIp"`
	SubmittedCountry  Text      `json:"submittedCountry"`
	CreatedAt         time.Time `json:"createdAt"`

	// fields holds every backend key in payload order with its original text.
	fields []Field
}

// Field is one backend key and its value as sent.
type Field struct {
	Key  string
	Text string
}

// UnmarshalJSON decodes a submission, leaving CreatedAt zero when the
// timestamp is missing or unparseable instead of failing the whole payload.
func (s *Submission) UnmarshalJSON(data []byte) error {
	type plain Submission
	var raw struct {
		plain
		CreatedAt Text `json:"createdAt"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	fields, err := decodeFields(data)
	if err != nil {
		return err
	}
	*s = Submission(raw.plain)
	s.CreatedAt = parseTimestamp(raw.CreatedAt.String())
	s.fields = fields
	return nil
}

// decodeFields walks the top-level object keeping key order. Scalars keep
// their text form; nested objects and arrays keep their compact JSON.
func decodeFields(data []byte) ([]Field, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	var fields []Field
	seen := make(map[string]int)
	for dec.More() {
		token, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := token.(string)
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		text, err := rawText(value)
		if err != nil {
			return nil, err
		}
		if idx, ok := seen[key]; ok {
			fields[idx].Text = text
			continue
		}
		seen[key] = len(fields)
		fields = append(fields, Field{Key: key, Text: text})
	}
	return fields, nil
}

func rawText(value json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(value)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		var compact bytes.Buffer
		if err := json.Compact(&compact, trimmed); err != nil {
			return "", err
		}
		return compact.String(), nil
	}
	var text Text
	if err := text.UnmarshalJSON(trimmed); err != nil {
		return "", err
	}
	return text.String(), nil
}

// Fields returns the backend keys and their text in payload order. Records
// built in code rather than decoded report _id followed by Columns.
func (s Submission) Fields() []Field {
	if s.fields != nil {
		return s.fields
	}
	fields := make([]Field, 0, len(Columns)+1)
	fields = append(fields, Field{Key: KeyID, Text: s.ID.String()})
	for _, column := range Columns {
		fields = append(fields, Field{Key: column.Key, Text: column.value(s)})
	}
	return fields
}

func parseTimestamp(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.UTC()
		}
	}
	return time.Time{}
}

// Value returns the text of the column identified by its JSON key.
// Unknown keys yield "".
func (s Submission) Value(key string) string {
	column, ok := columnByKey[key]
	if !ok {
		if key == KeyID {
			return s.ID.String()
		}
		return ""
	}
	return column.value(s)
}
