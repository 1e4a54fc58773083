package submission

// PageSize is the number of rows shown per dashboard page.
const PageSize = 10

// Page is one slice of a filtered result.
type Page struct {
	Items []Submission
	// Number is the 1-based page number, 0 when there are no records.
	Number     int
	TotalPages int
	Total      int
}

// HasPrevious reports whether a page precedes this one.
func (p Page) HasPrevious() bool {
	return p.Number > 1
}

// HasNext reports whether a page follows this one.
func (p Page) HasNext() bool {
	return p.Number < p.TotalPages
}

// Paginate returns the requested page, clamping number into range.
func Paginate(records []Submission, number, size int) Page {
	if size <= 0 {
		size = PageSize
	}
	total := len(records)
	if total == 0 {
		return Page{Items: []Submission{}}
	}
	totalPages := (total + size - 1) / size
	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}
	start := (number - 1) * size
	end := min(start+size, total)
	return Page{
		Items:      records[start:end],
		Number:     number,
		TotalPages: totalPages,
		Total:      total,
	}
}
