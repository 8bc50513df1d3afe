package bank

// Dataset is an ordered, immutable collection of questions plus the
// distinct values per filterable field, in first-appearance order.
// A dataset is created whole by Load and replaced whole by the next
// successful Load; it is never partially mutated.
type Dataset struct {
	questions []Question

	languages    []string
	chapters     []string
	exercises    []string
	difficulties []string
}

func newDataset(questions []Question) *Dataset {
	ds := &Dataset{questions: questions}
	seen := map[string]map[string]bool{
		"language":   {},
		"chapter":    {},
		"exercise":   {},
		"difficulty": {},
	}
	add := func(field string, dst *[]string, v string) {
		if !seen[field][v] {
			seen[field][v] = true
			*dst = append(*dst, v)
		}
	}
	for _, q := range questions {
		add("language", &ds.languages, q.Language)
		add("chapter", &ds.chapters, q.Chapter)
		add("exercise", &ds.exercises, q.Exercise)
		add("difficulty", &ds.difficulties, q.Difficulty)
	}
	return ds
}

// Len returns the number of question records.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.questions)
}

// Question returns the record at the given row index.
func (d *Dataset) Question(rowIndex int) Question {
	return d.questions[rowIndex]
}

// Languages returns the distinct language values in first-appearance order.
func (d *Dataset) Languages() []string {
	if d == nil {
		return nil
	}
	return d.languages
}

// Chapters returns the distinct chapter values in first-appearance order.
func (d *Dataset) Chapters() []string {
	if d == nil {
		return nil
	}
	return d.chapters
}

// Exercises returns the distinct exercise values in first-appearance order.
func (d *Dataset) Exercises() []string {
	if d == nil {
		return nil
	}
	return d.exercises
}

// Difficulties returns the distinct difficulty values in first-appearance order.
func (d *Dataset) Difficulties() []string {
	if d == nil {
		return nil
	}
	return d.difficulties
}
