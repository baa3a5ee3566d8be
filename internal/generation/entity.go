package generation

// Kind identifies one type of study artifact the model can produce.
type Kind string

const (
	KindMultipleChoice Kind = "multiple_choice"
	KindFillBlank      Kind = "fill_blank"
	KindShortAnswer    Kind = "short_answer"
	KindSummary        Kind = "summary"
	KindFlashcards     Kind = "flashcards"
	KindAll            Kind = "all"
)

// quizKinds are the sub-tasks a KindAll request decomposes into.
var quizKinds = []Kind{KindMultipleChoice, KindFillBlank, KindShortAnswer}

func (k Kind) Valid() bool {
	switch k {
	case KindMultipleChoice, KindFillBlank, KindShortAnswer, KindSummary, KindFlashcards, KindAll:
		return true
	}
	return false
}

// Request is one caller request for generated study content.
type Request struct {
	Text string `json:"text"`
	Kind Kind   `json:"kind"`
}

// Record is one generated unit (a quiz question, a flashcard). Field names
// come from the model, so the shape is deliberately loose.
type Record map[string]interface{}

// Aggregate is the combined outcome of all sub-tasks of one request. For an
// "all" request only the kinds that produced content are present.
type Aggregate struct {
	Records map[Kind][]Record `json:"records,omitempty"`
	Summary string            `json:"summary,omitempty"`
}

// TotalRecords counts the generated records across all kinds.
func (a *Aggregate) TotalRecords() int {
	total := 0
	for _, recs := range a.Records {
		total += len(recs)
	}
	return total
}

// requiredFields is the expected shape per kind. Records missing a field are
// logged and kept; model runs vary in exact field names.
var requiredFields = map[Kind][]string{
	KindMultipleChoice: {"question", "options", "correct_answer", "explanation"},
	KindFillBlank:      {"question", "answer"},
	KindShortAnswer:    {"question", "answer"},
	KindFlashcards:     {"front", "back"},
}
