package generation

import "fmt"

// Prompt is the fully built input for one completion call.
type Prompt struct {
	System     string
	User       string
	CountRange string // target record count, e.g. "5-8"; empty for summary
}

const systemMultipleChoice = `You are an expert educator creating multiple choice questions.
Each question should have exactly 4 options, with one correct answer (index 0-3).
Questions should test understanding, not just recall.`

const systemFillBlank = `You are an expert educator creating fill-in-the-blank questions.
Each question should have a clear blank space (marked with _____) and a specific correct answer.`

const systemShortAnswer = `You are an expert educator creating short answer questions.
Questions should require thoughtful responses, not just one-word answers.`

const systemFlashcards = `You are an expert educational content creator.
Generate flashcards in JSON format from the provided text.
Each flashcard should have a clear question on the front and a concise answer on the back.
Focus on key concepts, definitions, and important facts.`

const systemSummary = `You are an expert at creating concise, informative summaries.
Create clear and well-structured summaries that capture the main points.`

// sizingBand buckets the input length into one of four bands. Longer input
// asks the model for proportionally more records.
func sizingBand(textLen int) int {
	switch {
	case textLen > 10000:
		return 3
	case textLen > 5000:
		return 2
	case textLen > 3000:
		return 1
	default:
		return 0
	}
}

// countRanges holds the per-band target record ranges for each kind, smallest
// band first.
var countRanges = map[Kind][4]string{
	KindMultipleChoice: {"5-8", "8-12", "10-15", "12-18"},
	KindFillBlank:      {"5-7", "6-8", "7-10", "8-12"},
	KindShortAnswer:    {"5-7", "6-8", "7-10", "8-12"},
	KindFlashcards:     {"8-12", "12-15", "15-18", "18-22"},
}

// summaryInstructions escalate with input length, smallest band first.
var summaryInstructions = [4]string{
	"Create a concise summary of the following text. Focus on the main ideas, key concepts, and important information.",
	"Create a concise summary of the following text. Focus on the main ideas, key concepts, and important information.",
	"Create a detailed summary of the following text, covering all main ideas, key concepts, and important information.",
	"Create a comprehensive summary covering all main topics, key concepts, and important information from the following text. Make sure to include all major points.",
}

// BuildPrompt deterministically derives the completion prompt and system
// instruction for one sub-task. No I/O, no randomness.
func BuildPrompt(kind Kind, text string) Prompt {
	band := sizingBand(len(text))

	if kind == KindSummary {
		return Prompt{
			System: systemSummary,
			User: fmt.Sprintf(`%s
Keep it clear and easy to understand.

Text:
%s

Summary:`, summaryInstructions[band], text),
		}
	}

	countRange := countRanges[kind][band]
	switch kind {
	case KindMultipleChoice:
		return Prompt{
			System:     systemMultipleChoice,
			CountRange: countRange,
			User: fmt.Sprintf(`Based on the following text, generate %s multiple choice questions in JSON format.
Create questions covering the important topics and concepts from the text.
For longer text, create more questions to cover the additional content.
Return ONLY a valid JSON array with this structure:
[
    {
        "question": "Question text",
        "options": ["Option A", "Option B", "Option C", "Option D"],
        "correct_answer": 0,
        "explanation": "Brief explanation"
    },
    ...
]

Text:
%s

Return only the JSON array, no additional text.`, countRange, text),
		}
	case KindFillBlank:
		return Prompt{
			System:     systemFillBlank,
			CountRange: countRange,
			User: fmt.Sprintf(`Based on the following text, generate %s fill-in-the-blank questions in JSON format.
Return ONLY a valid JSON array with this structure:
[
    {
        "question": "Sentence with _____ blank",
        "answer": "Correct answer",
        "hint": "Optional hint"
    },
    ...
]

Text:
%s

Return only the JSON array, no additional text.`, countRange, text),
		}
	case KindShortAnswer:
		return Prompt{
			System:     systemShortAnswer,
			CountRange: countRange,
			User: fmt.Sprintf(`Based on the following text, generate %s short answer questions in JSON format.
Return ONLY a valid JSON array with this structure:
[
    {
        "question": "Question text",
        "answer": "Expected answer",
        "key_points": ["Point 1", "Point 2"]
    },
    ...
]

Text:
%s

Return only the JSON array, no additional text.`, countRange, text),
		}
	default: // KindFlashcards
		return Prompt{
			System:     systemFlashcards,
			CountRange: countRange,
			User: fmt.Sprintf(`Based on the following text, generate %s flashcards in JSON format.
Create flashcards covering the important concepts, definitions, and key information from the text.
For longer text, create more flashcards to cover the additional content.
Return ONLY a valid JSON array with this structure:
[
    {"front": "Question or term", "back": "Answer or definition"},
    ...
]

Text:
%s

Return only the JSON array, no additional text.`, countRange, text),
		}
	}
}
