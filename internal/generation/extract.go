package generation

import (
	"encoding/json"
	"regexp"
	"strings"
)

// flatObjectPattern matches a single JSON object with no nested braces. The
// salvage pass intentionally cannot recover records whose values are
// themselves objects; it is a heuristic recovery path, not a parser.
var flatObjectPattern = regexp.MustCompile(`\{[^{}]*\}`)

// Extract recovers an ordered list of records from raw model output. The
// model is asked for a bare JSON array but routinely wraps it in prose or
// markdown, or truncates it mid-array, so recovery is layered: strip code
// fences, parse the first-[..last-] window, parse the whole text, then
// salvage individual flat objects. Extract never fails; the worst case is an
// empty list. Record order always follows the order of appearance in the raw
// text.
func Extract(raw string) []Record {
	cleaned := stripFences(raw)

	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start >= 0 && end > start {
		if recs, ok := parseArray(cleaned[start : end+1]); ok {
			return recs
		}
	}

	var direct interface{}
	if err := json.Unmarshal([]byte(cleaned), &direct); err == nil {
		if arr, ok := direct.([]interface{}); ok {
			return toRecords(arr)
		}
		return []Record{}
	}

	return salvageObjects(raw)
}

func stripFences(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if !strings.HasPrefix(cleaned, "```") {
		return cleaned
	}
	cleaned = strings.ReplaceAll(cleaned, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}

func parseArray(s string) ([]Record, bool) {
	var arr []interface{}
	if err := json.Unmarshal([]byte(s), &arr); err != nil {
		return nil, false
	}
	return toRecords(arr), true
}

// toRecords keeps the object-shaped elements of a parsed array, in order.
func toRecords(arr []interface{}) []Record {
	recs := make([]Record, 0, len(arr))
	for _, el := range arr {
		if obj, ok := el.(map[string]interface{}); ok {
			recs = append(recs, Record(obj))
		}
	}
	return recs
}

// salvageObjects scans the raw text for flat {...} substrings and parses each
// independently, silently dropping the ones that do not parse. Best effort:
// every returned record came from text the model actually emitted.
func salvageObjects(raw string) []Record {
	matches := flatObjectPattern.FindAllString(raw, -1)
	recs := make([]Record, 0, len(matches))
	for _, m := range matches {
		var rec Record
		if err := json.Unmarshal([]byte(m), &rec); err == nil {
			recs = append(recs, rec)
		}
	}
	return recs
}
