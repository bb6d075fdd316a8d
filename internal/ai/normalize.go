package ai

import "encoding/json"

// Completion bodies differ between providers even on the "OpenAI
// compatible" endpoints, so the reply text is pulled out of the parsed
// JSON by trying known shapes in order rather than by unmarshalling
// into one fixed struct. Whatever defeats every shape is echoed back
// raw (clipped) instead of failing the request.

const maxRawEcho = 2000

type extractor func(v any) (string, bool)

var extractors = []extractor{
	chatChoiceText,       // {"choices":[{"message":{"content":"..."}}]}
	completionChoiceText, // {"choices":[{"text":"..."}]}
	nestedOutputText,     // {"output":[{"content":[{"text":"..."}]}]}
	literalString,        // "..."
}

// Normalize turns a successful provider body into plain reply text.
// It never fails: unrecognized bodies come back verbatim, clipped to
// maxRawEcho bytes.
func Normalize(raw []byte) string {
	var v any
	if err := json.Unmarshal(raw, &v); err == nil {
		for _, extract := range extractors {
			if text, ok := extract(v); ok {
				return text
			}
		}
	}
	return clip(string(raw), maxRawEcho)
}

func chatChoiceText(v any) (string, bool) {
	choice, ok := firstChoice(v)
	if !ok {
		return "", false
	}
	msg, ok := choice["message"].(map[string]any)
	if !ok {
		return "", false
	}
	text, _ := msg["content"].(string)
	return text, text != ""
}

func completionChoiceText(v any) (string, bool) {
	choice, ok := firstChoice(v)
	if !ok {
		return "", false
	}
	text, _ := choice["text"].(string)
	return text, text != ""
}

func nestedOutputText(v any) (string, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return "", false
	}
	output, ok := obj["output"].([]any)
	if !ok || len(output) == 0 {
		return "", false
	}
	entry, ok := output[0].(map[string]any)
	if !ok {
		return "", false
	}
	content, ok := entry["content"].([]any)
	if !ok || len(content) == 0 {
		return "", false
	}
	part, ok := content[0].(map[string]any)
	if !ok {
		return "", false
	}
	text, _ := part["text"].(string)
	return text, text != ""
}

func literalString(v any) (string, bool) {
	text, ok := v.(string)
	return text, ok && text != ""
}

func firstChoice(v any) (map[string]any, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	choices, ok := obj["choices"].([]any)
	if !ok || len(choices) == 0 {
		return nil, false
	}
	choice, ok := choices[0].(map[string]any)
	return choice, ok
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
