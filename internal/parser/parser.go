// Package parser isolates JSON payloads inside free-form language model output.
package parser

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

const maxSnippetInMessage = 200

// ParseError reports model output that could not be decoded.
type ParseError struct {
	Reason     string
	RawSnippet string
}

func (e *ParseError) Error() string {
	snippet := e.RawSnippet
	if len(snippet) > maxSnippetInMessage {
		cut := maxSnippetInMessage
		for cut > 0 && !utf8.RuneStart(snippet[cut]) {
			cut--
		}
		snippet = snippet[:cut] + "..."
	}
	return fmt.Sprintf("parse model output: %s (snippet: %q)", e.Reason, snippet)
}

// Extract returns the JSON object embedded in raw.
//
// The candidate is the span from the leftmost '{' to the rightmost '}'. When
// no such span exists the whole trimmed text is decoded instead. A leading
// <think>...</think> block emitted by reasoning models is discarded first.
func Extract(raw string) (json.RawMessage, error) {
	candidate := candidateSpan(stripThinkBlock(strings.TrimSpace(raw)))
	if candidate == "" {
		return nil, &ParseError{Reason: "empty response", RawSnippet: candidate}
	}
	if !json.Valid([]byte(candidate)) {
		return nil, &ParseError{Reason: "invalid JSON", RawSnippet: candidate}
	}
	return json.RawMessage(candidate), nil
}

// Decode extracts the JSON object from raw and strictly decodes it into T.
func Decode[T any](raw string) (T, error) {
	var out T
	payload, err := Extract(raw)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(payload, &out); err != nil {
		return out, &ParseError{Reason: err.Error(), RawSnippet: string(payload)}
	}
	return out, nil
}

func candidateSpan(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end > start {
		return text[start : end+1]
	}
	return text
}

// stripThinkBlock drops a reasoning block only when the text opens with one.
// Tags appearing later, e.g. inside JSON strings, are left untouched.
func stripThinkBlock(text string) string {
	if !strings.HasPrefix(text, "<think>") {
		return text
	}
	thinkEnd := strings.Index(text, "</think>")
	if thinkEnd == -1 {
		return text
	}
	return strings.TrimSpace(text[thinkEnd+len("</think>"):])
}
