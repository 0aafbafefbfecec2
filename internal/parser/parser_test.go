package parser

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "surrounded by prose",
			raw:      `Here is your quiz: {"questions":[{"q":"2+2?","a":"4"}]} Hope you enjoy!`,
			expected: `{"questions":[{"q":"2+2?","a":"4"}]}`,
		},
		{
			name:     "code fence",
			raw:      "```json\n{\"correct\": true, \"feedback\": \"Nice\"}\n```",
			expected: `{"correct": true, "feedback": "Nice"}`,
		},
		{
			name:     "think block",
			raw:      "<think>the user wants {json}</think>\n{\"correct\": false, \"feedback\": \"No\"}",
			expected: `{"correct": false, "feedback": "No"}`,
		},
		{
			name:     "think tags inside a question",
			raw:      `{"questions":[{"q":"Which tag do reasoning models emit, <think> or </think>?","a":"<think>"}]}`,
			expected: `{"questions":[{"q":"Which tag do reasoning models emit, <think> or </think>?","a":"<think>"}]}`,
		},
		{
			name:     "think tags inside feedback",
			raw:      `{"correct": true, "feedback": "Nice <think>hm</think> work"}`,
			expected: `{"correct": true, "feedback": "Nice <think>hm</think> work"}`,
		},
		{
			name:     "prose before a think tag is not a think block",
			raw:      `Answer: {"correct": false, "feedback": "Use <think></think> tags"}`,
			expected: `{"correct": false, "feedback": "Use <think></think> tags"}`,
		},
		{
			name:     "pure json",
			raw:      "  {}  ",
			expected: `{}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.raw)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(got))
		})
	}
}

func TestExtract_Failures(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		snippet string
	}{
		{name: "pure prose", raw: "Sorry, I cannot help with that.", snippet: "Sorry, I cannot help with that."},
		{name: "empty", raw: "   ", snippet: ""},
		{name: "broken object", raw: `Sure! {"questions": [ {"q": "x"`, snippet: `Sure! {"questions": [ {"q": "x"`},
		{name: "reversed braces", raw: `} nope {`, snippet: `} nope {`},
		{name: "two objects", raw: `{"a":1} and {"b":2}`, snippet: `{"a":1} and {"b":2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(tt.raw)
			require.Error(t, err)

			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, tt.snippet, parseErr.RawSnippet)
		})
	}
}

func TestDecode(t *testing.T) {
	type verdict struct {
		Correct  bool   `json:"correct"`
		Feedback string `json:"feedback"`
	}

	t.Run("Success", func(t *testing.T) {
		v, err := Decode[verdict](`Result: {"correct": true, "feedback": "Spot on"}`)
		require.NoError(t, err)
		assert.True(t, v.Correct)
		assert.Equal(t, "Spot on", v.Feedback)
	})

	t.Run("TypeMismatch", func(t *testing.T) {
		_, err := Decode[verdict](`{"correct": "yes", "feedback": "ok"}`)
		var parseErr *ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, `{"correct": "yes", "feedback": "ok"}`, parseErr.RawSnippet)
	})
}

func TestParseError_TruncatesSnippetInMessage(t *testing.T) {
	long := make([]byte, 500)
	for i := range long {
		long[i] = 'x'
	}
	err := &ParseError{Reason: "invalid JSON", RawSnippet: string(long)}
	assert.Less(t, len(err.Error()), 300)
	assert.Len(t, err.RawSnippet, 500)
}

func TestParseError_TruncatesOnRuneBoundary(t *testing.T) {
	// 199 ASCII bytes then 3-byte runes: byte 200 falls inside the first rune.
	raw := strings.Repeat("x", 199) + strings.Repeat("€", 50)
	err := &ParseError{Reason: "invalid JSON", RawSnippet: raw}

	msg := err.Error()
	assert.True(t, utf8.ValidString(msg))
	assert.Contains(t, msg, strings.Repeat("x", 199)+`..."`)
}

func TestDecode_KeepsThinkTextInValues(t *testing.T) {
	type verdict struct {
		Correct  bool   `json:"correct"`
		Feedback string `json:"feedback"`
	}
	v, err := Decode[verdict]("<think>grading</think>\n" + `{"correct": true, "feedback": "Nice <think>hm</think> work"}`)
	require.NoError(t, err)
	assert.Equal(t, "Nice <think>hm</think> work", v.Feedback)
}
