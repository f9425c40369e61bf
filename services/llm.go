// services/llm.go - Optional LLM-backed reference suggester
package services

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"outliner/refscan"
)

// OpenAISuggester asks a chat completion model for reference phrasings
// the regex scanner may have missed. Suggestions carry the lowest
// priority, so the engine drops any that collide with a regex match.
// Best effort throughout; any API failure yields no suggestions.
type OpenAISuggester struct {
	apiKey string
	model  string
	url    string
	client *http.Client
}

// NewOpenAISuggesterFromEnv returns a suggester when OPENAI_API_KEY is
// set, nil otherwise.
func NewOpenAISuggesterFromEnv() *OpenAISuggester {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}

	return &OpenAISuggester{
		apiKey: apiKey,
		model:  model,
		url:    "https://api.openai.com/v1/chat/completions",
		client: &http.Client{Timeout: 20 * time.Second},
	}
}

const suggestPrompt = `Find Bible verse references in the text below that are written in prose rather than standard notation (for example "the eleventh verse of Ephesians four"). Reply with a JSON array of objects, each with "phrase" (the exact wording from the text) and "reference" (standard notation like "Eph. 4:11"). Reply with [] if there are none.

Text:
`

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type suggestion struct {
	Phrase    string `json:"phrase"`
	Reference string `json:"reference"`
}

// Suggest implements refscan.Suggester.
func (s *OpenAISuggester) Suggest(text string) []refscan.RawMatch {
	body, err := json.Marshal(chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "user", Content: suggestPrompt + text},
		},
	})
	if err != nil {
		return nil
	}

	req, err := http.NewRequest(http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("Suggester request failed: %v", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Suggester returned status %d", resp.StatusCode)
		return nil
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil || len(parsed.Choices) == 0 {
		return nil
	}

	return s.toMatches(text, parsed.Choices[0].Message.Content)
}

// toMatches anchors each suggested phrase back into the source text so
// the engine can prune overlaps against regex matches by byte span.
func (s *OpenAISuggester) toMatches(text, content string) []refscan.RawMatch {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var suggestions []suggestion
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &suggestions); err != nil {
		log.Printf("Suggester reply not parseable: %v", err)
		return nil
	}

	var matches []refscan.RawMatch
	for _, sg := range suggestions {
		if sg.Phrase == "" || sg.Reference == "" {
			continue
		}
		idx := strings.Index(text, sg.Phrase)
		if idx < 0 {
			continue
		}
		matches = append(matches, refscan.RawMatch{
			Start: idx,
			End:   idx + len(sg.Phrase),
			Text:  sg.Reference,
		})
	}
	return matches
}
