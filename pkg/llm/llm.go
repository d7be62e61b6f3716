package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// ChatModel is a chat-based language model.
type ChatModel interface {
	Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// DecodeJSON unmarshals a model reply into v. Models often wrap JSON in prose
// or code fences, so on failure the outermost {...} or [...] block is tried.
func DecodeJSON(reply string, v any) error {
	reply = strings.TrimSpace(reply)
	err := json.Unmarshal([]byte(reply), v)
	if err == nil {
		return nil
	}
	for _, pair := range [][2]string{{"{", "}"}, {"[", "]"}} {
		i := strings.Index(reply, pair[0])
		j := strings.LastIndex(reply, pair[1])
		if i >= 0 && j > i {
			if json.Unmarshal([]byte(reply[i:j+1]), v) == nil {
				return nil
			}
		}
	}
	return fmt.Errorf("model reply is not json: %w", err)
}
