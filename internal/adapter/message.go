package adapter

import (
	"errors"
	"fmt"
)

// RoleUser is the role assigned to a bare string prompt.
const RoleUser = "user"

// Message is a role-tagged unit of conversational content.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ErrInvalidInput is returned by Normalize for anything that is neither a
// string nor an ordered list of role/content pairs.
var ErrInvalidInput = errors.New("invalid input format")

// Normalize turns a prompt into an ordered message list.
//
// Accepted shapes: string, []Message, []map[string]string and []any whose
// elements are maps with string "role"/"content" values (the shape produced by
// encoding/json). A missing role defaults to "user" and missing content to "".
func Normalize(input any) ([]Message, error) {
	switch v := input.(type) {
	case string:
		return []Message{{Role: RoleUser, Content: v}}, nil
	case []Message:
		out := make([]Message, len(v))
		copy(out, v)
		return out, nil
	case []map[string]string:
		out := make([]Message, 0, len(v))
		for _, m := range v {
			out = append(out, messageFromStrings(m["role"], m["content"]))
		}
		return out, nil
	case []map[string]any:
		out := make([]Message, 0, len(v))
		for i, m := range v {
			msg, err := messageFromMap(m)
			if err != nil {
				return nil, fmt.Errorf("message %d: %w", i, err)
			}
			out = append(out, msg)
		}
		return out, nil
	case []any:
		out := make([]Message, 0, len(v))
		for i, el := range v {
			m, ok := el.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("message %d: %w", i, ErrInvalidInput)
			}
			msg, err := messageFromMap(m)
			if err != nil {
				return nil, fmt.Errorf("message %d: %w", i, err)
			}
			out = append(out, msg)
		}
		return out, nil
	default:
		return nil, ErrInvalidInput
	}
}

func messageFromMap(m map[string]any) (Message, error) {
	role, err := optionalString(m, "role")
	if err != nil {
		return Message{}, err
	}
	content, err := optionalString(m, "content")
	if err != nil {
		return Message{}, err
	}
	return messageFromStrings(role, content), nil
}

func optionalString(m map[string]any, key string) (string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s is %T: %w", key, v, ErrInvalidInput)
	}
	return s, nil
}

func messageFromStrings(role, content string) Message {
	if role == "" {
		role = RoleUser
	}
	return Message{Role: role, Content: content}
}
