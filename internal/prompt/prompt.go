// Package prompt turns a chat request into the message sequence sent to the
// completion provider: a persona system instruction, the supplied context
// turns in order, then the new user message.
package prompt

import (
	"fmt"
	"strings"

	"github.com/Pkra99/persona-ai/internal/chat"
	"github.com/Pkra99/persona-ai/internal/llm"
	"github.com/Pkra99/persona-ai/internal/persona"
)

// FallbackLabel is used when neither a preset nor a persona name is given.
const FallbackLabel = "Famous Public Figure"

const instructionTemplate = `You are an AI writing assistant that answers in the stylistic voice of "%s".
Do NOT claim to be the real person.
Keep responses concise, vivid, and helpful.
If the user asks for facts, prefer verifiable, neutral phrasing and note uncertainty when relevant.
If asked for harmful/illegal content or private details, refuse and suggest safer alternatives.
Match these tone guides: %s
Keep jargon accessible; explain specialized terms if they appear.
Maintain continuity with the recent chat context.`

// SystemPromptFor composes the system instruction for a persona. A supplied
// personaName wins over the preset's label for the display name, but a found
// preset's style directive is always used. An unknown personaID is not an
// error: it degrades to a generated style sentence for the display name.
func SystemPromptFor(registry *persona.Registry, personaID, personaName string) string {
	preset, found := persona.Persona{}, false
	if personaID != "" {
		preset, found = registry.Lookup(personaID)
	}

	displayName := strings.TrimSpace(personaName)
	if displayName == "" {
		if found {
			displayName = preset.Label
		} else {
			displayName = FallbackLabel
		}
	}

	style := preset.Style
	if !found {
		style = fmt.Sprintf("Adopt the tone, cadence, and stylistic quirks commonly associated with %s.", displayName)
	}

	return fmt.Sprintf(instructionTemplate, displayName, style)
}

// BuildMessages assembles the provider payload: system instruction first,
// context turns in original order, the user message last. The context length
// cap is the validator's job; no truncation happens here.
func BuildMessages(systemInstruction string, context []chat.Turn, userMessage string) []llm.Message {
	messages := make([]llm.Message, 0, len(context)+2)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: systemInstruction})
	for _, turn := range context {
		messages = append(messages, llm.Message{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: userMessage})
	return messages
}
