package narrative

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/nexusfo/nexus"
	"google.golang.org/genai"
)

// Assistant is the interactive wealth-advisor chat. It reuses the same
// Gemini client as the report pipeline, seeded with the current snapshot as
// grounding context.
type Assistant struct {
	w    io.Writer
	r    *bufio.Reader
	chat *genai.Chat
}

// NewAssistant creates an Assistant reading user turns from r and writing
// replies to w.
func NewAssistant(w io.Writer, r io.Reader) *Assistant {
	return &Assistant{w: w, r: bufio.NewReader(r)}
}

// Start creates the chat session, priming it with the portfolio state.
func (a *Assistant) Start(ctx context.Context, client *Client, snap nexus.Snapshot) error {
	contextData, err := json.MarshalIndent(NewContext(snap, time.Now()), "", "  ")
	if err != nil {
		return fmt.Errorf("could not serialize assistant context: %w", err)
	}

	system := fmt.Sprintf(`You are Nexus, an elite AI Wealth Advisor for a high-net-worth Family Office.
Your goal is to provide strategic, data-driven advice based on the user's real-time portfolio data.

CONTEXT - CURRENT PORTFOLIO STATE:
%s

RULES:
1. BE ACCURATE: Use the provided JSON data as the absolute source of truth. Do not invent numbers.
2. BE PROFESSIONAL: Tone should be sophisticated, reassuring, and objective (Private Banker style).
3. BE CONCISE: Executives are busy. Get to the point. Use bullet points for lists.
4. CURRENCY: Always use Euros and format millions as "M €" (e.g., 138.4M €).
5. DO NOT mention you are an AI model unless asked. You are "Nexus" or "The System".

If the user asks about something not in the data, politely say you don't have that information yet.`, contextData)

	chat, err := client.genai.Chats.Create(ctx, model, &genai.GenerateContentConfig{
		MaxOutputTokens:   2000,
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
	}, nil)
	if err != nil {
		return fmt.Errorf("could not create assistant chat: %w", err)
	}
	a.chat = chat
	return nil
}

const prompt = "nexus> "

// Run starts the interactive REPL session. Type 'bye' (or Ctrl+D) to exit.
// Any prompts given up front are consumed before reading from the user.
func (a *Assistant) Run(ctx context.Context, client *Client, snap nexus.Snapshot, prompts ...string) error {
	if a.chat == nil {
		if err := a.Start(ctx, client, snap); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to the Nexus wealth assistant. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		resp, err := a.chat.Send(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
			fmt.Fprintln(a.w, "[sin respuesta]")
			continue
		}
		fmt.Fprintln(a.w, resp.Candidates[0].Content.Parts[0].Text)
	}
}
