package cli

import (
	"context"
	"fmt"
	"strings"

	"ubizy/internal/assistant"
	"ubizy/internal/logger"
)

// ChatCmd sends one message to the rule-based assistant. Suggestions are
// only created with --yes; otherwise they are shown for review.
type ChatCmd struct {
	Message []string `arg:"" help:"Message for the assistant."`
	Yes     bool     `short:"y" help:"Confirm a resulting suggestion immediately."`
}

func (c *ChatCmd) Run(ctx *Context) error {
	msg := strings.Join(c.Message, " ")
	reply := ctx.Assistant.Respond(msg)
	fmt.Println(reply.Content)

	if reply.Suggestion == nil {
		return nil
	}

	if !c.Yes {
		fmt.Printf("\nRe-run with --yes to create this %s.\n", reply.Suggestion.TypeName())
		return nil
	}

	confirmation := ctx.Assistant.Confirm(reply.Suggestion)
	fmt.Println(confirmation.Content)
	return nil
}

// AskCmd forwards a free-form question to the external text-generation
// service. Failures degrade to the assistant's generic apology.
type AskCmd struct {
	Message []string `arg:"" help:"Question for the general assistant."`
}

func (c *AskCmd) Run(ctx *Context) error {
	client := assistant.NewClient(ctx.Endpoint)
	history := []assistant.ChatTurn{
		{Role: "user", Content: strings.Join(c.Message, " ")},
	}

	reply, err := client.Generate(context.Background(), history)
	if err != nil {
		logger.Warn("Remote assistant call failed", "error", err)
		fmt.Println(assistant.ErrorMessage)
		return nil
	}
	fmt.Println(reply)
	return nil
}
