package assistant

import "math/rand"

// WelcomeMessage opens every conversation.
const WelcomeMessage = "Hello! I'm Ubizy Assistant. I can help you manage your tasks, events, and habits. How can I assist you today?"

// ErrorMessage is the generic apology shown when anything in the chat
// flow fails; the conversation always continues.
const ErrorMessage = "I'm sorry, I encountered an error. Please try again."

// CreateErrorMessage is shown when a confirmed suggestion cannot be
// turned into an item.
const CreateErrorMessage = "I'm sorry, I couldn't create that item. Please try again."

const helpMessage = `Here are some things I can help you with:

1. Create tasks, events, or habits by typing "create [type] [title]"
2. Get productivity tips by asking for "productivity tips"
3. Ask me how to use any feature in the app
4. Get suggestions for organizing your schedule

Try asking me to create a task for you!`

var productivityTips = []string{
	"Try the Pomodoro Technique: work for 25 minutes, then take a 5-minute break. After 4 cycles, take a longer break.",
	"Plan your most important tasks for the morning when your energy levels are typically higher.",
	"Use the 2-minute rule: if a task takes less than 2 minutes, do it immediately instead of scheduling it.",
	"Group similar tasks together to minimize context switching and improve focus.",
	"Schedule buffer time between meetings and tasks to avoid feeling rushed.",
	"Try time-blocking your calendar to dedicate specific hours to specific types of work.",
	"Review your upcoming week every Sunday to prepare mentally for what's ahead.",
	"Set clear boundaries between work and personal time to avoid burnout.",
	"Break large projects into smaller, manageable tasks to make progress more visible.",
	"Consider using the Eisenhower Matrix to prioritize tasks: urgent/important, not urgent/important, urgent/not important, and not urgent/not important.",
}

var defaultResponses = []string{
	"I'm here to help you manage your tasks and time better. Try asking me to create a task, event, or habit.",
	"I can help you organize your schedule. Ask me about creating tasks or events, or request productivity tips.",
	"Need help with time management? I can create tasks and events for you, or provide productivity advice.",
	"I'm your productivity assistant. Try asking me to create a task for tomorrow, schedule an event, or start a new habit.",
	"Not sure what to ask? Try 'Give me a productivity tip' or 'Create a task for tomorrow'.",
}

func randomTip() string {
	return productivityTips[rand.Intn(len(productivityTips))]
}

func randomDefaultResponse() string {
	return defaultResponses[rand.Intn(len(defaultResponses))]
}
