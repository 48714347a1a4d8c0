package assistant

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"ubizy/internal/constants"
	"ubizy/internal/logger"
	"ubizy/internal/planner"
	"ubizy/internal/utils"
)

// Sender identifies which side of the conversation a message belongs to.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is a single chat entry. Bot messages may carry a suggestion
// the user can confirm.
type Message struct {
	ID         string
	Content    string
	Sender     Sender
	Timestamp  time.Time
	Suggestion Suggestion // nil for plain replies
}

// Suggestion is the confirmable subset of extraction results.
type Suggestion interface {
	Result
	TypeName() string
}

func (TaskSuggestion) TypeName() string  { return "task" }
func (EventSuggestion) TypeName() string { return "event" }
func (HabitSuggestion) TypeName() string { return "habit" }

// Assistant turns user text into replies and confirmable suggestions.
// Nothing is created until the user explicitly confirms a suggestion.
type Assistant struct {
	planner *planner.Service
	now     func() time.Time
	delay   time.Duration
}

func New(p *planner.Service) *Assistant {
	return &Assistant{
		planner: p,
		now:     time.Now,
		delay:   time.Duration(constants.AssistantThinkingMs) * time.Millisecond,
	}
}

// NewWithClock injects the clock and disables the thinking delay, for tests.
func NewWithClock(p *planner.Service, now func() time.Time) *Assistant {
	return &Assistant{planner: p, now: now}
}

// UserMessage wraps raw input as a user chat entry.
func (a *Assistant) UserMessage(content string) Message {
	return Message{
		ID:        uuid.New().String(),
		Content:   content,
		Sender:    SenderUser,
		Timestamp: a.now(),
	}
}

// Respond processes a user message and produces the bot's reply. The
// artificial delay simulates thinking; it carries no cancellation or
// retry semantics.
func (a *Assistant) Respond(message string) Message {
	if a.delay > 0 {
		time.Sleep(a.delay)
	}

	result := Extract(message, a.now())

	switch r := result.(type) {
	case TaskSuggestion:
		return a.botMessage(
			fmt.Sprintf("I can help you create a task %q. Would you like me to add it?", r.Title), r)
	case EventSuggestion:
		return a.botMessage(
			fmt.Sprintf("I can help you create an event %q. Would you like me to add it?", r.Title), r)
	case HabitSuggestion:
		return a.botMessage(
			fmt.Sprintf("I can help you create a %s habit %q. Would you like me to add it?", r.Frequency, r.Title), r)
	case Reply:
		return a.botMessage(r.Text, nil)
	default:
		return a.botMessage(ErrorMessage, nil)
	}
}

// Confirm turns an accepted suggestion into a stored item. Failures are
// reported as an apologetic chat message; they never escape the assistant.
func (a *Assistant) Confirm(s Suggestion) Message {
	if s == nil {
		return a.botMessage(CreateErrorMessage, nil)
	}

	if err := a.create(s); err != nil {
		logger.Error("Failed to create suggested item", "type", s.TypeName(), "error", err)
		return a.botMessage(CreateErrorMessage, nil)
	}

	return a.botMessage(
		fmt.Sprintf("I've created the %s %q for you.", s.TypeName(), suggestionTitle(s)), nil)
}

func (a *Assistant) create(s Suggestion) error {
	loc := a.now().Location()

	switch sg := s.(type) {
	case TaskSuggestion:
		due, err := utils.CombineDateAndTime(sg.Date, sg.Time, loc)
		if err != nil {
			return err
		}
		_, err = a.planner.AddTask(planner.TaskDraft{
			Title:       sg.Title,
			Description: sg.Description,
			DueDate:     due,
			IsStatic:    false,
			Category:    sg.Category,
		})
		return err
	case EventSuggestion:
		start, err := utils.CombineDateAndTime(sg.Date, sg.Time, loc)
		if err != nil {
			return err
		}
		end, err := utils.CombineDateAndTime(sg.EndDate, sg.EndTime, loc)
		if err != nil {
			return err
		}
		_, err = a.planner.AddEvent(planner.EventDraft{
			Title:       sg.Title,
			Description: sg.Description,
			StartDate:   start,
			EndDate:     end,
			IsStatic:    false,
			Category:    sg.Category,
		})
		return err
	case HabitSuggestion:
		_, err := a.planner.AddHabit(planner.HabitDraft{
			Title:       sg.Title,
			Description: sg.Description,
			Frequency:   sg.Frequency,
			Category:    sg.Category,
		})
		return err
	default:
		return fmt.Errorf("unknown suggestion type %T", s)
	}
}

func suggestionTitle(s Suggestion) string {
	switch sg := s.(type) {
	case TaskSuggestion:
		return sg.Title
	case EventSuggestion:
		return sg.Title
	case HabitSuggestion:
		return sg.Title
	default:
		return ""
	}
}

func (a *Assistant) botMessage(content string, s Suggestion) Message {
	return Message{
		ID:         uuid.New().String(),
		Content:    content,
		Sender:     SenderBot,
		Timestamp:  a.now(),
		Suggestion: s,
	}
}
