package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-ps"

	"ubizy/internal/constants"
	"ubizy/internal/keyring"
)

// InitCmd initializes the configured storage backend.
type InitCmd struct {
	Force bool `help:"Reinitialize even if storage already exists."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		if !c.Force {
			return err
		}
	}
	fmt.Println("Storage initialized.")
	return nil
}

// DoctorCmd runs health checks and diagnostics.
type DoctorCmd struct{}

func (c *DoctorCmd) Run(ctx *Context) error {
	ok := true

	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("✗ storage: %v\n", err)
		ok = false
	} else {
		fmt.Println("✓ storage: reachable")
	}

	if keyring.IsAvailable() {
		fmt.Println("✓ keyring: available")
		if _, err := keyring.GetAssistantToken(); err == nil {
			fmt.Println("✓ assistant token: stored")
		} else {
			fmt.Println("- assistant token: not set (chat 'ask' will be unavailable)")
		}
	} else {
		fmt.Println("✗ keyring: unavailable")
		ok = false
	}

	// Each session owns its own store; a second running instance on the
	// same database is worth flagging.
	if n, err := runningInstances(); err == nil && n > 1 {
		fmt.Printf("! %d %s processes running; state is session-scoped and not shared\n", n, constants.AppName)
	}

	if !ok {
		return fmt.Errorf("one or more checks failed")
	}
	fmt.Println("All checks passed.")
	return nil
}

func runningInstances() (int, error) {
	procs, err := ps.Processes()
	if err != nil {
		return 0, err
	}
	self := filepath.Base(os.Args[0])
	count := 0
	for _, p := range procs {
		if strings.EqualFold(p.Executable(), self) {
			count++
		}
	}
	return count, nil
}

// TokenCmd manages the assistant API token in the OS keyring.
type TokenCmd struct {
	Set    TokenSetCmd    `cmd:"" help:"Store the assistant API token."`
	Delete TokenDeleteCmd `cmd:"" help:"Remove the stored assistant API token."`
	Status TokenStatusCmd `cmd:"" help:"Show whether a token is stored." default:"1"`
}

type TokenSetCmd struct {
	Token string `arg:"" help:"API token for the assistant service."`
}

func (c *TokenSetCmd) Run(ctx *Context) error {
	if err := keyring.SetAssistantToken(c.Token); err != nil {
		return err
	}
	fmt.Println("Token stored in OS keyring.")
	return nil
}

type TokenDeleteCmd struct{}

func (c *TokenDeleteCmd) Run(ctx *Context) error {
	if err := keyring.DeleteAssistantToken(); err != nil {
		return err
	}
	fmt.Println("Token removed from OS keyring.")
	return nil
}

type TokenStatusCmd struct{}

func (c *TokenStatusCmd) Run(ctx *Context) error {
	if _, err := keyring.GetAssistantToken(); err != nil {
		fmt.Println("No assistant token stored.")
		return nil
	}
	fmt.Println("Assistant token is stored.")
	return nil
}
