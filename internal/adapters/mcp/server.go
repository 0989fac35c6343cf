package mcp

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/scptdisplay"
	"github.com/aretw0/scptdisplay/pkg/domain"
)

// PromptResponse is the structured result of every prompt tool.
type PromptResponse struct {
	Outcome string  `json:"outcome" jsonschema_description:"confirmed, cancelled, interpreter_error or launch_failure"`
	Button  string  `json:"button,omitempty" jsonschema_description:"Label of the button the user pressed"`
	Text    *string `json:"text,omitempty" jsonschema_description:"Text typed into the dialog's field, if one was shown"`
	GaveUp  bool    `json:"gave_up,omitempty" jsonschema_description:"True when the prompt timed out without an answer"`
	Error   string  `json:"error,omitempty" jsonschema_description:"Interpreter message for failed outcomes"`
}

// Prompter shows a prompt and waits for its outcome.
type Prompter interface {
	Show(ctx context.Context, req domain.Request) (domain.Outcome, error)
}

// Server exposes the prompts as MCP tools.
type Server struct {
	prompter  Prompter
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(prompter Prompter, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Server{
		prompter:  prompter,
		logger:    logger,
		mcpServer: server.NewMCPServer("scptdisplay", strings.TrimSpace(scptdisplay.Version)),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	buttonOpts := []mcp.ToolOption{
		mcp.WithArray("buttons",
			mcp.Description("One to three button labels, in display order"),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithString("default_button", mcp.Description("Label or 1-based position of the default button")),
		mcp.WithString("cancel_button", mcp.Description("Label or 1-based position of the cancel button")),
		mcp.WithString("icon", mcp.Description("Icon to show"), mcp.Enum("none", "stop", "note", "caution")),
		mcp.WithNumber("giving_up_after", mcp.Description("Whole seconds before the prompt dismisses itself")),
	}

	notificationTool := mcp.NewTool("display_notification",
		mcp.WithDescription("Post a macOS notification banner. Does not wait for the user."),
		mcp.WithString("title", mcp.Required(), mcp.Description("Notification title")),
		mcp.WithString("message", mcp.Description("Body text")),
		mcp.WithString("subtitle", mcp.Description("Subtitle")),
		mcp.WithString("sound_name", mcp.Description("Sound from Library/Sounds, e.g. Glass")),
		mcp.WithOutputSchema[PromptResponse](),
	)
	s.mcpServer.AddTool(notificationTool, mcp.NewStructuredToolHandler(s.handleNotification))

	alertOpts := append([]mcp.ToolOption{
		mcp.WithDescription("Show a macOS alert and wait for the user to press a button."),
		mcp.WithString("message", mcp.Required(), mcp.Description("Alert text, shown emphasized")),
		mcp.WithString("explanation", mcp.Description("Smaller explanatory text below the message")),
		mcp.WithOutputSchema[PromptResponse](),
	}, buttonOpts...)
	s.mcpServer.AddTool(mcp.NewTool("display_alert", alertOpts...), mcp.NewStructuredToolHandler(s.handleAlert))

	dialogOpts := append([]mcp.ToolOption{
		mcp.WithDescription("Show a macOS dialog and wait for the user's answer. Pass default_answer to ask for text."),
		mcp.WithString("message", mcp.Required(), mcp.Description("Dialog text")),
		mcp.WithString("default_answer", mcp.Description("Initial contents of a text field; the field is only shown when this is set")),
		mcp.WithBoolean("hidden_answer", mcp.Description("Mask typed text, as for a password. Requires default_answer")),
		mcp.WithString("title", mcp.Description("Window title")),
		mcp.WithOutputSchema[PromptResponse](),
	}, buttonOpts...)
	s.mcpServer.AddTool(mcp.NewTool("display_dialog", dialogOpts...), mcp.NewStructuredToolHandler(s.handleDialog))
}

func (s *Server) handleNotification(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (PromptResponse, error) {
	req, err := decodeNotification(args)
	if err != nil {
		return PromptResponse{}, err
	}
	return s.show(ctx, req)
}

func (s *Server) handleAlert(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (PromptResponse, error) {
	req, err := decodeAlert(args)
	if err != nil {
		return PromptResponse{}, err
	}
	return s.show(ctx, req)
}

func (s *Server) handleDialog(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (PromptResponse, error) {
	req, err := decodeDialog(args)
	if err != nil {
		return PromptResponse{}, err
	}
	return s.show(ctx, req)
}

func (s *Server) show(ctx context.Context, req domain.Request) (PromptResponse, error) {
	out, err := s.prompter.Show(ctx, req)
	if err != nil {
		s.logger.Warn("MCP: Request rejected", "kind", domain.KindOf(req), "error", err)
		return PromptResponse{}, err
	}

	resp := PromptResponse{
		Outcome: string(out.Kind),
		Button:  out.Button,
		Text:    out.Text,
		GaveUp:  out.GaveUp,
	}
	if failure := out.Err(); failure != nil {
		s.logger.Error("MCP: Prompt failed", "kind", domain.KindOf(req), "outcome", out.Kind, "error", failure)
		resp.Error = failure.Error()
	}
	return resp, nil
}
