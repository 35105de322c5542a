package telemetry

import "time"

// CLI

var cliCommandName string
var cliStartTime time.Time

func CLICommandStart(commandName string) {
	cliCommandName = commandName
	cliStartTime = time.Now()
}

func CLICommandEnd() {
	if cliCommandName == "" {
		return
	}
	durationMs := time.Since(cliStartTime).Milliseconds()
	send("cli:command_run", "command_name", cliCommandName, "duration_ms", durationMs)
}

// TUI

var tuiStartTime time.Time

func TUISessionStart(itemCount int) {
	tuiStartTime = time.Now()
	send("tui:session_start", "item_count", itemCount)
}

func TUISessionEnd() {
	durationMs := time.Since(tuiStartTime).Milliseconds()
	send("tui:session_end", "duration_ms", durationMs)
}

func TUIActionExecute(actionName string) {
	send("tui:action_execute", "action_name", actionName)
}

// TUIRelease records how far a drag release moved the carousel
func TUIRelease(from, to int) {
	send("tui:release", "pages", to-from)
}

// MCP

func MCPToolCall(toolName string) {
	send("mcp:tool_call", "tool_name", toolName)
}
