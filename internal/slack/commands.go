package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdToday    CommandType = "today"
	CmdDate     CommandType = "date"
	CmdWeek     CommandType = "week"
	CmdGenerate CommandType = "generate"
	CmdSwap     CommandType = "swap"
	CmdSwaps    CommandType = "swaps"
	CmdApprove  CommandType = "approve"
	CmdReject   CommandType = "reject"
	CmdReport   CommandType = "report"
	CmdLeave    CommandType = "leave"
	CmdAnalysts CommandType = "analysts"
	CmdHelp     CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw:  text,
		Args: parts[1:],
	}

	switch parts[0] {
	case "today":
		cmd.Type = CmdToday
	case "date":
		cmd.Type = CmdDate
	case "week":
		cmd.Type = CmdWeek
	case "generate", "gen":
		cmd.Type = CmdGenerate
	case "swap":
		cmd.Type = CmdSwap
	case "swaps":
		cmd.Type = CmdSwaps
	case "approve":
		cmd.Type = CmdApprove
	case "reject":
		cmd.Type = CmdReject
	case "report":
		cmd.Type = CmdReport
	case "leave":
		cmd.Type = CmdLeave
	case "analysts", "team":
		cmd.Type = CmdAnalysts
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available commands:*

*Schedule:*
• ` + "`/soc today`" + ` - Show today's monitoring assignments
• ` + "`/soc date YYYY-MM-DD`" + ` - Show assignments for a date
• ` + "`/soc week`" + ` - Show assignments for the next 7 days
• ` + "`/soc generate [days]`" + ` - Generate assignments ahead (default 30 days)

*Swaps:*
• ` + "`/soc swap <assignment_id> @analyst [reason]`" + ` - Request a shift swap
• ` + "`/soc swaps`" + ` - List pending swap requests
• ` + "`/soc approve <request_id>`" + ` - Approve a swap request
• ` + "`/soc reject <request_id>`" + ` - Reject a swap request

*Leave:*
• ` + "`/soc leave YYYY-MM-DD YYYY-MM-DD [type] [reason]`" + ` - Request leave

*Reports:*
• ` + "`/soc report <assignment_id> <notes>`" + ` - Submit a shift report

*Team:*
• ` + "`/soc analysts`" + ` - List active analysts and their rotation slots`
}
