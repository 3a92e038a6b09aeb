package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/slack-go/slack"
	"github.com/socops/soc-schedule/internal/domain"
	"github.com/socops/soc-schedule/internal/domain/contract"
	"github.com/socops/soc-schedule/internal/domain/entity"
	slackcmd "github.com/socops/soc-schedule/internal/slack"
)

type SlackHandler struct {
	dm            contract.DataManager
	schedule      contract.ScheduleService
	swap          contract.SwapService
	leave         contract.LeaveService
	signingSecret string
}

func New(dm contract.DataManager, schedule contract.ScheduleService, swap contract.SwapService, leave contract.LeaveService, signingSecret string) *SlackHandler {
	return &SlackHandler{
		dm:            dm,
		schedule:      schedule,
		swap:          swap,
		leave:         leave,
		signingSecret: signingSecret,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	response := h.handleCommand(r, cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdToday:
		return h.handleSchedule(domain.Today(), domain.Today())
	case slackcmd.CmdDate:
		return h.handleDate(cmd)
	case slackcmd.CmdWeek:
		return h.handleSchedule(domain.Today(), domain.Today().AddDate(0, 0, 6))
	case slackcmd.CmdGenerate:
		return h.handleGenerate(r, cmd)
	case slackcmd.CmdSwap:
		return h.handleSwap(r, cmd, slashCmd)
	case slackcmd.CmdSwaps:
		return h.handlePendingSwaps()
	case slackcmd.CmdApprove:
		return h.handleSwapResponse(r, cmd, slashCmd, true)
	case slackcmd.CmdReject:
		return h.handleSwapResponse(r, cmd, slashCmd, false)
	case slackcmd.CmdReport:
		return h.handleReport(r, cmd, slashCmd)
	case slackcmd.CmdLeave:
		return h.handleLeave(r, cmd, slashCmd)
	case slackcmd.CmdAnalysts:
		return h.handleAnalysts()
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("unrecognized command")
	}
}

func (h *SlackHandler) handleDate(cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Usage: `/soc date YYYY-MM-DD`")
	}

	date, err := time.ParseInLocation(domain.DateLayout, cmd.Args[0], time.UTC)
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", cmd.Args[0]))
	}

	return h.handleSchedule(date, date)
}

func (h *SlackHandler) handleSchedule(start, end time.Time) *slack.Msg {
	assignments, err := h.schedule.AssignmentsForRange(start, end)
	if err != nil {
		return h.createErrorResponse("failed to load schedule")
	}

	if len(assignments) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No assignments found for that period. Use `/soc generate` to fill the schedule.",
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("*Schedule %s — %s:*\n", start.Format(domain.DateLayout), end.Format(domain.DateLayout)))
	for _, a := range assignments {
		b.WriteString(formatAssignment(a))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         b.String(),
	}
}

func formatAssignment(a *entity.Assignment) string {
	extended := ""
	if a.IsExtendedWindow {
		extended = " (extended)"
	}
	return fmt.Sprintf("• #%d %s %s: *%s* — %s → %s, %.2fh%s [%s]\n",
		a.ID,
		a.Date.Format(domain.DateLayout),
		a.KindCode,
		a.AnalystName,
		a.WindowStart.Format("Mon 15:04"),
		a.WindowEnd.Format("Mon 15:04"),
		a.DurationHours,
		extended,
		a.Status,
	)
}

func (h *SlackHandler) handleGenerate(r *http.Request, cmd *slackcmd.Command) *slack.Msg {
	days := domain.DefaultGenerateDaysAhead
	if len(cmd.Args) > 0 {
		parsed, err := strconv.Atoi(cmd.Args[0])
		if err != nil || parsed < 1 {
			return h.createErrorResponse(fmt.Sprintf("invalid number of days %q", cmd.Args[0]))
		}
		days = parsed
	}

	start := domain.Today()
	created, err := h.schedule.Generate(r.Context(), start, start.AddDate(0, 0, days-1))
	if err != nil {
		return h.serviceErrorResponse(err, "failed to generate schedule")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ Generated %d assignments covering the next %d days.", created, days),
	}
}

func (h *SlackHandler) handleSwap(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) < 2 {
		return h.createErrorResponse("Usage: `/soc swap <assignment_id> @analyst [reason]`")
	}

	assignmentID, err := strconv.ParseInt(cmd.Args[0], 10, 64)
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("invalid assignment id %q", cmd.Args[0]))
	}

	target, err := h.analystFromMention(cmd.Args[1])
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	requester, err := h.analystFromSlackID(slashCmd.UserID)
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	reason := strings.Join(cmd.Args[2:], " ")

	request, err := h.swap.RequestSwap(r.Context(), assignmentID, target.ID, requester.ID, reason)
	if err != nil {
		return h.serviceErrorResponse(err, "failed to create swap request")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("🔄 Swap request `%s` created: assignment #%d → <@%s>. Waiting for approval.", request.ID, assignmentID, target.SlackUserID),
	}
}

func (h *SlackHandler) handlePendingSwaps() *slack.Msg {
	requests, err := h.swap.PendingSwaps()
	if err != nil {
		return h.createErrorResponse("failed to list swap requests")
	}

	if len(requests) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No pending swap requests.",
		}
	}

	var b strings.Builder
	b.WriteString("*Pending swap requests:*\n")
	for _, req := range requests {
		b.WriteString(fmt.Sprintf("• `%s` assignment #%d → analyst #%d (requested %s)\n",
			req.ID, req.OriginalAssignmentID, req.TargetAnalystID, req.RequestedAt.Format(domain.DateLayout)))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         b.String(),
	}
}

func (h *SlackHandler) handleSwapResponse(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand, approve bool) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Usage: `/soc approve <request_id>` or `/soc reject <request_id>`")
	}

	requestID, err := uuid.Parse(cmd.Args[0])
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("invalid request id %q", cmd.Args[0]))
	}

	responder, err := h.analystFromSlackID(slashCmd.UserID)
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	if !approve {
		if err := h.swap.RejectSwap(r.Context(), requestID, responder.ID); err != nil {
			return h.serviceErrorResponse(err, "failed to reject swap request")
		}
		return &slack.Msg{
			ResponseType: slack.ResponseTypeInChannel,
			Text:         fmt.Sprintf("🚫 Swap request `%s` rejected.", requestID),
		}
	}

	replacement, err := h.swap.ApproveSwap(r.Context(), requestID, responder.ID)
	if err != nil {
		return h.serviceErrorResponse(err, "failed to approve swap request")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text: fmt.Sprintf("✅ Swap request `%s` approved. %s now covers %s %s.",
			requestID, replacement.AnalystName, replacement.Date.Format(domain.DateLayout), replacement.KindCode),
	}
}

func (h *SlackHandler) handleReport(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) < 2 {
		return h.createErrorResponse("Usage: `/soc report <assignment_id> <notes>`")
	}

	assignmentID, err := strconv.ParseInt(cmd.Args[0], 10, 64)
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("invalid assignment id %q", cmd.Args[0]))
	}

	analyst, err := h.analystFromSlackID(slashCmd.UserID)
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	notes := strings.Join(cmd.Args[1:], " ")

	if err := h.schedule.SubmitReport(r.Context(), assignmentID, analyst.ID, notes); err != nil {
		return h.serviceErrorResponse(err, "failed to submit report")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("📋 Report submitted for assignment #%d.", assignmentID),
	}
}

func (h *SlackHandler) handleLeave(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) < 2 {
		return h.createErrorResponse("Usage: `/soc leave YYYY-MM-DD YYYY-MM-DD [type] [reason]`")
	}

	start, err := time.ParseInLocation(domain.DateLayout, cmd.Args[0], time.UTC)
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("invalid start date %q", cmd.Args[0]))
	}
	end, err := time.ParseInLocation(domain.DateLayout, cmd.Args[1], time.UTC)
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("invalid end date %q", cmd.Args[1]))
	}

	leaveType := entity.LeaveVacation
	reasonArgs := cmd.Args[2:]
	if len(cmd.Args) > 2 {
		if parsed, ok := parseLeaveType(cmd.Args[2]); ok {
			leaveType = parsed
			reasonArgs = cmd.Args[3:]
		}
	}

	analyst, err := h.analystFromSlackID(slashCmd.UserID)
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	request, err := h.leave.RequestLeave(r.Context(), analyst.ID, start, end, leaveType, strings.Join(reasonArgs, " "))
	if err != nil {
		return h.serviceErrorResponse(err, "failed to create leave request")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text: fmt.Sprintf("🏖️ Leave request `%s` created: %s → %s (%s). Waiting for approval.",
			request.ID, start.Format(domain.DateLayout), end.Format(domain.DateLayout), leaveType),
	}
}

func parseLeaveType(s string) (entity.LeaveType, bool) {
	switch strings.ToUpper(s) {
	case string(entity.LeaveVacation):
		return entity.LeaveVacation, true
	case string(entity.LeaveSick):
		return entity.LeaveSick, true
	case string(entity.LeavePersonal):
		return entity.LeavePersonal, true
	case string(entity.LeaveTraining):
		return entity.LeaveTraining, true
	case string(entity.LeaveOther):
		return entity.LeaveOther, true
	default:
		return "", false
	}
}

func (h *SlackHandler) handleAnalysts() *slack.Msg {
	analysts, err := h.dm.Analyst().GetActive()
	if err != nil {
		return h.createErrorResponse("failed to list analysts")
	}

	if len(analysts) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No active analysts registered.",
		}
	}

	var b strings.Builder
	b.WriteString("*Active analysts:*\n")
	for _, a := range analysts {
		b.WriteString(fmt.Sprintf("%d. %s (slot %d)\n", a.ID, a.DisplayName, a.SlotPosition))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         b.String(),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

// analystFromMention resolves a <@U12345> (or <@U12345|name>) mention to a
// registered analyst.
func (h *SlackHandler) analystFromMention(mention string) (*entity.Analyst, error) {
	userID := strings.TrimSpace(mention)
	userID = strings.TrimPrefix(userID, "<@")
	userID = strings.TrimSuffix(userID, ">")
	if idx := strings.Index(userID, "|"); idx >= 0 {
		userID = userID[:idx]
	}

	return h.analystFromSlackID(userID)
}

func (h *SlackHandler) analystFromSlackID(slackUserID string) (*entity.Analyst, error) {
	analyst, err := h.dm.Analyst().GetBySlackUserID(slackUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up analyst")
	}
	if analyst == nil {
		return nil, fmt.Errorf("user <@%s> is not a registered analyst", slackUserID)
	}

	return analyst, nil
}

// serviceErrorResponse surfaces domain validation, conflict and state errors
// to the user; anything else gets the generic message.
func (h *SlackHandler) serviceErrorResponse(err error, generic string) *slack.Msg {
	if domain.IsValidationError(err) || domain.IsConflictError(err) ||
		domain.IsStateError(err) || domain.IsConfigurationError(err) {
		return h.createErrorResponse(err.Error())
	}

	return h.createErrorResponse(generic)
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
