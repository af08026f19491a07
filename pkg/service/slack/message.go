package slack

import (
	"fmt"
	"strings"

	"github.com/gameops-lab/rconhub/pkg/domain/model"
	"github.com/gameops-lab/rconhub/pkg/domain/types"
	"github.com/slack-go/slack"
)

const (
	colorCompleted       = "#2eb67d"
	colorPartiallyFailed = "#e01e5a"
)

// maxOutcomeLines caps the per-recipient listing to keep messages readable
// for large batches
const maxOutcomeLines = 20

func settleColor(entry *model.AuditEntry) string {
	if entry.State == types.BatchStateCompleted {
		return colorCompleted
	}
	return colorPartiallyFailed
}

// buildSettleBlocks renders a settled batch as Slack Block Kit blocks:
// a header with the action and verdict, a context line with the actor,
// and one line per failed recipient.
func buildSettleBlocks(entry *model.AuditEntry) []slack.Block {
	success := 0
	var failed []model.AuditOutcome
	for _, o := range entry.Outcomes {
		if o.State == types.RecipientStateSuccess {
			success++
		} else {
			failed = append(failed, o)
		}
	}

	var verdict string
	if entry.State == types.BatchStateCompleted {
		verdict = fmt.Sprintf(":white_check_mark: `%s` completed for %d player(s)", entry.ActionName, success)
	} else {
		verdict = fmt.Sprintf(":warning: `%s` failed for %d of %d player(s)", entry.ActionName, len(failed), len(entry.Outcomes))
	}

	blocks := []slack.Block{
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, verdict, false, false),
			nil, nil,
		),
		slack.NewContextBlock("",
			slack.NewTextBlockObject(slack.MarkdownType,
				fmt.Sprintf("by *%s* at %s", entry.ActorName, entry.SettledAt.Format("2006-01-02 15:04:05 MST")),
				false, false),
		),
	}

	if len(failed) > 0 {
		var lines []string
		for i, o := range failed {
			if i >= maxOutcomeLines {
				lines = append(lines, fmt.Sprintf("... and %d more", len(failed)-maxOutcomeLines))
				break
			}
			detail := o.ErrorDetail
			if detail == "" {
				detail = "unknown error"
			}
			lines = append(lines, fmt.Sprintf("• *%s* (`%s`): %s", o.DisplayLabel, o.RecipientID, detail))
		}
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, strings.Join(lines, "\n"), false, false),
			nil, nil,
		))
	}

	if entry.TransportError != "" {
		blocks = append(blocks, slack.NewContextBlock("",
			slack.NewTextBlockObject(slack.MarkdownType,
				fmt.Sprintf(":electric_plug: transport: %s", entry.TransportError),
				false, false),
		))
	}

	return blocks
}
