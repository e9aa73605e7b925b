package service

import (
	"strings"

	"github.com/zapagenda/zap-confirm/internal/models"
)

// ReplyAction is the closed set of actions an inbound reply can map to.
type ReplyAction string

const (
	ActionConfirm    ReplyAction = "confirm"
	ActionReschedule ReplyAction = "reschedule"
	// ActionFallback restates the 1/2 options without touching the
	// appointment: the sender typed digits that are not an option.
	ActionFallback ReplyAction = "fallback"
	// ActionIgnore means no reply at all: free text is not part of the
	// confirmation dialogue.
	ActionIgnore ReplyAction = "ignore"
)

// Classification is the outcome of classifying one reply text.
type Classification struct {
	Action       ReplyAction
	TargetStatus models.AppointmentStatus
	TemplateType string
}

// ClassifyReply maps a reply text to exactly one action. The
// classification is total: every input lands in one of the four
// branches, with surrounding whitespace ignored.
func ClassifyReply(text string) Classification {
	trimmed := strings.TrimSpace(text)

	switch trimmed {
	case "1":
		return Classification{
			Action:       ActionConfirm,
			TargetStatus: models.AppointmentStatusConfirmed,
			TemplateType: models.TemplateTypeConfirm,
		}
	case "2":
		return Classification{
			Action:       ActionReschedule,
			TargetStatus: models.AppointmentStatusRescheduleRequested,
			TemplateType: models.TemplateTypeReschedule,
		}
	}

	if isAllDigits(trimmed) {
		return Classification{Action: ActionFallback}
	}

	return Classification{Action: ActionIgnore}
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
