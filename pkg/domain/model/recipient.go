package model

import (
	"regexp"

	"github.com/gameops-lab/rconhub/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Target is the heterogeneous wire shape a dashboard view hands over when
// the operator selects players. Identity may be carried directly or nested
// under a profile sub-object.
type Target struct {
	Name    string         `json:"name,omitempty"`
	ID      string         `json:"player_id,omitempty"`
	Profile *TargetProfile `json:"profile,omitempty"`
}

// TargetProfile is the nested profile variant of a target
type TargetProfile struct {
	ID    string        `json:"player_id,omitempty"`
	Names []TargetAlias `json:"names,omitempty"`
}

// TargetAlias is one known name of a player
type TargetAlias struct {
	Name string `json:"name"`
}

// ResolvedName returns the target's display name: the explicit name field,
// else the first profile alias. Empty means unresolvable.
func (t Target) ResolvedName() string {
	if t.Name != "" {
		return t.Name
	}
	if t.Profile != nil && len(t.Profile.Names) > 0 {
		return t.Profile.Names[0].Name
	}
	return ""
}

// ResolvedID returns the target's stable identifier: the explicit id field,
// else the profile id. Empty means unresolvable.
func (t Target) ResolvedID() string {
	if t.ID != "" {
		return t.ID
	}
	if t.Profile != nil {
		return t.Profile.ID
	}
	return ""
}

// Recipient is one addressable target of a batch action
type Recipient struct {
	ID           types.RecipientID
	Name         string
	DisplayLabel string
	// Raw is the original target, passed through untouched for payload building
	Raw Target
}

var clanTagPattern = regexp.MustCompile(`^\s*\[[^\]]*\]\s*`)

const (
	labelTruncateOver = 6
	labelKeepRunes    = 8
	labelEllipsis     = "..."
)

// DeriveDisplayLabel produces the short label shown next to per-recipient
// status markers. One leading clan tag group is stripped, then names longer
// than 6 runes are cut to their first 8 runes with an ellipsis appended.
func DeriveDisplayLabel(name string) string {
	stripped := clanTagPattern.ReplaceAllString(name, "")
	runes := []rune(stripped)
	if len(runes) <= labelTruncateOver {
		return stripped
	}
	if len(runes) > labelKeepRunes {
		runes = runes[:labelKeepRunes]
	}
	return string(runes) + labelEllipsis
}

// NormalizeTarget converts one raw target into a recipient. Targets without
// a resolvable identifier or name are rejected.
func NormalizeTarget(t Target) (Recipient, error) {
	id := t.ResolvedID()
	if id == "" {
		return Recipient{}, goerr.New("target has no resolvable player id", goerr.V("target", t))
	}
	name := t.ResolvedName()
	if name == "" {
		return Recipient{}, goerr.New("target has no resolvable name", goerr.V("player_id", id))
	}

	return Recipient{
		ID:           types.RecipientID(id),
		Name:         name,
		DisplayLabel: DeriveDisplayLabel(name),
		Raw:          t,
	}, nil
}

// NormalizeTargets converts a selection of raw targets into recipients.
// Duplicate player ids collapse onto the first occurrence so recipient ids
// stay unique within a batch.
func NormalizeTargets(targets []Target) ([]Recipient, error) {
	recipients := make([]Recipient, 0, len(targets))
	seen := make(map[types.RecipientID]struct{}, len(targets))

	for _, t := range targets {
		r, err := NormalizeTarget(t)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[r.ID]; ok {
			continue
		}
		seen[r.ID] = struct{}{}
		recipients = append(recipients, r)
	}

	return recipients, nil
}
