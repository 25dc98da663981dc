package evaluation

import (
	"fmt"
	"strings"

	"github.com/agentic-research/boardroom/internal/modules/agents"
)

// The recommendation and commentary tables are kept as explicit ordered
// rules so the whole decision surface can be audited and tested in one
// place. First matching rule wins for recommendations; commentary groups
// are cumulative with first-match-wins inside each group.

type ruleKey struct {
	status       Status
	risk         agents.Bucket // "" matches any bucket
	ambition     agents.Bucket
	friendliness agents.Bucket
}

type textRule struct {
	key      ruleKey
	template string
}

func (k ruleKey) matches(status Status, p agents.Personality) bool {
	if k.status != status {
		return false
	}
	if k.risk != "" && k.risk != p.RiskBucket() {
		return false
	}
	if k.ambition != "" && k.ambition != p.AmbitionBucket() {
		return false
	}
	if k.friendliness != "" && k.friendliness != p.FriendlinessBucket() {
		return false
	}
	return true
}

// recommendationRules: first match wins. Every status has a catch-all so the
// lookup is total.
var recommendationRules = []textRule{
	{ruleKey{status: StatusBelowMin, risk: agents.BucketHigh}, "%s: Increase investment aggressively to reach target"},
	{ruleKey{status: StatusBelowMin}, "%s: Gradual increase recommended to reach target"},
	{ruleKey{status: StatusAboveMax}, "%s: Reduce spending and optimize efficiency"},
	{ruleKey{status: StatusOffTarget, risk: agents.BucketHigh}, "%s: Rebalance aggressively toward the target"},
	{ruleKey{status: StatusOffTarget}, "%s: Adjust plans gradually toward the target"},
	{ruleKey{status: StatusOnTarget, ambition: agents.BucketHigh}, "%s: Maintain strategy but explore optimization opportunities"},
	{ruleKey{status: StatusOnTarget}, "%s: Maintain current strategy"},
}

// commentaryRules: groups are cumulative, in table order; within a group the
// first match wins. The above-max reactions are one group because a profile
// never voices both the sustainability worry and the push for higher targets.
var commentaryRules = [][]textRule{
	{
		{ruleKey{status: StatusBelowMin, risk: agents.BucketHigh}, " (willing to take aggressive action)"},
		{ruleKey{status: StatusBelowMin, risk: agents.BucketLow}, " (cautious, prefers gradual improvements)"},
	},
	{
		{ruleKey{status: StatusBelowMin, ambition: agents.BucketHigh}, " (pushing hard for improvement)"},
	},
	{
		{ruleKey{status: StatusAboveMax, risk: agents.BucketLow}, " (concerned about sustainability)"},
		{ruleKey{status: StatusAboveMax, ambition: agents.BucketHigh}, " (wants even higher targets)"},
	},
	{
		{ruleKey{status: StatusOffTarget, risk: agents.BucketLow}, " (concerned about sustainability)"},
	},
	{
		{ruleKey{status: StatusOnTarget, friendliness: agents.BucketHigh}, " (satisfied with team performance)"},
	},
}

// recommend selects the recommendation text for a result.
func recommend(r Result, profile agents.Profile) string {
	for _, rule := range recommendationRules {
		if rule.key.matches(r.Status, profile.Personality) {
			return fmt.Sprintf(rule.template, profile.Name)
		}
	}
	return fmt.Sprintf("%s: Maintain current strategy", profile.Name)
}

// commentary concatenates one flavor fragment per matching group.
func commentary(r Result, p agents.Personality) string {
	var b strings.Builder
	for _, group := range commentaryRules {
		for _, rule := range group {
			if rule.key.matches(r.Status, p) {
				b.WriteString(rule.template)
				break
			}
		}
	}
	return b.String()
}
