package assistant

import (
	"fmt"
	"log/slog"
	"strings"

	policyDatamodel "github.com/frahmantamala/hr-assistant/internal/core/datamodel/policy"
	"github.com/frahmantamala/hr-assistant/internal/policy"
)

// KnowledgeAggregator renders the full policy corpus into the knowledge block
// embedded in policy-path prompts. Blocks follow store fetch order; the same
// store contents always produce the same text.
type KnowledgeAggregator struct {
	policies PolicyStore
	logger   *slog.Logger
}

func NewKnowledgeAggregator(policies PolicyStore, logger *slog.Logger) *KnowledgeAggregator {
	return &KnowledgeAggregator{
		policies: policies,
		logger:   logger,
	}
}

func (a *KnowledgeAggregator) Build() string {
	records, err := a.policies.FindAll(policy.DefaultFetchLimit)
	if err != nil {
		a.logger.Warn("knowledge: policy fetch failed", "error", err)
		return ""
	}

	blocks := make([]string, 0, len(records))
	for _, record := range records {
		blocks = append(blocks, renderPolicyBlock(record))
	}
	return strings.Join(blocks, "\n\n")
}

func renderPolicyBlock(p *policyDatamodel.Policy) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "=== %s (%s) ===\n", p.Title, p.Category)
	fmt.Fprintf(&sb, "ENGLISH CONTENT:\n%s\n", p.Content)
	if p.ContentAr != "" {
		fmt.Fprintf(&sb, "ARABIC CONTENT:\n%s\n", p.ContentAr)
	}
	fmt.Fprintf(&sb, "Tags: %s\n", strings.Join(policy.SplitTags(p.Tags), ", "))
	fmt.Fprintf(&sb, "Last Updated: %s", p.LastUpdated.Format("2006-01-02"))

	return sb.String()
}
