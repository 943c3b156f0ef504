package policy

import (
	"strings"
	"time"

	policyDatamodel "github.com/frahmantamala/hr-assistant/internal/core/datamodel/policy"
)

const (
	CategoryLeaves       = "Leaves"
	CategoryTravel       = "Travel"
	CategoryCompensation = "Compensation"
	CategoryConduct      = "Conduct"
)

// Policy is the domain view; tags are unpacked from their comma-joined
// storage form.
type Policy struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Content     string    `json:"content"`
	ContentAr   string    `json:"content_ar,omitempty"`
	Tags        []string  `json:"tags"`
	LastUpdated time.Time `json:"last_updated"`
	CreatedAt   time.Time `json:"created_at"`
}

func (p *Policy) HasArabicContent() bool {
	return p.ContentAr != ""
}

func FromDataModel(m *policyDatamodel.Policy) *Policy {
	return &Policy{
		ID:          m.ID,
		Title:       m.Title,
		Category:    m.Category,
		Content:     m.Content,
		ContentAr:   m.ContentAr,
		Tags:        SplitTags(m.Tags),
		LastUpdated: m.LastUpdated,
		CreatedAt:   m.CreatedAt,
	}
}

func FromDataModelSlice(models []*policyDatamodel.Policy) []*Policy {
	result := make([]*Policy, len(models))
	for i, m := range models {
		result[i] = FromDataModel(m)
	}
	return result
}

func SplitTags(tags string) []string {
	if tags == "" {
		return nil
	}
	parts := strings.Split(tags, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func JoinTags(tags []string) string {
	return strings.Join(tags, ",")
}
