package assistant

import "strings"

// Response categories surfaced to the UI alongside the assistant text.
const (
	CategoryAction = "action"
	CategoryPolicy = "policy"
	CategoryQuery  = "query"
	CategoryError  = "error"
)

// policyKeywords routes a message to the policy path. Matching is plain
// case-insensitive substring containment, in both languages; partial-word
// hits are accepted behavior, kept for compatibility with the mobile client.
var policyKeywords = []string{
	"policy",
	"policies",
	"vacation policy",
	"regulation",
	"entitlement",
	"سياسة",
	"سياسات",
	"إجازة",
	"لائحة",
}

// Categorize uses its own, smaller keyword sets, independent of
// policyKeywords.
var (
	actionKeywords      = []string{"request", "submit", "apply"}
	policyLabelKeywords = []string{"policy", "rule", "procedure"}
)

const arabicLetters = "ءآأؤإئابةتثجحخدذرزسشصضطظعغفقكلمنهوىي"

func IsPolicyQuestion(message string) bool {
	lowered := strings.ToLower(message)
	for _, keyword := range policyKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

func Categorize(message string) string {
	lowered := strings.ToLower(message)

	for _, keyword := range actionKeywords {
		if strings.Contains(lowered, keyword) {
			return CategoryAction
		}
	}
	for _, keyword := range policyLabelKeywords {
		if strings.Contains(lowered, keyword) {
			return CategoryPolicy
		}
	}
	return CategoryQuery
}

// ContainsArabic reports whether the message holds any character from the
// Arabic letter set; the orchestrator uses it to pick the response language.
func ContainsArabic(message string) bool {
	for _, r := range message {
		if strings.ContainsRune(arabicLetters, r) {
			return true
		}
	}
	return false
}
