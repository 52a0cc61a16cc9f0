package engine

import (
	"fmt"
	"strings"

	"leny-backend/models"
)

// Management entries carrying these words are provider-only actions and are
// hidden from the patient rendering.
var providerOnlyWords = []string{"refer", "consult", "specialist"}

// formatForAudience renders the structured clinical object as prose for the
// given audience. Rendering is pure: identical input yields identical output,
// and empty fields render nothing.
func formatForAudience(data models.ClinicalData, userType models.UserType, specialty models.Specialty) string {
	if userType == models.UserProvider {
		return formatProvider(data, specialty)
	}
	return formatPatient(data)
}

func formatProvider(data models.ClinicalData, specialty models.Specialty) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Clinical Assessment - %s**\n\n", specialty.DisplayName())

	if len(data.MostLikelyDiagnoses) > 0 {
		b.WriteString("**Most Likely Diagnoses:**\n")
		for _, dx := range data.MostLikelyDiagnoses {
			fmt.Fprintf(&b, "- **%s**: %s\n", dx.Name, dx.Description)
		}
	}

	if len(data.RedFlagDiagnoses) > 0 {
		b.WriteString("\n**Must Not Miss:**\n")
		for _, dx := range data.RedFlagDiagnoses {
			fmt.Fprintf(&b, "- **%s**: %s\n", dx.Name, dx.Description)
		}
	}

	if len(data.KeyHistoryQuestions) > 0 {
		b.WriteString("\n**Key History:**\n")
		for _, q := range data.KeyHistoryQuestions {
			fmt.Fprintf(&b, "- %s\n", q)
		}
	}

	if len(data.PhysicalExamFocus) > 0 {
		b.WriteString("\n**Physical Exam Focus:**\n")
		for _, e := range data.PhysicalExamFocus {
			fmt.Fprintf(&b, "- %s\n", e)
		}
	}

	if len(data.DiagnosticStrategy) > 0 {
		b.WriteString("\n**Diagnostic Approach:**\n")
		for _, s := range data.DiagnosticStrategy {
			fmt.Fprintf(&b, "- If %s → %s\n", s.Condition, s.RecommendedTest)
		}
	}

	if len(data.InitialManagement) > 0 {
		b.WriteString("\n**Initial Management:**\n")
		for _, m := range data.InitialManagement {
			fmt.Fprintf(&b, "- %s\n", m)
		}
	}

	return b.String()
}

// formatPatient renders an actionable subset with simplified phrasing.
// Diagnostic strategy and exam focus stay provider-side, history questions
// are truncated to three, and referral-language management steps are hidden.
func formatPatient(data models.ClinicalData) string {
	var b strings.Builder
	b.WriteString("Based on your symptoms, here's what we're considering:\n\n")

	if len(data.MostLikelyDiagnoses) > 0 {
		b.WriteString("**Most Likely Causes:**\n")
		for _, dx := range data.MostLikelyDiagnoses {
			fmt.Fprintf(&b, "- **%s**: %s\n", dx.Name, simplify(dx.Description))
		}
	}

	if len(data.RedFlagDiagnoses) > 0 {
		b.WriteString("\n**When to Seek Immediate Care:**\n")
		b.WriteString("You should get medical attention right away if you experience:\n")
		for _, dx := range data.RedFlagDiagnoses {
			fmt.Fprintf(&b, "- Signs of %s: %s\n", strings.ToLower(dx.Name), simplify(dx.Description))
		}
	}

	if len(data.KeyHistoryQuestions) > 0 {
		b.WriteString("\n**What to Expect:**\n")
		b.WriteString("Your healthcare provider may ask about:\n")
		for i, q := range data.KeyHistoryQuestions {
			if i == 3 {
				break
			}
			fmt.Fprintf(&b, "- %s\n", q)
		}
	}

	if len(data.InitialManagement) > 0 {
		var kept []string
		for _, m := range data.InitialManagement {
			if !containsAny(strings.ToLower(m), providerOnlyWords) {
				kept = append(kept, m)
			}
		}
		if len(kept) > 0 {
			b.WriteString("\n**What You Can Do:**\n")
			for _, m := range kept {
				fmt.Fprintf(&b, "- %s\n", m)
			}
		}
	}

	return b.String()
}

// simplify swaps clinical phrasing for plain language in patient renderings.
func simplify(s string) string {
	return strings.ReplaceAll(s, "typically presents with", "usually causes")
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
