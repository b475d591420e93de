package domain

import (
	"fmt"
	"unicode/utf8"
)

// maxPromptRunes bounds the composed prompt. Schema context is cut before
// query text when the two together exceed it.
const maxPromptRunes = 30000

const promptTemplate = `Analyze the user's query and the provided table/view DDLs.

Based on your analysis, provide the following in markdown format:
1.  **Optimization Suggestions:** A list of specific, actionable recommendations to improve performance and reduce cost. Explain the reasoning behind each suggestion. If the query is already optimal, state that and explain why.
2.  **Rewritten Query:** The rewritten, optimized SQL query. If no changes are needed, return the original query.

---
**QUERY:**
` + "```sql\n%s\n```" + `

**DDL:**
` + "```sql\n%s\n```" + `
---
`

const truncationMarker = "\n/* schema context truncated */"

// BuildPrompt composes the optimization prompt from the query text and its
// schema context, keeping the result under the prompt size bound.
func BuildPrompt(query, ddl string) string {
	prompt := fmt.Sprintf(promptTemplate, query, ddl)
	if utf8.RuneCountInString(prompt) <= maxPromptRunes {
		return prompt
	}

	overhead := utf8.RuneCountInString(fmt.Sprintf(promptTemplate, query, "")) +
		utf8.RuneCountInString(truncationMarker)

	ddlBudget := maxPromptRunes - overhead
	if ddlBudget < 0 {
		ddlBudget = 0
	}

	return fmt.Sprintf(promptTemplate, query, truncateRunes(ddl, ddlBudget)+truncationMarker)
}

func truncateRunes(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	runes := 0
	for i := range s {
		if runes == maxLen {
			return s[:i]
		}

		runes++
	}

	return s
}
