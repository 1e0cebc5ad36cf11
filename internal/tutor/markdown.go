package tutor

import (
	"fmt"
	"strings"
)

// RenderMarkdown formats an AnswerRecord as a markdown document with a
// fixed section order. Empty sections are omitted.
func RenderMarkdown(subject, question string, rec AnswerRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", question)
	fmt.Fprintf(&b, "*Subject: %s*\n\n", subject)

	if len(rec.KeyPoints) > 0 {
		b.WriteString("## Key Points\n\n")
		for _, p := range rec.KeyPoints {
			fmt.Fprintf(&b, "- %s\n", p)
		}
		b.WriteString("\n")
	}

	if rec.StepByStep != "" {
		b.WriteString("## Step-by-Step Explanation\n\n")
		b.WriteString(rec.StepByStep)
		b.WriteString("\n\n")
	}

	if rec.RealWorldExample != "" {
		b.WriteString("## Real-World Example\n\n")
		b.WriteString(rec.RealWorldExample)
		b.WriteString("\n\n")
	}

	if len(rec.CommonMistakes) > 0 {
		b.WriteString("## Common Mistakes to Avoid\n\n")
		for _, m := range rec.CommonMistakes {
			fmt.Fprintf(&b, "- %s\n", m)
		}
		b.WriteString("\n")
	}

	if len(rec.AdditionalTips) > 0 {
		b.WriteString("## Study Tips\n\n")
		for _, t := range rec.AdditionalTips {
			fmt.Fprintf(&b, "- %s\n", t)
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}
