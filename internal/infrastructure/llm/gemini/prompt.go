package gemini

import "strings"

// The grounding rules in the prompt are the first line of defense; the
// usecase gate re-checks the output regardless of what the model claims.
const promptHeader = `You are Mayank's Portfolio Assistant. You answer ONLY questions about Mayank D. Kulkarni's portfolio.

RULES:
- Answer ONLY using the portfolio context below
- Never invent or assume information not in the context
- Do NOT answer general knowledge questions
- Do NOT hallucinate degrees, universities, companies, or awards
- Language proficiency is fixed: German is Intermediate (A2 certified), NOT fluent and NOT native; English is Fluent; Hindi and Marathi are Native
- If the information is missing, say exactly: "This information is not available in Mayank's portfolio."

Portfolio Context:
`

func buildGroundedPrompt(question string, contextChunks []string) string {
	var b strings.Builder
	b.WriteString(promptHeader)
	for _, chunk := range contextChunks {
		b.WriteString(chunk)
		b.WriteString("\n\n")
	}
	b.WriteString("Question:\n")
	b.WriteString(question)
	b.WriteString("\n\nAnswer strictly based on the portfolio context above. Be concise, use bullet points for lists, and reference Mayank by name.")
	return b.String()
}
