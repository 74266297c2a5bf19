package kag

import "strings"

// SystemPrompt describes the assistant's role and citation obligation.
// It is passed to the generation collaborator unmodified on every call.
const SystemPrompt = "You are a Knowledge-Augmented Generation (KAG) assistant for an enterprise. " +
	"Your role is to provide accurate, well-sourced answers about company projects, " +
	"employees, outcomes, and reports based on the knowledge graph context provided. " +
	"Always maintain factual accuracy and provide citations to source documents when possible."

// BuildPrompt composes the grounded prompt from the fixed instruction
// template, the formatted context block, and the literal user query.
func BuildPrompt(userQuery, formattedContext string) string {
	var b strings.Builder

	b.WriteString("You are an AI assistant with access to a company's knowledge graph. ")
	b.WriteString("Please answer the user's question based on the provided knowledge graph context.\n\n")

	b.WriteString("IMPORTANT INSTRUCTIONS:\n")
	b.WriteString("1. Base your answer ONLY on the provided knowledge graph context\n")
	b.WriteString("2. If the context doesn't contain sufficient information, state this clearly\n")
	b.WriteString("3. Include specific names, dates, and metrics from the context\n")
	b.WriteString("4. Reference specific reports and documents mentioned in the context\n")
	b.WriteString("5. Maintain a professional, informative tone\n\n")

	b.WriteString("KNOWLEDGE GRAPH CONTEXT:\n")
	b.WriteString(formattedContext)
	b.WriteString("\n")

	b.WriteString("USER QUERY: ")
	b.WriteString(userQuery)
	b.WriteString("\n\n")

	b.WriteString("Please provide a comprehensive answer based on the above context. ")
	b.WriteString("Include relevant details about people, projects, outcomes, and supporting documentation.")

	return b.String()
}
