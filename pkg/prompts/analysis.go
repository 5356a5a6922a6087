package prompts

import "github.com/helmcode/news-analyzer/pkg/llm"

// SystemPrompt tells the model what to judge and the JSON shape to answer with.
const SystemPrompt = `You are a fake news detection expert. Analyze the given text and return a JSON response with the following structure: { credibilityScore: number (0-100), analysis: string (main findings), redFlags: string[] (list of concerning elements), recommendations: string[] (fact-checking steps) }`

const userPrefix = "Analyze this news text for potential misinformation: "

// BuildUserPrompt embeds text, unmodified, in the user turn.
func BuildUserPrompt(text string) string {
	return userPrefix + text
}

// BuildMessages returns the two-turn conversation sent for one analysis.
func BuildMessages(text string) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: SystemPrompt},
		{Role: llm.RoleUser, Content: BuildUserPrompt(text)},
	}
}
