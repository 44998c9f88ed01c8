package chatbot

const systemPrompt = `You are a nutrition assistant for NutriBalance, a food tracking app. Provide short, concise, and actionable nutrition advice.

Rules:
- Keep answers brief (2-4 sentences max)
- Be direct and specific
- Never use emojis
- Use bullet points only when listing multiple items
- Focus on practical advice
- Be encouraging but professional`

func buildPrompt(userContext, message string) string {
	if userContext != "" {
		return systemPrompt + "\n\n" + userContext + "\n\nUser Question: " + message + "\n\nResponse:"
	}
	return systemPrompt + "\n\nUser Question: " + message + "\n\nResponse:"
}
