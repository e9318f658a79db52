package usecase

import (
	"fmt"
	"strings"

	"monastery-guide/internal/domain"
)

const bestTimeToVisit = "Spring and Autumn"

func buildAnswerPrompt(question string) string {
	return joinPrompt(
		"As a knowledgeable guide about Sikkim's Buddhist monasteries, please answer the following question:",
		question,
		"Provide accurate, educational information while being respectful of Buddhist traditions and culture.",
	)
}

func buildDescriptionPrompt(m domain.Monastery) string {
	return joinPrompt(
		fmt.Sprintf("Generate a detailed and engaging description for %s located in %s.", m.Name, m.Location),
		fmt.Sprintf("Include information about its historical significance: Founded in %d.", m.Year),
		"The description should be informative, culturally respectful, and appealing to tourists interested in Buddhist monasteries.",
	)
}

func buildCulturalPrompt(m domain.Monastery) string {
	return joinPrompt(
		fmt.Sprintf("Provide cultural insights about %s and its traditions: %s.", m.Name, strings.Join(m.Festivals, ", ")),
		"Focus on unique rituals, festivals, and spiritual practices that visitors might find interesting.",
		"Keep the information accurate, respectful, and educational.",
	)
}

func buildTravelPrompt(m domain.Monastery) string {
	return joinPrompt(
		fmt.Sprintf("Provide practical travel tips for visitors planning to visit %s in %s.", m.Name, m.Location),
		fmt.Sprintf("The best time to visit is %s.", bestTimeToVisit),
		"Include information about local customs, appropriate attire, photography rules, and etiquette for monastery visits.",
	)
}

func buildTopicPrompt(m domain.Monastery, topic domain.TopicKind) (string, bool) {
	switch topic {
	case domain.TopicDescription:
		return buildDescriptionPrompt(m), true
	case domain.TopicCultural:
		return buildCulturalPrompt(m), true
	case domain.TopicTravel:
		return buildTravelPrompt(m), true
	default:
		return "", false
	}
}

func joinPrompt(lines ...string) string {
	return strings.Join(lines, "\n")
}
