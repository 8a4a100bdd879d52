package service

import (
	"strings"

	"vetify/internal/domain/entity"
)

// Keyword tiers for symptom triage. Matching is case-insensitive
// substring search; accented and unaccented spellings are listed as
// separate literals on purpose, there is no further normalization.
var (
	highRiskKeywords = []string{
		"sangrando", "sangrado", "hemorragia",
		"no respira", "dificultad para respirar", "ahogando",
		"convulsiona", "convulsión", "convulsiones",
		"muy débil", "muy debil",
		"no se mueve", "inconsciente",
	}

	woundKeywords = []string{
		"herida", "puntos", "sutura", "post operatorio", "post-operatorio",
	}

	bleedingKeywords = []string{
		"sangrando", "sangrado", "hemorragia",
	}

	openWoundKeywords = []string{
		"abrió", "abrio", "abierta", "abierto", "se le abrió",
	}

	moderateKeywords = []string{
		"no quiere jugar", "triste", "no bebe",
		"apatía", "apatico", "apática",
		"diarrea", "tos", "cojea", "cojera",
		"dolor", "molestia", "no apoya la pata",
	}
)

// ClassifyUrgency maps a free-text symptom description to an urgency
// level. Tiers are evaluated in priority order and the first match
// wins: critical symptoms, then wound/post-op cases, then moderate
// symptoms. Anything else, including empty input, is low urgency.
func ClassifyUrgency(symptoms string) entity.UrgencyLevel {
	text := strings.ToLower(symptoms)

	if containsAny(text, highRiskKeywords) {
		return entity.UrgencyAlta
	}

	if containsAny(text, woundKeywords) {
		if containsAny(text, bleedingKeywords) {
			return entity.UrgencyAlta
		}
		if containsAny(text, openWoundKeywords) {
			return entity.UrgencyMedia
		}
		return entity.UrgencyMedia
	}

	if containsAny(text, moderateKeywords) {
		return entity.UrgencyMedia
	}

	return entity.UrgencyBaja
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
