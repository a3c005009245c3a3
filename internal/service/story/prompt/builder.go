// Package prompt renders the text-generation prompt for a story request.
// Build is pure: the same config always yields the same prompt.
package prompt

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/evernest-backend/internal/domain"
)

const sectionBreak = "\n\n"

const (
	prenatalPersona = "You are a gentle, warm, and poetic prenatal storytelling companion.\n" +
		"Write a soothing bedtime story designed to be read aloud by parents to their unborn baby. " +
		"Use imagery that softly bridges the warmth of the womb and the wonders of the world waiting outside."

	bornPersona = "You are a gentle, warm, and poetic storyteller for a young baby.\n" +
		"Write a soothing bedtime story designed to be read aloud by parents to their little one as they drift off to sleep."

	sensoryInstruction = "Weave in gentle sensory details: soft sounds, warm colors, and simple shapes. " +
		"Where it fits, include friendly animals or peaceful scenery."

	safetyInstruction = "The story should be rhythmic, calming, and foster a deep sense of safety, curiosity, and love.\n" +
		"Avoid any scary elements, loud noises, or negative conflict.\n" +
		"Use simple, melodic language.\n" +
		"Ensure every sentence ends with proper punctuation and a space before the next sentence begins. Never put a space before a punctuation mark.\n" +
		"Format the content with paragraph breaks for readability."

	outputInstruction = `Return the result strictly as a JSON object with the keys: "title" and "content".`
)

var ageGroupInstructions = map[domain.AgeGroup]string{
	domain.AgeGroupNewborn: "The baby is a newborn. Use slow, very simple, repetitive phrases " +
		"and paint bold, high-contrast pictures: black and white shapes, a bright face, a single soft light.",
	domain.AgeGroupInfant: "The baby is an infant. Gently name everyday things, animals, and sounds, " +
		"and invite sensory moments like a soft blanket, a warm bath, or a quiet rattle.",
	domain.AgeGroupToddler: "The child is a toddler. Give the story a simple beginning, middle, and end, " +
		"repeat a comforting refrain, and speak directly to the child as \"you\".",
	domain.AgeGroupPreschool: "The child is a preschooler. Explore feelings, friendship, and imagination, " +
		"and let the child picture themselves inside a small, kind adventure.",
}

var toneInstructions = map[domain.FaithPreference]string{
	domain.FaithPreferenceFaithBased:   "Include gentle references to God's love, blessings, or prayers suitable for a general faith perspective.",
	domain.FaithPreferenceSpiritual:    "Focus on universal connection, light, energy, and the miracle of life.",
	domain.FaithPreferenceNonReligious: "Focus solely on love, biology, nature, and emotional bonding without spiritual references.",
}

// Build renders the prompt for cfg. Fragments are emitted in a fixed order
// and empty fragments are skipped. The config is expected to be validated.
func Build(cfg domain.StoryGenerationConfig) string {
	born := cfg.IsBorn()

	fragments := []string{
		persona(born, cfg.AgeGroup),
		theme(born, cfg.Theme),
		sensoryInstruction,
		length(cfg.Length),
		toneInstructions[cfg.FaithPreference],
		baby(cfg.BabyNickname),
		parents(cfg.ParentOneName, cfg.ParentTwoName),
	}
	if !born {
		fragments = append(fragments, dueDate(cfg.DueDate))
	}
	fragments = append(fragments, safetyInstruction, outputInstruction)

	parts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if f != "" {
			parts = append(parts, f)
		}
	}
	return strings.Join(parts, sectionBreak)
}

func persona(born bool, group domain.AgeGroup) string {
	if !born {
		return prenatalPersona
	}
	if block, ok := ageGroupInstructions[group]; ok {
		return bornPersona + "\n" + block
	}
	return bornPersona
}

func theme(born bool, t domain.StoryTheme) string {
	if t == domain.StoryThemeSurprise {
		if born {
			return "Choose a calming, random theme suitable for a young baby."
		}
		return "Choose a calming, random theme suitable for a baby in the womb."
	}
	return fmt.Sprintf("The theme of the story is: %s.", t.Label())
}

func length(l domain.StoryLength) string {
	r := l.WordRange()
	return fmt.Sprintf("Keep the story between %d and %d words.", r.Min, r.Max)
}

func baby(nickname string) string {
	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		return `Refer to the baby as "little one" or "baby".`
	}
	return fmt.Sprintf(`The baby is affectionately called "%s".`, nickname)
}

func parents(one, two string) string {
	one, two = strings.TrimSpace(one), strings.TrimSpace(two)
	switch {
	case one != "" && two != "":
		return fmt.Sprintf("The parents reading this are named %s and %s.", one, two)
	case one != "":
		return fmt.Sprintf("The parent reading this is named %s.", one)
	}
	return ""
}

func dueDate(date string) string {
	date = strings.TrimSpace(date)
	if date == "" {
		return ""
	}
	return fmt.Sprintf("The baby is expected around %s.", date)
}
