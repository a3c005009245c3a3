package domain

// StoryTheme is the subject a story is written around.
type StoryTheme string

const (
	StoryThemeColorsShapes     StoryTheme = "colors_shapes"
	StoryThemeLoveBonding      StoryTheme = "love_bonding"
	StoryThemeNatureCalm       StoryTheme = "nature_calm"
	StoryThemeSpiritualLight   StoryTheme = "spiritual_light"
	StoryThemeRhythmSound      StoryTheme = "rhythm_sound"
	StoryThemeFamilyLegacy     StoryTheme = "family_legacy"
	StoryThemeDisciplineValues StoryTheme = "discipline_values"
	StoryThemeSurprise         StoryTheme = "surprise"
)

func (t StoryTheme) String() string { return string(t) }

func (t StoryTheme) IsValid() bool {
	switch t {
	case StoryThemeColorsShapes, StoryThemeLoveBonding, StoryThemeNatureCalm, StoryThemeSpiritualLight,
		StoryThemeRhythmSound, StoryThemeFamilyLegacy, StoryThemeDisciplineValues, StoryThemeSurprise:
		return true
	}
	return false
}

// Label returns the human-readable theme name used in prompts.
func (t StoryTheme) Label() string {
	switch t {
	case StoryThemeColorsShapes:
		return "Colors & Shapes"
	case StoryThemeLoveBonding:
		return "Love & Bonding"
	case StoryThemeNatureCalm:
		return "Nature & Calm"
	case StoryThemeSpiritualLight:
		return "Spiritual & Light"
	case StoryThemeRhythmSound:
		return "Rhythm & Sound"
	case StoryThemeFamilyLegacy:
		return "Family Legacy"
	case StoryThemeDisciplineValues:
		return "Discipline & Values"
	case StoryThemeSurprise:
		return "Surprise"
	}
	return string(t)
}

// StoryLength is the target length tier of a story.
type StoryLength string

const (
	StoryLengthQuick    StoryLength = "quick"
	StoryLengthShort    StoryLength = "short"
	StoryLengthStandard StoryLength = "standard"
	StoryLengthLong     StoryLength = "long"
)

func (l StoryLength) String() string { return string(l) }

func (l StoryLength) IsValid() bool {
	switch l {
	case StoryLengthQuick, StoryLengthShort, StoryLengthStandard, StoryLengthLong:
		return true
	}
	return false
}

// WordRange is an inclusive target word count.
type WordRange struct {
	Min int
	Max int
}

// WordRange returns the target word count for the tier.
// Unknown tiers return the zero range.
func (l StoryLength) WordRange() WordRange {
	switch l {
	case StoryLengthQuick:
		return WordRange{Min: 150, Max: 200}
	case StoryLengthShort:
		return WordRange{Min: 200, Max: 300}
	case StoryLengthStandard:
		return WordRange{Min: 350, Max: 450}
	case StoryLengthLong:
		return WordRange{Min: 500, Max: 600}
	}
	return WordRange{}
}

// FaithPreference controls the tone instructions of a story.
type FaithPreference string

const (
	FaithPreferenceFaithBased   FaithPreference = "faith_based"
	FaithPreferenceSpiritual    FaithPreference = "spiritual"
	FaithPreferenceNonReligious FaithPreference = "non_religious"
)

func (f FaithPreference) String() string { return string(f) }

func (f FaithPreference) IsValid() bool {
	switch f {
	case FaithPreferenceFaithBased, FaithPreferenceSpiritual, FaithPreferenceNonReligious:
		return true
	}
	return false
}

// ChildStatus tells whether the baby has been born yet.
// The zero value is treated as ChildStatusPrenatal.
type ChildStatus string

const (
	ChildStatusPrenatal ChildStatus = "prenatal"
	ChildStatusBorn     ChildStatus = "born"
)

func (s ChildStatus) String() string { return string(s) }

func (s ChildStatus) IsValid() bool {
	switch s {
	case ChildStatusPrenatal, ChildStatusBorn:
		return true
	}
	return false
}

// OrDefault returns ChildStatusPrenatal for the zero value.
func (s ChildStatus) OrDefault() ChildStatus {
	if s == "" {
		return ChildStatusPrenatal
	}
	return s
}

// AgeGroup is the developmental stage of a born child.
type AgeGroup string

const (
	AgeGroupNewborn   AgeGroup = "newborn"
	AgeGroupInfant    AgeGroup = "infant"
	AgeGroupToddler   AgeGroup = "toddler"
	AgeGroupPreschool AgeGroup = "preschool"
)

func (g AgeGroup) String() string { return string(g) }

func (g AgeGroup) IsValid() bool {
	switch g {
	case AgeGroupNewborn, AgeGroupInfant, AgeGroupToddler, AgeGroupPreschool:
		return true
	}
	return false
}

// Provider identifies an external text generator.
type Provider string

const (
	ProviderAnthropic Provider = "anthropic"
	ProviderOpenAI    Provider = "openai"
)

func (p Provider) String() string { return string(p) }

func (p Provider) IsValid() bool {
	switch p {
	case ProviderAnthropic, ProviderOpenAI:
		return true
	}
	return false
}

// FontSize is the reader font preference.
type FontSize string

const (
	FontSizeNormal FontSize = "normal"
	FontSizeLarge  FontSize = "large"
)

func (f FontSize) String() string { return string(f) }

func (f FontSize) IsValid() bool {
	switch f {
	case FontSizeNormal, FontSizeLarge:
		return true
	}
	return false
}
