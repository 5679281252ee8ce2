package enums

type SexualPreference string

const (
	SexualPreferenceStraight  SexualPreference = "straight"
	SexualPreferenceGay       SexualPreference = "gay"
	SexualPreferenceLesbian   SexualPreference = "lesbian"
	SexualPreferenceBisexual  SexualPreference = "bisexual"
	SexualPreferencePansexual SexualPreference = "pansexual"
	SexualPreferenceAsexual   SexualPreference = "asexual"
	SexualPreferenceOther     SexualPreference = "other"
)

func (p SexualPreference) Valid() bool {
	switch p {
	case SexualPreferenceStraight,
		SexualPreferenceGay,
		SexualPreferenceLesbian,
		SexualPreferenceBisexual,
		SexualPreferencePansexual,
		SexualPreferenceAsexual,
		SexualPreferenceOther:
		return true
	default:
		return false
	}
}
