package config

const (
	defaultRangePrompt = "Enter a hexadecimal range (e.g. 7ffd76d19000-7ffd76d3a000): "
	defaultProbePrompt = "Enter a hexadecimal number to check (e.g. 7ffd76d35500): "
)

// A Profile controls how ranges are checked and how the user is prompted.
type Profile struct {
	// Strict reports a range without a hyphen as an error instead of "not within".
	Strict      bool   `json:"strict,omitempty"`
	RangePrompt string `json:"range_prompt,omitempty"`
	ProbePrompt string `json:"probe_prompt,omitempty"`
}

// DefaultProfile returns the profile used when no configuration is present.
func DefaultProfile() Profile {
	return Profile{
		RangePrompt: defaultRangePrompt,
		ProbePrompt: defaultProbePrompt,
	}
}

func (p Profile) withDefaults() Profile {
	if p.RangePrompt == "" {
		p.RangePrompt = defaultRangePrompt
	}
	if p.ProbePrompt == "" {
		p.ProbePrompt = defaultProbePrompt
	}
	return p
}
