package models

// Profile is the single per-device user profile.
type Profile struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	MemberSince string `json:"memberSince"`

	// Elo is the gamified score, incremented by a fixed amount per scan.
	// Unrelated to the chess rating algorithm despite the name.
	Elo int `json:"elo"`

	TotalScans     int `json:"totalScans"`
	TotalFavorites int `json:"totalFavorites"`
}

// DefaultProfile returns the profile used before any has been persisted
// and after a reset.
func DefaultProfile() Profile {
	return Profile{
		Name:        "Mads Mikkelsen",
		Email:       "mads@example.com",
		MemberSince: "Jan 2025",
		Elo:         230,
	}
}
