package user

type ProfileResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	PanchayatCode string `json:"panchayat_code"`
}

// ToProfile maps a User entity to its profile response form.
func ToProfile(u User) ProfileResponse {
	return ProfileResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Role:          u.Role,
		PanchayatCode: u.PanchayatCode,
	}
}
