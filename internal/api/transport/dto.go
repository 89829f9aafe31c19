package transport

type SignupRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type JwtResponse struct {
	Token     string `json:"token"`
	Type      string `json:"type"`
	ExpiresIn int64  `json:"expiresIn"`
	Username  string `json:"username"`
	Email     string `json:"email"`
}

type CreateLaptopRequest struct {
	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	Processor    string  `json:"processor"`
	RAM          string  `json:"ram"`
	Storage      string  `json:"storage"`
	GraphicsCard string  `json:"graphics_card"`
	Price        *float64 `json:"price"`
	Stock        *int     `json:"stock"`
	Description  string  `json:"description"`
}

// UpdateLaptopRequest carries merge-patch semantics: only fields that are
// present, non-empty and non-negative overwrite the stored value.
type UpdateLaptopRequest struct {
	Brand        *string  `json:"brand"`
	Model        *string  `json:"model"`
	Processor    *string  `json:"processor"`
	RAM          *string  `json:"ram"`
	Storage      *string  `json:"storage"`
	GraphicsCard *string  `json:"graphics_card"`
	Price        *float64 `json:"price"`
	Stock        *int     `json:"stock"`
	Description  *string  `json:"description"`
}
