package user

// User is the directory shape this service reads; the user store itself
// lives behind the external User Directory API.
type User struct {
	ID       string `json:"_id"`
	FullName string `json:"fullname"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	Role     string `json:"role,omitempty"`
}
