package employee

// ManagerResponse is the directory entry for the manager listing. Password
// hashes and timestamps stay out of the payload.
type ManagerResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}
