package domain

type User struct {
	ID             uint   `json:"-"`
	Username       string `json:"username"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	HashedPassword string `json:"-"`
	Disabled       bool   `json:"disabled"`
}
