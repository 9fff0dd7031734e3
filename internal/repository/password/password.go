package password

import "github.com/ibeloyar/memestore/pgk/password"

type Repository struct {
	passCost int
}

func New(passCost int) *Repository {
	return &Repository{passCost: passCost}
}

func (r *Repository) HashPassword(pass string) (string, error) {
	return password.Hash(pass, r.passCost)
}

func (r *Repository) CheckPasswordHash(pass, hash string) bool {
	return password.CheckHash(pass, hash)
}
