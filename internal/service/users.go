package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/quochao170402/ecommerce-catalog/internal/domain"
	"github.com/quochao170402/ecommerce-catalog/internal/placeholder"
)

// UserInput carries the fields for creating or fully replacing a user.
type UserInput struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// UserPatch carries a partial update. Nil fields are left untouched.
type UserPatch struct {
	Name     *string `json:"name"`
	Username *string `json:"username"`
	Password *string `json:"password"`
	Email    *string `json:"email"`
}

func (p UserPatch) apply(u *domain.User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
}

type UserFilter struct {
	Size int
}

type UsersService struct {
	catalog *Catalog
}

// FindAll returns up to filter.Size users plus the untruncated store size.
func (s *UsersService) FindAll(filter UserFilter) ([]domain.User, int) {
	c := s.catalog
	c.mu.RLock()
	defer c.mu.RUnlock()

	list := c.users.List()
	return truncate(list, filter.Size), len(list)
}

func (s *UsersService) FindOne(id int) (domain.User, error) {
	c := s.catalog
	c.mu.RLock()
	defer c.mu.RUnlock()

	user, ok := c.users.Get(id)
	if !ok {
		return domain.User{}, domain.NotFoundf("User with id %d does not exist", id)
	}
	return user, nil
}

func (s *UsersService) Create(in UserInput) (domain.User, error) {
	c := s.catalog
	c.mu.Lock()
	defer c.mu.Unlock()

	if in.Name == "" || in.Username == "" || in.Password == "" {
		return domain.User{}, domain.Validationf("Name, username and password are required")
	}
	if c.usernameTaken(in.Username, 0) {
		return domain.User{}, domain.Conflictf("Username already exists")
	}

	email := in.Email
	if email == "" {
		email = placeholder.Email()
	}

	user := domain.User{
		ID:       c.users.NextID(),
		Name:     in.Name,
		Username: in.Username,
		Password: in.Password,
		Email:    email,
	}
	c.users.Append(&user)
	zap.S().Infow("user created", "id", user.ID, "username", user.Username)
	return user, nil
}

// Update replaces all mutable fields. The id and createdAt are preserved.
func (s *UsersService) Update(id int, in UserInput) (domain.User, error) {
	c := s.catalog
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.users.IndexOf(id)
	if i < 0 {
		return domain.User{}, domain.NotFoundf("User with id %d does not exist", id)
	}
	if in.Name == "" || in.Username == "" || in.Password == "" {
		return domain.User{}, domain.Validationf("Name, username and password are required")
	}
	if c.usernameTaken(in.Username, id) {
		return domain.User{}, domain.Conflictf("Username already exists")
	}

	user := c.users.At(i)
	user.Name = in.Name
	user.Username = in.Username
	user.Password = in.Password
	if in.Email != "" {
		user.Email = in.Email
	}
	user.SetUpdatedAt(time.Now())
	c.users.ReplaceAt(i, user)
	return user, nil
}

// PartialUpdate merges the supplied fields over the stored record. The patch
// can never change the id.
func (s *UsersService) PartialUpdate(id int, patch UserPatch) (domain.User, error) {
	c := s.catalog
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.users.IndexOf(id)
	if i < 0 {
		return domain.User{}, domain.NotFoundf("User with id %d does not exist", id)
	}
	if patch.Username != nil && *patch.Username != "" && c.usernameTaken(*patch.Username, id) {
		return domain.User{}, domain.Conflictf("Username already exists")
	}

	user := c.users.At(i)
	patch.apply(&user)
	user.ID = id
	user.SetUpdatedAt(time.Now())
	c.users.ReplaceAt(i, user)
	return user, nil
}

func (s *UsersService) Delete(id int) (domain.User, error) {
	c := s.catalog
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.users.IndexOf(id)
	if i < 0 {
		return domain.User{}, domain.NotFoundf("User with id %d does not exist", id)
	}
	user := c.users.RemoveAt(i)
	zap.S().Infow("user deleted", "id", id)
	return user, nil
}

// usernameTaken reports whether another user already holds the username.
// The comparison is case-sensitive.
func (c *Catalog) usernameTaken(username string, excludeID int) bool {
	for _, u := range c.users.List() {
		if u.Username == username && u.ID != excludeID {
			return true
		}
	}
	return false
}
