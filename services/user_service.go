package services

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"real-estate-management-server/models"
	"real-estate-management-server/storage"
)

type UserService struct {
	store *storage.Store
}

func NewUserService(store *storage.Store) *UserService {
	return &UserService{store: store}
}

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Role      string
}

// UserUpdate is the allow-listed field set for profile updates. Role
// and password are deliberately absent; they have their own
// operations.
type UserUpdate struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
}

func (s *UserService) Register(input RegisterInput) (*models.User, error) {
	if input.Email == "" || input.Password == "" {
		return nil, invalidInput("email and password are required")
	}
	if input.Role != "" && !models.ValidUserRole(input.Role) {
		return nil, invalidInput("invalid role: " + input.Role)
	}

	hashed, hashErr := hashAndSaltPassword(input.Password)
	if hashErr != nil {
		return nil, &Error{Kind: KindUnknown, Message: "could not hash password"}
	}

	var user *models.User
	err := s.store.Write(func() error {
		if _, err := s.store.UserByEmail(input.Email); err == nil {
			return alreadyExists("user with this email already exists")
		}
		user = models.NewUser(
			strings.ToLower(input.Email), hashed,
			input.FirstName, input.LastName, input.Phone, input.Role,
		)
		return s.store.Users.Create(user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies the credentials and returns the user. Token
// issuance stays in the routes layer.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	var user *models.User
	err := s.store.Read(func() error {
		var err error
		user, err = s.store.UserByEmail(email)
		if err != nil {
			return notAuthorized("invalid email or password")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, notAuthorized("invalid email or password")
	}
	return user, nil
}

func (s *UserService) Get(id string) (*models.User, error) {
	var user *models.User
	err := s.store.Read(func() error {
		var err error
		user, err = s.store.Users.Get(id)
		if err != nil {
			return notFound("user not found")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) List() ([]*models.User, error) {
	return s.find(func(*models.User) bool { return true })
}

func (s *UserService) ByRole(role string) ([]*models.User, error) {
	return s.find(func(u *models.User) bool { return u.Role == role })
}

func (s *UserService) find(pred func(*models.User) bool) ([]*models.User, error) {
	var users []*models.User
	err := s.store.Read(func() error {
		var err error
		users, err = s.store.Users.Find(pred)
		return err
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserService) Update(id string, upd UserUpdate) (*models.User, error) {
	var user *models.User
	err := s.store.Write(func() error {
		var err error
		user, err = s.store.Users.Get(id)
		if err != nil {
			return notFound("user not found")
		}
		if upd.FirstName != nil {
			user.FirstName = *upd.FirstName
		}
		if upd.LastName != nil {
			user.LastName = *upd.LastName
		}
		if upd.Phone != nil {
			user.Phone = *upd.Phone
		}
		user.Touch()
		return s.store.Users.Save(user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdatePassword(id, currentPassword, newPassword string) error {
	if newPassword == "" {
		return invalidInput("new password is required")
	}
	user, err := s.Get(id)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)) != nil {
		return notAuthorized("current password is incorrect")
	}
	hashed, hashErr := hashAndSaltPassword(newPassword)
	if hashErr != nil {
		return &Error{Kind: KindUnknown, Message: "could not hash password"}
	}
	return s.store.Write(func() error {
		user.Password = hashed
		user.Touch()
		return s.store.Users.Save(user)
	})
}

// UpdateRole sets the role. Admin only; the routes layer enforces the
// caller, the service validates the value.
func (s *UserService) UpdateRole(id, role string) (*models.User, error) {
	if !models.ValidUserRole(role) {
		return nil, invalidInput("invalid role: " + role)
	}
	var user *models.User
	err := s.store.Write(func() error {
		var err error
		user, err = s.store.Users.Get(id)
		if err != nil {
			return notFound("user not found")
		}
		user.Role = role
		user.Touch()
		return s.store.Users.Save(user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(id string) error {
	return s.store.Write(func() error {
		if err := s.store.Users.Delete(id); err != nil {
			return notFound("user not found")
		}
		return nil
	})
}

func hashAndSaltPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}
