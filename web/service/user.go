// Package service implements the business logic behind the filmstash web
// handlers: accounts, catalog queries, metadata enrichment, and the library
// scan.
package service

import (
	"github.com/filmstash/filmstash/database"
	"github.com/filmstash/filmstash/database/model"
	"github.com/filmstash/filmstash/logger"
	"github.com/filmstash/filmstash/util/common"
	"github.com/filmstash/filmstash/util/crypto"

	"gorm.io/gorm"
)

// Admin actions accepted by AdminAction.
const (
	ActionDelete  = "delete"
	ActionPromote = "promote"
	ActionDemote  = "demote"
)

type UserService struct{}

func (s *UserService) GetUser(id int) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.First(user, id).Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CheckUser verifies a username/password pair. It returns nil on any
// mismatch so the caller cannot distinguish a missing account from a wrong
// password.
func (s *UserService) CheckUser(username string, password string) *model.User {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("username = ?", username).
		First(user).
		Error
	if err == gorm.ErrRecordNotFound {
		return nil
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil
	}

	if !crypto.CheckPasswordHash(user.Password, password) {
		return nil
	}

	return user
}

func (s *UserService) ListUsers() ([]model.User, error) {
	db := database.GetDB()

	var users []model.User
	err := db.Model(model.User{}).Order("id asc").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserService) HasUsers() (bool, error) {
	db := database.GetDB()

	var count int64
	err := db.Model(model.User{}).Count(&count).Error
	return count > 0, err
}

// CreateUser registers an account with the given role. Invoked from the
// admin-gated signup page; new accounts default to the normal role.
func (s *UserService) CreateUser(username string, password string, role int) (*model.User, error) {
	if username == "" {
		return nil, common.NewError("username can not be empty")
	} else if password == "" {
		return nil, common.NewError("password can not be empty")
	}

	hashedPassword, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return nil, err
	}

	db := database.GetDB()
	user := &model.User{
		Username: username,
		Password: hashedPassword,
		Role:     role,
	}
	if err := db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Setup creates the primary admin account. It only succeeds while the users
// table is empty.
func (s *UserService) Setup(username string, password string) (*model.User, error) {
	hasUsers, err := s.HasUsers()
	if err != nil {
		return nil, err
	}
	if hasUsers {
		return nil, ErrSetupCompleted
	}
	return s.CreateUser(username, password, model.RoleAdmin)
}

// ChangePassword replaces the stored hash after verifying the old password.
// A wrong old password yields ErrInvalidCredentials and no mutation.
func (s *UserService) ChangePassword(id int, oldPassword string, newPassword string) error {
	user, err := s.GetUser(id)
	if err != nil {
		return err
	}

	if !crypto.CheckPasswordHash(user.Password, oldPassword) {
		return ErrInvalidCredentials
	}

	hashedPassword, err := crypto.HashPasswordAsBcrypt(newPassword)
	if err != nil {
		return err
	}

	db := database.GetDB()
	return db.Model(model.User{}).
		Where("id = ?", id).
		Update("password", hashedPassword).
		Error
}

// ResetPassword sets a new password without checking the old one. Reserved
// for CLI admin recovery; the web flow goes through ChangePassword.
func (s *UserService) ResetPassword(id int, newPassword string) error {
	hashedPassword, err := crypto.HashPasswordAsBcrypt(newPassword)
	if err != nil {
		return err
	}

	db := database.GetDB()
	return db.Model(model.User{}).
		Where("id = ?", id).
		Update("password", hashedPassword).
		Error
}

// AdminAction performs a moderation action on the target account and returns
// the affected username for the caller's notice. The primary admin seat is
// refused uniformly for every action, before dispatching.
func (s *UserService) AdminAction(targetId int, action string) (string, error) {
	if targetId == model.PrimaryAdminID {
		return "", ErrPrimaryAdmin
	}

	user, err := s.GetUser(targetId)
	if err != nil {
		return "", err
	}

	db := database.GetDB()
	switch action {
	case ActionDelete:
		err = db.Delete(&model.User{}, targetId).Error
	case ActionPromote:
		err = db.Model(model.User{}).
			Where("id = ?", targetId).
			Update("role", model.RoleModerator).
			Error
	case ActionDemote:
		err = db.Model(model.User{}).
			Where("id = ?", targetId).
			Update("role", model.RoleNormal).
			Error
	default:
		return "", ErrUnknownAction
	}
	if err != nil {
		return "", err
	}
	return user.Username, nil
}
