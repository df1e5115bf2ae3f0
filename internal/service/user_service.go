package service

import (
	"errors"
	"time"

	"notedeck/internal/auth"
	"notedeck/internal/contract"
	"notedeck/internal/domain/entity"
	"notedeck/internal/utils"
	"notedeck/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type UserRepository interface {
	FindByID(id int) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	ExistsByEmail(email string) (bool, error)
	Save(user *entity.User) error
}

type UserService struct {
	UserRepo UserRepository
	Issuer   *auth.Issuer
	Validate *validator.Validate
}

func NewUserService(userRepo UserRepository, issuer *auth.Issuer, validate *validator.Validate) *UserService {
	return &UserService{
		UserRepo: userRepo,
		Issuer:   issuer,
		Validate: validate,
	}
}

// Register creates the account and immediately issues a token for it, the
// same way a follow-up login would.
func (u *UserService) Register(req *contract.RegisterRequest) (*contract.AuthResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := u.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	exists, err := u.UserRepo.ExistsByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to check email availability: %v", err)
		return nil, apierror.InternalServerError
	}
	if exists {
		return nil, apierror.ExistingEmailError
	}

	digest, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Errorf("failed to hash password: %v", err)
		return nil, apierror.InternalServerError
	}

	now := utils.NowUTC()
	user := &entity.User{
		Email:        req.Email,
		PasswordHash: digest,
		Login:        false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.UserRepo.Save(user); err != nil {
		log.Errorf("failed to create user: %v", err)
		return nil, apierror.InternalServerError
	}

	token, err := u.Issuer.Issue(user.ID, time.Now())
	if err != nil {
		log.Errorf("failed to issue token for user %d: %v", user.ID, err)
		return nil, apierror.InternalServerError
	}

	return &contract.AuthResponse{
		Code:    "Ok",
		Message: "User created",
		Token:   token,
	}, nil
}

// Login verifies credentials, flips the login flag and issues a fresh token.
// Every failure path is the same 401 so callers cannot probe for accounts.
func (u *UserService) Login(req *contract.LoginRequest) (*contract.AuthResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := u.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	user, err := u.UserRepo.FindByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to fetch user by email: %v", err)
		return nil, apierror.InternalServerError
	}

	if user == nil || !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apierror.CredentialsMismatchError
	}

	user.Login = true
	user.UpdatedAt = utils.NowUTC()
	if err := u.UserRepo.Save(user); err != nil {
		log.Errorf("failed to update login flag for user %d: %v", user.ID, err)
		return nil, apierror.InternalServerError
	}

	token, err := u.Issuer.Issue(user.ID, time.Now())
	if err != nil {
		log.Errorf("failed to issue token for user %d: %v", user.ID, err)
		return nil, apierror.InternalServerError
	}

	return &contract.AuthResponse{
		Code:    "Ok",
		Message: "Valid credentials",
		Token:   token,
	}, nil
}

// ValidateToken verifies a presented bearer token and resolves its subject
// to a live account.
func (u *UserService) ValidateToken(rawToken string) (*contract.ValidateResponse, apierror.ErrorResponse) {
	userId, err := u.Issuer.Verify(rawToken, time.Now())
	if errors.Is(err, auth.ErrTokenExpired) {
		return nil, apierror.ExpiredAuthTokenError
	}
	if err != nil {
		return nil, apierror.InvalidAuthTokenError
	}

	user, err := u.UserRepo.FindByID(userId)
	if err != nil {
		log.Errorf("failed to fetch user %d: %v", userId, err)
		return nil, apierror.InternalServerError
	}
	if user == nil {
		return nil, apierror.InvalidAuthTokenError
	}

	return &contract.ValidateResponse{
		Code:    "Ok",
		Message: "Valid token",
		UserID:  user.ID,
	}, nil
}
