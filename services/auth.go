package services

import (
	"errors"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/heartwired/valentine_api/dto"
	"github.com/heartwired/valentine_api/model"
	"github.com/heartwired/valentine_api/services/repositories"
	"github.com/heartwired/valentine_api/shared"
)

type AuthService struct {
	context.DefaultService

	sqlSvc *PostgresService
	jwtSvc *JWTService

	userRepo *repositories.UserRepository
}

const AUTH_SVC = "auth_svc"

func (svc AuthService) Id() string {
	return AUTH_SVC
}

func (svc *AuthService) Start() error {
	svc.sqlSvc = svc.Service(POSTGRES_SVC).(*PostgresService)
	svc.jwtSvc = svc.Service(JWT_SVC).(*JWTService)
	svc.userRepo = repositories.NewUserRepository(svc.sqlSvc.Db())
	return nil
}

func (svc *AuthService) Register(req dto.RegisterRequest) (*dto.RegisterResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to hash password")
	}

	user, err := svc.userRepo.Create(&model.User{
		Email:    req.Email,
		Username: req.Username,
		Password: string(hashed),
		Role:     shared.RoleUser,
	})
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	log.WithField("user_id", user.ID).Info("User registered")

	return &dto.RegisterResponse{
		UserID:   user.ID,
		Username: user.Username,
	}, nil
}

// Login verifies credentials and issues a token carrying a fresh session id;
// the session id scopes the caller's game progress for this browsing session.
func (svc *AuthService) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := svc.userRepo.GetByEmailOrUsername(req.EmailOrUsername)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewUnauthorizedError(nil, "Invalid credentials")
		}
		return nil, svc.sqlSvc.HandleError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, shared.NewUnauthorizedError(nil, "Invalid credentials")
	}

	sessionID, _ := uuid.NewV7()
	pair, err := svc.jwtSvc.GenerateTokenPair(user.ID, sessionID.String(), user.Role)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to issue token")
	}

	if err := svc.userRepo.UpdateLastLogin(user.ID); err != nil {
		log.WithError(err).WithField("user_id", user.ID).Warn("Failed to update last login")
	}

	return &dto.LoginResponse{
		AccessToken: pair.AccessToken,
		ExpiresIn:   pair.ExpiresIn,
		Role:        user.Role,
	}, nil
}

func (svc *AuthService) GetProfile(userID string) (*dto.ProfileResponse, error) {
	user, err := svc.userRepo.GetByID(userID)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	return &dto.ProfileResponse{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Name:     user.Name,
		Role:     user.Role,
		IsAdmin:  user.Role == shared.RoleAdmin,
	}, nil
}

func (svc *AuthService) UpdateProfile(userID string, req dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	user, err := svc.userRepo.GetByID(userID)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	user.Name = req.Name
	user.UpdatedAt = time.Now()

	if err := svc.userRepo.Update(user); err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	return svc.GetProfile(userID)
}

// AssignRole changes a user's role. The admin role is what unlocks the
// unfiltered owner views and the editor surface.
func (svc *AuthService) AssignRole(userID, role string) error {
	if role != shared.RoleAdmin && role != shared.RoleUser {
		return shared.NewBadRequestError(nil, "Unknown role: "+role)
	}

	if _, err := svc.userRepo.GetByID(userID); err != nil {
		return svc.sqlSvc.HandleError(err)
	}

	if err := svc.userRepo.UpdateRole(userID, role); err != nil {
		return svc.sqlSvc.HandleError(err)
	}

	log.WithField("user_id", userID).WithField("role", role).Info("User role assigned")
	return nil
}
