package user

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/package-crud/cmd/config"
	"github.com/muhammadheryan/package-crud/constant"
	"github.com/muhammadheryan/package-crud/model"
	redisrepo "github.com/muhammadheryan/package-crud/repository/redis"
	userrepo "github.com/muhammadheryan/package-crud/repository/user"
	"github.com/muhammadheryan/package-crud/thirdparty/rabbitmq"
	"github.com/muhammadheryan/package-crud/utils/errors"
	"github.com/muhammadheryan/package-crud/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserApp interface {
	CreateUser(ctx context.Context, req *model.UserRequest) (*model.UserResponse, error)
	FindAllUsers(ctx context.Context) ([]model.UserResponse, error)
	FindUserByID(ctx context.Context, id int64) (*model.UserResponse, error)
	UpdateUser(ctx context.Context, id int64, req *model.UserRequest) (*model.UserResponse, error)
	DeleteUser(ctx context.Context, id int64) (bool, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Logout(ctx context.Context, tokenString string) error
	ValidateToken(ctx context.Context, tokenString string) (int64, error)
}

type UserAppImpl struct {
	config    *config.Config
	userRepo  userrepo.UserRepository
	redisRepo redisrepo.Repository
	publisher rabbitmq.EventPublisher
}

func NewUserApp(config *config.Config, userRepo userrepo.UserRepository, redisRepo redisrepo.Repository, publisher rabbitmq.EventPublisher) UserApp {
	return &UserAppImpl{
		config:    config,
		userRepo:  userRepo,
		redisRepo: redisRepo,
		publisher: publisher,
	}
}

// CreateUser registers a new active user. Validation failures are returned in-band
// through UserResponse.StatusCode and Description with a nil error.
func (s *UserAppImpl) CreateUser(ctx context.Context, req *model.UserRequest) (*model.UserResponse, error) {
	if res := ValidateUserRequest(req); !res.OK {
		return model.NewUserErrorResponse(constant.ValidationStatusCode, res.Reason), nil
	}

	existing, err := s.userRepo.FindByEmailAndIsDeleted(ctx, req.Email, constant.Active)
	if err != nil {
		logger.Error("[CreateUser] err userRepo.FindByEmailAndIsDeleted", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return model.NewUserErrorResponse(constant.ValidationStatusCode, constant.MsgEmailRegistered), nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[CreateUser] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	id, err := s.redisRepo.NextSequence(ctx, constant.SequenceUser)
	if err != nil {
		logger.Error("[CreateUser] err redisRepo.NextSequence", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	userEntity := &model.UserEntity{
		ID:          id,
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    string(hashedPassword),
		RoleID:      req.RoleID,
		IsDeleted:   constant.Active,
	}

	userEntity, err = s.userRepo.Save(ctx, userEntity)
	if err != nil {
		logger.Error("[CreateUser] err userRepo.Save", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.publish(ctx, constant.ActionCreated, userEntity.ID)

	return model.ToUserResponse(userEntity), nil
}

// FindAllUsers returns every user that is not soft-deleted
func (s *UserAppImpl) FindAllUsers(ctx context.Context) ([]model.UserResponse, error) {
	users, err := s.userRepo.FindByIsDeleted(ctx, constant.Active)
	if err != nil {
		logger.Error("[FindAllUsers] err userRepo.FindByIsDeleted", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	res := make([]model.UserResponse, 0, len(users))
	for i := range users {
		res = append(res, *model.ToUserResponse(&users[i]))
	}
	return res, nil
}

// FindUserByID returns nil when there is no active user with the id
func (s *UserAppImpl) FindUserByID(ctx context.Context, id int64) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByIDAndIsDeleted(ctx, id, constant.Active)
	if err != nil {
		logger.Error("[FindUserByID] err userRepo.FindByIDAndIsDeleted", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, nil
	}
	return model.ToUserResponse(user), nil
}

func (s *UserAppImpl) UpdateUser(ctx context.Context, id int64, req *model.UserRequest) (*model.UserResponse, error) {
	if res := ValidateUserRequest(req); !res.OK {
		return model.NewUserErrorResponse(constant.ValidationStatusCode, res.Reason), nil
	}

	user, err := s.userRepo.FindByIDAndIsDeleted(ctx, id, constant.Active)
	if err != nil {
		logger.Error("[UpdateUser] err userRepo.FindByIDAndIsDeleted", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return model.NewUserErrorResponse(constant.NotFoundStatusCode, constant.MsgUserNotFound), nil
	}

	if req.Email != user.Email {
		other, err := s.userRepo.FindByEmailAndIsDeleted(ctx, req.Email, constant.Active)
		if err != nil {
			logger.Error("[UpdateUser] err userRepo.FindByEmailAndIsDeleted", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if other != nil {
			return model.NewUserErrorResponse(constant.ValidationStatusCode, constant.MsgEmailRegistered), nil
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[UpdateUser] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	user.Name = req.Name
	user.Email = req.Email
	user.PhoneNumber = req.PhoneNumber
	user.RoleID = req.RoleID
	user.Password = string(hashedPassword)

	user, err = s.userRepo.Save(ctx, user)
	if err != nil {
		logger.Error("[UpdateUser] err userRepo.Save", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.publish(ctx, constant.ActionUpdated, user.ID)

	return model.ToUserResponse(user), nil
}

// DeleteUser soft-deletes the user. The document stays in the store with the
// deleted flag set. Returns false when no active user has the id.
func (s *UserAppImpl) DeleteUser(ctx context.Context, id int64) (bool, error) {
	user, err := s.userRepo.FindByIDAndIsDeleted(ctx, id, constant.Active)
	if err != nil {
		logger.Error("[DeleteUser] err userRepo.FindByIDAndIsDeleted", zap.String("error", err.Error()))
		return false, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return false, nil
	}

	user.IsDeleted = constant.Deleted
	if _, err := s.userRepo.Save(ctx, user); err != nil {
		logger.Error("[DeleteUser] err userRepo.Save", zap.String("error", err.Error()))
		return false, errors.SetCustomError(constant.ErrInternal)
	}

	s.publish(ctx, constant.ActionDeleted, user.ID)

	return true, nil
}

func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.userRepo.FindByEmailAndIsDeleted(ctx, req.Email, constant.Active)
	if err != nil {
		logger.Error("[Login] err userRepo.FindByEmailAndIsDeleted", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	// Verify password
	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password))
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	token, jti, err := s.generateJWT(user.ID)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	err = s.redisRepo.SetSession(ctx, jti, user.ID, s.config.Auth.SessionExpTime)
	if err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{Token: token}, nil
}

// Logout removes the session bound to the token
func (s *UserAppImpl) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}

	if err := s.redisRepo.DeleteSession(ctx, claims.ID); err != nil {
		logger.Error("[Logout] err DeleteSession", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (int64, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return 0, err
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user id in token")
	}

	redisUserID, err := s.redisRepo.GetSession(ctx, claims.ID)
	if err != nil {
		return 0, fmt.Errorf("invalid or expired session")
	}

	if redisUserID != userID {
		return 0, fmt.Errorf("token does not match user session")
	}

	return userID, nil
}

func (s *UserAppImpl) parseToken(tokenString string) (*jwt.RegisteredClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}

	if claims.ID == "" {
		return nil, fmt.Errorf("token missing jti")
	}
	return claims, nil
}

// generateJWT creates a JWT token for the user
func (s *UserAppImpl) generateJWT(userID int64) (string, string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Auth.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ID:        uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}

func (s *UserAppImpl) publish(ctx context.Context, action string, id int64) {
	if s.publisher == nil {
		return
	}
	event := model.EntityEvent{
		Entity:     constant.EntityUser,
		Action:     action,
		EntityID:   id,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.Error("[User] err publish event", zap.String("routing_key", event.RoutingKey()), zap.String("error", err.Error()))
	}
}
