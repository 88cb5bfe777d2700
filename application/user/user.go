package user

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/food-hero/cmd/config"
	"github.com/muhammadheryan/food-hero/constant"
	"github.com/muhammadheryan/food-hero/model"
	redisrepo "github.com/muhammadheryan/food-hero/repository/redis"
	requestrepo "github.com/muhammadheryan/food-hero/repository/request"
	userrepo "github.com/muhammadheryan/food-hero/repository/user"
	"github.com/muhammadheryan/food-hero/utils/errors"
	"github.com/muhammadheryan/food-hero/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// mysql error number for a unique key violation
const mysqlDuplicateEntry = 1062

type UserApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (string, error)
	Logout(ctx context.Context, tokenString string) error
	GetUser(ctx context.Context, userID string) (*model.UserEntity, error)
	DeleteUser(ctx context.Context, userID string) error
	Export(ctx context.Context) (*model.ExportData, error)
}

type UserAppImpl struct {
	config      *config.Config
	userRepo    userrepo.UserRepository
	requestRepo requestrepo.RequestRepository
	redisRepo   redisrepo.RedisRepository
}

func NewUserApp(config *config.Config, userRepo userrepo.UserRepository, requestRepo requestrepo.RequestRepository, redisRepo redisrepo.RedisRepository) UserApp {
	return &UserAppImpl{
		config:      config,
		userRepo:    userRepo,
		requestRepo: requestRepo,
		redisRepo:   redisRepo,
	}
}

func (s *UserAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error) {
	email := normalizeEmail(req.Email)

	// emails are unique regardless of case
	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Email: email})
	if err != nil {
		logger.Error("[Register] err userRepo.Get email", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrDuplicateEmail)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Register] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	now := time.Now().UTC()
	userEntity := &model.UserEntity{
		ID:              uuid.NewString(),
		Role:            req.Role,
		Name:            req.Name,
		Email:           email,
		Phone:           req.Phone,
		Neighborhood:    req.Neighborhood,
		PasswordHash:    string(hashedPassword),
		Badges:          model.StringList{},
		ClaimedCoupons:  model.StringList{},
		DeliveryHistory: model.StringList{},
		CreatedAt:       now,
	}
	if req.Role == constant.UserRoleHero {
		userEntity.TransportMethod = req.TransportMethod
	}

	userEntity, err = s.userRepo.Create(ctx, userEntity)
	if err != nil {
		var me *mysql.MySQLError
		if stderrors.As(err, &me) && me.Number == mysqlDuplicateEntry {
			return nil, errors.SetCustomError(constant.ErrDuplicateEmail)
		}
		logger.Error("[Register] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.RegisterResponse{
		ID:    userEntity.ID,
		Name:  userEntity.Name,
		Email: userEntity.Email,
		Role:  userEntity.Role,
	}, nil
}

func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: normalizeEmail(req.Email)})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	// Verify password
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password))
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	token, jti, err := s.generateJWT(user.ID)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// the session is the current-user pointer; logout clears it
	err = s.redisRepo.SetSession(ctx, jti, user.ID, s.config.Auth.SessionExpTime)
	if err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		Token: token,
	}, nil
}

func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (string, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return "", err
	}

	redisUserID, err := s.redisRepo.GetSession(ctx, claims.ID)
	if err != nil {
		if !stderrors.Is(err, redisrepo.ErrSessionNotFound) {
			logger.Error("[ValidateToken] err GetSession", zap.String("error", err.Error()))
		}
		return "", fmt.Errorf("invalid or expired session")
	}

	if redisUserID != claims.Subject {
		return "", fmt.Errorf("token does not match user session")
	}

	return claims.Subject, nil
}

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

func (s *UserAppImpl) GetUser(ctx context.Context, userID string) (*model.UserEntity, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[GetUser] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return user, nil
}

func (s *UserAppImpl) DeleteUser(ctx context.Context, userID string) error {
	ok, err := s.userRepo.Delete(ctx, userID)
	if err != nil {
		logger.Error("[DeleteUser] err userRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !ok {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	logger.Info("[DeleteUser] user deleted", zap.String("user_id", userID))
	return nil
}

// Export dumps every user and request. Password hashes never leave the service.
func (s *UserAppImpl) Export(ctx context.Context) (*model.ExportData, error) {
	users, err := s.userRepo.List(ctx, nil)
	if err != nil {
		logger.Error("[Export] err userRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	requests, err := s.requestRepo.List(ctx, nil)
	if err != nil {
		logger.Error("[Export] err requestRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	for i := range users {
		users[i].PasswordHash = ""
	}
	return &model.ExportData{Users: users, Requests: requests}, nil
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
	if claims.Subject == "" {
		return nil, fmt.Errorf("token missing subject")
	}
	if claims.ID == "" {
		return nil, fmt.Errorf("token missing jti")
	}
	return claims, nil
}

// generateJWT creates a JWT token for the user
func (s *UserAppImpl) generateJWT(userID string) (string, string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Auth.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
