package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"Community_API/internal/model"
	"Community_API/internal/pkg"
	"Community_API/internal/repository/store"

	"golang.org/x/crypto/bcrypt"
)

// SessionStore 记录有效 token 的 jti，Redis 未配置时为 nil
type SessionStore interface {
	Add(ctx context.Context, jti string, userID uint64, ttl time.Duration) error
	Exists(ctx context.Context, jti string) (bool, error)
	Delete(ctx context.Context, jti string) error
}

// Mailer 发送欢迎邮件，SMTP 未配置时为 nil
type Mailer interface {
	SendWelcome(to, name string) error
}

type AuthService struct {
	users    *store.UserRepository
	tokens   *pkg.TokenIssuer
	sessions SessionStore
	mailer   Mailer
}

func NewAuthService(users *store.UserRepository, tokens *pkg.TokenIssuer, sessions SessionStore, mailer Mailer) *AuthService {
	return &AuthService{users: users, tokens: tokens, sessions: sessions, mailer: mailer}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignUp 创建用户并签发 token
func (s *AuthService) SignUp(ctx context.Context, name, email, password string) (*model.User, string, error) {
	name, err := pkg.TrimName(name)
	if err != nil {
		return nil, "", err
	}
	email = normalizeEmail(email)

	_, err = s.users.FindByEmail(ctx, email)
	if err == nil {
		return nil, "", emailExists()
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, "", emailExists()
		}
		return nil, "", err
	}

	token, err := s.issue(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}

	if s.mailer != nil {
		go s.welcome(user.Email, user.Name)
	}
	return user, token, nil
}

func emailExists() *pkg.AppError {
	return pkg.ErrResourceExists("email", "User with this email address already exists.")
}

func (s *AuthService) welcome(to, name string) {
	if err := s.mailer.SendWelcome(to, name); err != nil {
		slog.Warn("welcome mail failed", "to", to, "error", err)
	}
}

// SignIn 校验邮箱密码；用户不存在和密码错误返回同一个错误
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, store.ErrNotFound) {
		return nil, "", pkg.ErrInvalidCredentials()
	}
	if err != nil {
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", pkg.ErrInvalidCredentials()
	}

	token, err := s.issue(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) issue(ctx context.Context, userID uint64) (string, error) {
	token, claims, err := s.tokens.Issue(userID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	if s.sessions != nil {
		if err := s.sessions.Add(ctx, claims.ID, userID, s.tokens.TTL()); err != nil {
			return "", fmt.Errorf("store session: %w", err)
		}
	}
	return token, nil
}

// Authenticate 解析 token，启用 Redis 时还要求 session 存在
func (s *AuthService) Authenticate(ctx context.Context, token string) (*pkg.Claims, error) {
	if token == "" {
		return nil, pkg.ErrNotSignedIn()
	}
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, pkg.ErrNotSignedIn()
	}
	if s.sessions != nil {
		ok, err := s.sessions.Exists(ctx, claims.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, pkg.ErrNotSignedIn()
		}
	}
	return claims, nil
}

// Me 当前用户；token 有效但用户已不存在时视为未登录
func (s *AuthService) Me(ctx context.Context, userID uint64) (*model.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, pkg.ErrNotSignedIn()
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) SignOut(ctx context.Context, claims *pkg.Claims) error {
	if s.sessions == nil || claims == nil {
		return nil
	}
	return s.sessions.Delete(ctx, claims.ID)
}

// TokenTTL 用于 cookie 的 MaxAge
func (s *AuthService) TokenTTL() time.Duration {
	return s.tokens.TTL()
}
