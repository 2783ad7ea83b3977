package usecase

import (
	"context"
	"errors"
	"net/http"
	"net/mail"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// UUID 等のIDを作る約束
type IDGenerator interface {
	NewID() string
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

// アクセストークンを発行する約束（実装はmain.go）。
type TokenIssuer interface {
	Issue(userID string, role model.Role, tenantID string, now time.Time) (token string, expiresAt time.Time, err error)
}

var (
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthUsecase は会員登録とログイン。
// セッションプロトコル（refresh等）はここでは扱わない。
type AuthUsecase struct {
	userRepo repo.UserRepository
	issuer   TokenIssuer
	idGen    IDGenerator
	clock    Clock
	cost     int
}

// DI
func NewAuthUsecase(
	userRepo repo.UserRepository,
	issuer TokenIssuer,
	idGen IDGenerator,
	clock Clock,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo: userRepo,
		issuer:   issuer,
		idGen:    idGen,
		clock:    clock,
		cost:     12,
	}
}

type RegisterInput struct {
	Email    string
	Password string
}

type RegisterOutput struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// Register は会員登録。テナント未所属のまま作る（オンボーディングは別）。
func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (RegisterOutput, error) {
	var out RegisterOutput

	if _, err := mail.ParseAddress(in.Email); err != nil {
		return out, ErrInvalidEmailFormat
	}

	// 最小12文字
	if len(in.Password) < 12 {
		return out, ErrPasswordTooShort
	}

	existing, err := u.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return out, err
	}
	if existing != nil {
		return out, ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), u.cost)
	if err != nil {
		return out, err
	}

	now := u.clock.Now()
	user := model.User{
		ID:           u.idGen.NewID(),
		Email:        in.Email,
		PasswordHash: string(hashed),
		Role:         model.RoleUser,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.userRepo.Create(ctx, &user); err != nil {
		return out, err
	}

	out.UserID = user.ID
	out.Email = user.Email
	return out, nil
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	TenantID    string    `json:"tenant_id"`
}

// Login はパスワード検証してアクセストークンを返す。
func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (LoginOutput, error) {
	var out LoginOutput

	user, err := u.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return out, err
	}
	if user == nil || !user.IsActive {
		return out, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return out, ErrInvalidCredentials
	}

	now := u.clock.Now()
	token, expiresAt, err := u.issuer.Issue(user.ID, user.Role, user.TenantID, now)
	if err != nil {
		return out, NewHTTPError(http.StatusInternalServerError, "token issue failed")
	}

	//最終ログインを更新（失敗してもログインは成立）
	user.LastLoginAt = &now
	_ = u.userRepo.Update(ctx, user)

	out.AccessToken = token
	out.ExpiresAt = expiresAt
	out.TenantID = user.TenantID
	return out, nil
}
