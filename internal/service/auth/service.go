package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/Muhammedsajid10/spaBackend/internal/domain/auth"
	"github.com/Muhammedsajid10/spaBackend/internal/domain/employee"
	"github.com/Muhammedsajid10/spaBackend/internal/domain/user"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/database"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/jwt"
	"github.com/Muhammedsajid10/spaBackend/internal/pkg/oauth"
)

type AuthServiceImpl struct {
	db *database.DB
	user.Repository
	employeeRepo  employee.Repository
	jwtService    jwt.Service
	googleService oauth.GoogleService
}

func NewAuthService(
	db *database.DB,
	userRepo user.Repository,
	employeeRepo employee.Repository,
	jwtService jwt.Service,
	googleService oauth.GoogleService,
) auth.Service {
	return &AuthServiceImpl{
		db:            db,
		Repository:    userRepo,
		employeeRepo:  employeeRepo,
		jwtService:    jwtService,
		googleService: googleService,
	}
}

// Register implements auth.Service. New accounts always start as clients.
func (s *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (*auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.Repository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, user.ErrUserEmailExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	hashedStr := string(hashed)

	created, err := s.Repository.Create(ctx, user.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: &hashedStr,
		Role:         user.RoleClient,
		IsActive:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueTokens(ctx, &created)
}

// Login implements auth.Service.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (*auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	found, err := s.Repository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !found.IsActive {
		return nil, user.ErrUserInactive
	}

	if found.PasswordHash == nil {
		// OAuth-only account
		return nil, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*found.PasswordHash), []byte(req.Password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	if err := s.Repository.UpdateLastLogin(ctx, found.ID); err != nil {
		return nil, fmt.Errorf("failed to update last login: %w", err)
	}

	return s.issueTokens(ctx, &found)
}

// Refresh implements auth.Service. The old refresh token is revoked and
// replaced in the same call.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (*auth.TokenResponse, error) {
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return nil, auth.ErrRefreshTokenRevoked
	}

	userID, err := s.jwtService.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}

	found, err := s.Repository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !found.IsActive {
		return nil, user.ErrUserInactive
	}

	s.jwtService.RevokeToken(refreshToken)

	return s.issueTokens(ctx, &found)
}

// Logout implements auth.Service.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken != "" {
		s.jwtService.RevokeToken(refreshToken)
	}
	return nil
}

// ChangePassword implements auth.Service.
func (s *AuthServiceImpl) ChangePassword(ctx context.Context, req auth.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	userID, err := userIDFromClaims(ctx)
	if err != nil {
		return err
	}

	found, err := s.Repository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if found.PasswordHash == nil {
		return auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*found.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return auth.ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.Repository.UpdatePassword(ctx, userID, string(hashed))
}

// GoogleAuthURL implements auth.Service.
func (s *AuthServiceImpl) GoogleAuthURL(state string) string {
	return s.googleService.RedirectURL(state)
}

// GoogleCallback implements auth.Service. Unknown emails get a fresh client
// account; known emails get their Google identity linked.
func (s *AuthServiceImpl) GoogleCallback(ctx context.Context, req auth.GoogleCallbackRequest) (*auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	token, err := s.googleService.VerifyToken(ctx, req.Code)
	if err != nil {
		return nil, auth.ErrOAuthExchangeFailed
	}

	info, err := s.googleService.VerifyUser(ctx, token)
	if err != nil {
		return nil, auth.ErrOAuthExchangeFailed
	}

	exists, err := s.Repository.ExistsByEmail(ctx, info.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	var account user.User
	if exists {
		account, err = s.Repository.LinkGoogleAccount(ctx, info.GoogleID, info.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to link google account: %w", err)
		}
	} else {
		provider := "google"
		account, err = s.Repository.Create(ctx, user.User{
			FirstName:       info.GivenName,
			LastName:        info.FamilyName,
			Email:           info.Email,
			Role:            user.RoleClient,
			OAuthProvider:   &provider,
			OAuthProviderID: &info.GoogleID,
			EmailVerified:   info.VerifiedEmail,
			IsActive:        true,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
	}

	if !account.IsActive {
		return nil, user.ErrUserInactive
	}

	if err := s.Repository.UpdateLastLogin(ctx, account.ID); err != nil {
		return nil, fmt.Errorf("failed to update last login: %w", err)
	}

	return s.issueTokens(ctx, &account)
}

// issueTokens builds an access and refresh token pair for the account. Staff
// accounts carry their employee ID in the access token claims.
func (s *AuthServiceImpl) issueTokens(ctx context.Context, account *user.User) (*auth.TokenResponse, error) {
	employeeID := account.EmployeeID
	if employeeID == nil && account.Role != user.RoleClient {
		emp, err := s.employeeRepo.GetByUserID(ctx, account.ID)
		if err == nil {
			employeeID = &emp.ID
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("failed to get employee: %w", err)
		}
	}

	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(account.ID, account.Email, employeeID, account.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &auth.TokenResponse{
		AccessToken:  accessToken,
		TokenType:    "Bearer",
		ExpiresAt:    expiresAt,
		RefreshToken: refreshToken,
		RefreshExp:   refreshExp,
		User:         user.ToResponse(account),
	}, nil
}

// userIDFromClaims extracts the authenticated user ID from the JWT claims.
func userIDFromClaims(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, nil
}
