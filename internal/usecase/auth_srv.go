package usecase

import (
	"context"
	"fmt"
	"time"

	"truetimeshare/internal/data/entity"
	"truetimeshare/internal/data/repository"
	"truetimeshare/internal/dto/request"
	"truetimeshare/internal/dto/response"
	"truetimeshare/pkg/notify"
	"truetimeshare/pkg/token"
	"truetimeshare/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const codeLength = 4

type AuthService interface {
	LoginByEmail(ctx context.Context, req *request.LoginByEmailRequest) (*response.LoginResponse, error)
	LoginByPhone(ctx context.Context, req *request.LoginByPhoneRequest) (*response.LoginResponse, error)
	AdminLogin(ctx context.Context, req *request.LoginByEmailRequest) (*response.AdminLoginResponse, error)
	Logout(ctx context.Context, userID uuid.UUID) error

	Register(ctx context.Context, req *request.RegisterRequest) error
	RegisterFromLanding(ctx context.Context, req *request.LandingRegisterRequest) error
	VerifyRegisterToken(ctx context.Context, tokenStr string) error
	VerifyRegisterCode(ctx context.Context, phone, code string) error
	ResendRegisterCode(ctx context.Context, phone string) error
	UpdateRegisterPassword(ctx context.Context, phone, password string) error

	RegenerateToken(ctx context.Context, refreshToken string) (*response.TokenPairResponse, error)

	SendResetLink(ctx context.Context, email string) error
	SendResetCode(ctx context.Context, phone string) error
	VerifyResetToken(ctx context.Context, tokenStr string) error
	VerifyResetCode(ctx context.Context, phone, code string) error
	ResendResetCode(ctx context.Context, phone string) error
	ResetPasswordByToken(ctx context.Context, tokenStr, password string) error
	ResetPasswordByPhone(ctx context.Context, phone, password string) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	issuer *token.Issuer
	mailer notify.Mailer
	sms    notify.SMSSender
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	issuer *token.Issuer,
	mailer notify.Mailer,
	sms notify.SMSSender,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		issuer: issuer,
		mailer: mailer,
		sms:    sms,
		log:    log,
	}
}

// ==================== LOGIN / LOGOUT ====================

func (s *authService) LoginByEmail(ctx context.Context, req *request.LoginByEmailRequest) (*response.LoginResponse, error) {
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err))
		return nil, fmt.Errorf("login by email: %w", err)
	}

	return s.login(ctx, user, req.Password)
}

func (s *authService) LoginByPhone(ctx context.Context, req *request.LoginByPhoneRequest) (*response.LoginResponse, error) {
	user, err := s.repo.User.FindByPhone(ctx, req.Phone)
	if err != nil {
		s.log.Error("Failed to find user by phone", zap.Error(err))
		return nil, fmt.Errorf("login by phone: %w", err)
	}

	return s.login(ctx, user, req.Password)
}

// login applies the uniform credential check: any of no-user,
// wrong-status or wrong-password collapses to ErrUnauthorized so the
// caller can't enumerate accounts.
func (s *authService) login(ctx context.Context, user *entity.User, password string) (*response.LoginResponse, error) {
	if user == nil || user.Status != entity.StatusActive || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrUnauthorized
	}

	accessToken, refreshToken, err := s.rotateTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	return &response.LoginResponse{
		User:         response.UserToResponse(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *authService) AdminLogin(ctx context.Context, req *request.LoginByEmailRequest) (*response.AdminLoginResponse, error) {
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find admin by email", zap.Error(err))
		return nil, fmt.Errorf("admin login: %w", err)
	}

	if user == nil ||
		user.Role != entity.RoleAdmin ||
		user.Status != entity.StatusActive ||
		!utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, ErrUnauthorized
	}

	accessToken, err := s.issuer.IssueAccess(identityOf(user))
	if err != nil {
		s.log.Error("Failed to issue admin access token", zap.Error(err))
		return nil, fmt.Errorf("issue admin access token: %w", err)
	}

	s.log.Info("Admin logged in", zap.String("user_id", user.ID.String()))

	return &response.AdminLoginResponse{
		User:        response.UserToResponse(user),
		AccessToken: accessToken,
	}, nil
}

// Logout deletes every refresh token the caller owns. Deleting zero
// rows is still success.
func (s *authService) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := s.repo.RefreshToken.DeleteByUser(ctx, userID); err != nil {
		s.log.Error("Failed to delete refresh tokens on logout",
			zap.Error(err), zap.String("user_id", userID.String()))
		return fmt.Errorf("logout: %w", err)
	}

	s.log.Info("User logged out", zap.String("user_id", userID.String()))
	return nil
}

// rotateTokens replaces the user's persisted refresh token and mints a
// fresh access/refresh pair. At most one live refresh token per user.
func (s *authService) rotateTokens(ctx context.Context, user *entity.User) (access, refresh string, err error) {
	id := identityOf(user)

	access, err = s.issuer.IssueAccess(id)
	if err != nil {
		s.log.Error("Failed to issue access token", zap.Error(err))
		return "", "", fmt.Errorf("issue access token: %w", err)
	}

	refresh, err = s.issuer.IssueRefresh(id)
	if err != nil {
		s.log.Error("Failed to issue refresh token", zap.Error(err))
		return "", "", fmt.Errorf("issue refresh token: %w", err)
	}

	now := time.Now()
	rt := &entity.RefreshToken{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
		UserID:     user.ID,
		Token:      refresh,
		Expiry:     now.Add(s.issuer.RefreshTTL()),
	}

	if err := s.repo.RefreshToken.Replace(ctx, rt); err != nil {
		return "", "", err
	}

	return access, refresh, nil
}

// ==================== REGISTRATION ====================

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) error {
	switch entity.SignMode(req.Mode) {
	case entity.SignModeEmail:
		return s.registerByEmail(ctx, req.Email, req.Password, "", "")
	case entity.SignModePhone:
		return s.registerByPhone(ctx, req.Phone)
	default:
		return fmt.Errorf("%w: unknown sign mode %q", ErrValidation, req.Mode)
	}
}

func (s *authService) RegisterFromLanding(ctx context.Context, req *request.LandingRegisterRequest) error {
	return s.registerByEmail(ctx, req.Email, req.Password, req.FirstName, req.LastName)
}

func (s *authService) registerByEmail(ctx context.Context, email, password, firstName, lastName string) error {
	// Restart semantics: a pending holder of the email is discarded, an
	// active or suspended one is a hard conflict.
	if err := s.clearPendingOrConflict(ctx, s.findByEmail(ctx, email)); err != nil {
		return err
	}

	hashed, err := utils.HashPassword(password, s.config.Bcrypt.Cost)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Role:         entity.RoleOwner,
		Email:        &email,
		PasswordHash: hashed,
		FirstName:    firstName,
		LastName:     lastName,
		Status:       entity.StatusPending,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		return err
	}

	grant, err := s.issueGrant(ctx, user.ID, entity.GrantKindRegister, entity.SignModeEmail, s.config.Signup.ExpiryHours)
	if err != nil {
		return err
	}

	s.dispatchVerifyLink(ctx, email, grant.Token)

	s.log.Info("User registered by email", zap.String("user_id", user.ID.String()))
	return nil
}

func (s *authService) registerByPhone(ctx context.Context, phone string) error {
	if err := s.clearPendingOrConflict(ctx, s.findByPhone(ctx, phone)); err != nil {
		return err
	}

	// Password arrives later in the phone flow (token-then-password).
	now := time.Now()
	user := &entity.User{
		Base:   entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Role:   entity.RoleOwner,
		Phone:  &phone,
		Status: entity.StatusPending,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		return err
	}

	grant, err := s.issueGrant(ctx, user.ID, entity.GrantKindRegister, entity.SignModePhone, s.config.Signup.ExpiryHours)
	if err != nil {
		return err
	}

	s.dispatchCode(ctx, phone, grant.Code)

	s.log.Info("User registered by phone", zap.String("user_id", user.ID.String()))
	return nil
}

type userLookup struct {
	user *entity.User
	err  error
}

func (s *authService) findByEmail(ctx context.Context, email string) userLookup {
	user, err := s.repo.User.FindByEmail(ctx, email)
	return userLookup{user: user, err: err}
}

func (s *authService) findByPhone(ctx context.Context, phone string) userLookup {
	user, err := s.repo.User.FindByPhone(ctx, phone)
	return userLookup{user: user, err: err}
}

func (s *authService) clearPendingOrConflict(ctx context.Context, lookup userLookup) error {
	if lookup.err != nil {
		s.log.Error("Failed to check existing user", zap.Error(lookup.err))
		return fmt.Errorf("check existing user: %w", lookup.err)
	}

	existing := lookup.user
	if existing == nil {
		return nil
	}

	if existing.Status != entity.StatusPending {
		return ErrConflict
	}

	if err := s.repo.Grant.DeleteByUser(ctx, entity.GrantKindRegister, existing.ID); err != nil {
		return err
	}
	if err := s.repo.User.Delete(ctx, existing.ID); err != nil {
		return err
	}

	s.log.Info("Discarded superseded pending registration",
		zap.String("user_id", existing.ID.String()))
	return nil
}

func (s *authService) VerifyRegisterToken(ctx context.Context, tokenStr string) error {
	grant, err := s.repo.Grant.FindByToken(ctx, entity.GrantKindRegister, tokenStr)
	if err != nil {
		return err
	}

	if err := validateGrant(grant, ""); err != nil {
		return err
	}

	if err := s.repo.Grant.MarkAccepted(ctx, entity.GrantKindRegister, grant.Token); err != nil {
		return err
	}

	if err := s.repo.User.UpdateStatus(ctx, grant.UserID, entity.StatusActive); err != nil {
		return err
	}

	s.log.Info("Registration verified by token", zap.String("user_id", grant.UserID.String()))
	return nil
}

func (s *authService) VerifyRegisterCode(ctx context.Context, phone, code string) error {
	grant, err := s.grantByPhone(ctx, entity.GrantKindRegister, phone)
	if err != nil {
		return err
	}

	if err := validateGrant(grant, code); err != nil {
		return err
	}

	if err := s.repo.Grant.MarkAccepted(ctx, entity.GrantKindRegister, grant.Token); err != nil {
		return err
	}

	// Activation waits for the trailing password step.
	s.log.Info("Registration code verified", zap.String("user_id", grant.UserID.String()))
	return nil
}

func (s *authService) ResendRegisterCode(ctx context.Context, phone string) error {
	return s.resendCode(ctx, entity.GrantKindRegister, phone, s.config.Signup.ExpiryHours)
}

// UpdateRegisterPassword is the trailing step of the phone flow: once
// the code has been accepted, the password lands and the account goes
// active.
func (s *authService) UpdateRegisterPassword(ctx context.Context, phone, password string) error {
	user, err := s.repo.User.FindByPhone(ctx, phone)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}

	grant, err := s.repo.Grant.FindByUser(ctx, entity.GrantKindRegister, user.ID)
	if err != nil {
		return err
	}
	if grant == nil {
		return ErrNotFound
	}
	if !grant.Accepted {
		return ErrCodeMismatch
	}

	hashed, err := utils.HashPassword(password, s.config.Bcrypt.Cost)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.User.UpdatePassword(ctx, user.ID, hashed); err != nil {
		return err
	}
	if err := s.repo.User.UpdateStatus(ctx, user.ID, entity.StatusActive); err != nil {
		return err
	}

	s.log.Info("Registration completed by phone", zap.String("user_id", user.ID.String()))
	return nil
}

// ==================== REFRESH ROTATION ====================

func (s *authService) RegenerateToken(ctx context.Context, refreshToken string) (*response.TokenPairResponse, error) {
	row, err := s.repo.RefreshToken.FindByToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}
	if row.Expiry.Before(time.Now()) {
		return nil, ErrExpired
	}

	// The embedded JWT must verify and its subject must match the row's
	// owner; a swapped token string fails here.
	claims, err := s.issuer.Verify(refreshToken, token.KindRefresh)
	if err != nil {
		return nil, ErrUnauthorized
	}
	if claims.UserID != row.UserID {
		return nil, ErrUnauthorized
	}

	user, err := s.repo.User.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	access, refresh, err := s.rotateTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info("Refresh token rotated", zap.String("user_id", user.ID.String()))

	return &response.TokenPairResponse{
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

// ==================== PASSWORD RESET ====================

func (s *authService) SendResetLink(ctx context.Context, email string) error {
	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil || user.Status != entity.StatusActive {
		return ErrNotFound
	}

	grant, err := s.issueGrant(ctx, user.ID, entity.GrantKindReset, entity.SignModeEmail, s.config.Forgot.ExpiryHours)
	if err != nil {
		return err
	}

	s.dispatchResetLink(ctx, email, grant.Token)

	s.log.Info("Reset link issued", zap.String("user_id", user.ID.String()))
	return nil
}

func (s *authService) SendResetCode(ctx context.Context, phone string) error {
	user, err := s.repo.User.FindByPhone(ctx, phone)
	if err != nil {
		return err
	}
	if user == nil || user.Status != entity.StatusActive {
		return ErrNotFound
	}

	grant, err := s.issueGrant(ctx, user.ID, entity.GrantKindReset, entity.SignModePhone, s.config.Forgot.ExpiryHours)
	if err != nil {
		return err
	}

	s.dispatchCode(ctx, phone, grant.Code)

	s.log.Info("Reset code issued", zap.String("user_id", user.ID.String()))
	return nil
}

// VerifyResetToken only confirms the grant is consumable; the password
// write happens in a separate step.
func (s *authService) VerifyResetToken(ctx context.Context, tokenStr string) error {
	grant, err := s.repo.Grant.FindByToken(ctx, entity.GrantKindReset, tokenStr)
	if err != nil {
		return err
	}

	return validateGrant(grant, "")
}

func (s *authService) VerifyResetCode(ctx context.Context, phone, code string) error {
	grant, err := s.grantByPhone(ctx, entity.GrantKindReset, phone)
	if err != nil {
		return err
	}

	if err := validateGrant(grant, code); err != nil {
		return err
	}

	if err := s.repo.Grant.MarkAccepted(ctx, entity.GrantKindReset, grant.Token); err != nil {
		return err
	}

	s.log.Info("Reset code verified", zap.String("user_id", grant.UserID.String()))
	return nil
}

func (s *authService) ResendResetCode(ctx context.Context, phone string) error {
	return s.resendCode(ctx, entity.GrantKindReset, phone, s.config.Forgot.ExpiryHours)
}

// ResetPasswordByToken consumes the reset grant and writes the new
// password in one step (email channel carries token and password
// together).
func (s *authService) ResetPasswordByToken(ctx context.Context, tokenStr, password string) error {
	grant, err := s.repo.Grant.FindByToken(ctx, entity.GrantKindReset, tokenStr)
	if err != nil {
		return err
	}

	if err := validateGrant(grant, ""); err != nil {
		return err
	}

	user, err := s.repo.User.FindByID(ctx, grant.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}

	hashed, err := utils.HashPassword(password, s.config.Bcrypt.Cost)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.Grant.MarkAccepted(ctx, entity.GrantKindReset, grant.Token); err != nil {
		return err
	}
	if err := s.repo.User.UpdatePassword(ctx, user.ID, hashed); err != nil {
		return err
	}

	s.log.Info("Password reset by token", zap.String("user_id", user.ID.String()))
	return nil
}

// ResetPasswordByPhone finalizes the phone reset: requires the code to
// have been accepted already and the grant still within its expiry.
func (s *authService) ResetPasswordByPhone(ctx context.Context, phone, password string) error {
	user, err := s.repo.User.FindByPhone(ctx, phone)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}

	grant, err := s.repo.Grant.FindByUser(ctx, entity.GrantKindReset, user.ID)
	if err != nil {
		return err
	}
	if grant == nil {
		return ErrNotFound
	}
	if !grant.Accepted {
		return ErrCodeMismatch
	}
	if grant.Expired(time.Now()) {
		return ErrExpired
	}

	hashed, err := utils.HashPassword(password, s.config.Bcrypt.Cost)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.User.UpdatePassword(ctx, user.ID, hashed); err != nil {
		return err
	}

	s.log.Info("Password reset by phone", zap.String("user_id", user.ID.String()))
	return nil
}

// ==================== HELPER METHODS ====================

// validateGrant applies the uniform four-step check in fixed order:
// existence, expiry, acceptance, code. The ordering matters — an
// expired-but-accepted grant must report expired, not already-used.
func validateGrant(grant *entity.Grant, code string) error {
	if grant == nil {
		return ErrNotFound
	}
	if grant.Expired(time.Now()) {
		return ErrExpired
	}
	if grant.Accepted {
		return ErrAlreadyUsed
	}
	if code != "" && grant.Code != code {
		return ErrCodeMismatch
	}
	return nil
}

func (s *authService) issueGrant(ctx context.Context, userID uuid.UUID, kind entity.GrantKind, mode entity.SignMode, ttlHours int) (*entity.Grant, error) {
	now := time.Now()
	grant := &entity.Grant{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
		UserID:     userID,
		Kind:       kind,
		Mode:       mode,
		Token:      utils.GenerateGrantToken(),
		Code:       utils.GenerateCode(codeLength),
		Expiry:     now.Add(time.Duration(ttlHours) * time.Hour),
		Accepted:   false,
	}

	if err := s.repo.Grant.Issue(ctx, grant); err != nil {
		return nil, err
	}

	return grant, nil
}

func (s *authService) grantByPhone(ctx context.Context, kind entity.GrantKind, phone string) (*entity.Grant, error) {
	user, err := s.repo.User.FindByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	return s.repo.Grant.FindByUser(ctx, kind, user.ID)
}

func (s *authService) resendCode(ctx context.Context, kind entity.GrantKind, phone string, ttlHours int) error {
	grant, err := s.grantByPhone(ctx, kind, phone)
	if err != nil {
		return err
	}
	if grant == nil {
		return ErrNotFound
	}

	code := utils.GenerateCode(codeLength)
	expiry := time.Now().Add(time.Duration(ttlHours) * time.Hour)

	if err := s.repo.Grant.Refresh(ctx, kind, grant.Token, code, expiry); err != nil {
		return err
	}

	s.dispatchCode(ctx, phone, code)

	s.log.Info("Verification code resent",
		zap.String("user_id", grant.UserID.String()),
		zap.String("kind", string(kind)))
	return nil
}

func identityOf(user *entity.User) token.Identity {
	return token.Identity{
		ID:     user.ID,
		Role:   string(user.Role),
		Email:  user.EmailOrEmpty(),
		Phone:  user.PhoneOrEmpty(),
		Status: string(user.Status),
	}
}

// ==================== NOTIFICATION DISPATCH ====================
//
// Dispatch is best-effort: failures are logged and swallowed, the flow
// has already committed its state. Outside production nothing is sent.

func (s *authService) dispatchVerifyLink(ctx context.Context, email, tokenStr string) {
	if !s.config.IsProduction() {
		return
	}

	site := s.config.App.Name
	body := fmt.Sprintf("Hi. Welcome to %s. To complete your sign-up, please click following link. %s/verify/%s",
		site, s.config.App.Frontend, tokenStr)

	err := s.mailer.SendEmail(ctx, notify.EmailMessage{
		To:      email,
		Subject: fmt.Sprintf("Welcome to %s", site),
		Text:    body,
		HTML:    body,
	})
	if err != nil {
		s.log.Error("Failed to send verification email", zap.Error(err), zap.String("email", email))
	}
}

func (s *authService) dispatchResetLink(ctx context.Context, email, tokenStr string) {
	if !s.config.IsProduction() {
		return
	}

	site := s.config.App.Name
	body := fmt.Sprintf("Hi. Welcome to %s. To reset your password, please click following link. %s/reset/%s",
		site, s.config.App.Frontend, tokenStr)

	err := s.mailer.SendEmail(ctx, notify.EmailMessage{
		To:      email,
		Subject: fmt.Sprintf("Welcome to %s", site),
		Text:    body,
		HTML:    body,
	})
	if err != nil {
		s.log.Error("Failed to send reset email", zap.Error(err), zap.String("email", email))
	}
}

func (s *authService) dispatchCode(ctx context.Context, phone, code string) {
	if !s.config.IsProduction() {
		return
	}

	err := s.sms.SendSMS(ctx, notify.SMSMessage{
		To:   "+" + phone,
		Body: fmt.Sprintf("Your %s verification code is: %s", s.config.App.Name, code),
	})
	if err != nil {
		s.log.Error("Failed to send verification SMS", zap.Error(err), zap.String("phone", phone))
	}
}
