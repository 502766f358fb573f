package doctor

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"clinicbook/models"
	"clinicbook/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 24 * time.Hour

// verifyPasswordComplexity checks that the password contains at least
// one lowercase letter, one uppercase letter, one digit, and one symbol.
func verifyPasswordComplexity(pw string) error {
	var (
		hasMinLen = len(pw) >= 8
		hasUpper  = regexp.MustCompile(`[A-Z]`).MatchString(pw)
		hasLower  = regexp.MustCompile(`[a-z]`).MatchString(pw)
		hasNumber = regexp.MustCompile(`[0-9]`).MatchString(pw)
		hasSymbol = regexp.MustCompile(`[\W_]`).MatchString(pw)
	)
	if !hasMinLen {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	if !hasUpper {
		return fmt.Errorf("password must include at least one uppercase letter")
	}
	if !hasLower {
		return fmt.Errorf("password must include at least one lowercase letter")
	}
	if !hasNumber {
		return fmt.Errorf("password must include at least one number")
	}
	if !hasSymbol {
		return fmt.Errorf("password must include at least one symbol")
	}
	return nil
}

// Register creates a new doctor account, issues a token, and stores its
// hash for middleware verification.
func (s *DefaultDoctorService) Register(ctx context.Context, doc models.Doctor) (*AuthResponse, error) {
	if doc.Email == "" || doc.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	if doc.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if err := verifyPasswordComplexity(doc.Password); err != nil {
		return nil, err
	}

	if _, err := s.Repo.GetByEmail(ctx, doc.Email); err == nil {
		return nil, fmt.Errorf("a doctor with this email already exists")
	} else if err != mongo.ErrNoDocuments {
		utils.GetLogger().Error("Failed to check for existing doctor", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(doc.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	doc.PasswordHash = string(hashed)
	doc.Password = ""

	doc.ID = uuid.New().String()
	doc.IsActive = true
	now := time.Now()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	if err := s.Repo.Create(ctx, &doc); err != nil {
		utils.GetLogger().Error("Failed to create doctor", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	token, err := s.issueToken(ctx, &doc)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		ID:        doc.ID,
		Token:     token,
		Name:      doc.Name,
		Email:     doc.Email,
		Specialty: doc.Specialty,
	}, nil
}

// Authenticate verifies credentials and issues a fresh token. Issuing a
// new token invalidates any previously issued one, since only the
// latest hash is kept.
func (s *DefaultDoctorService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	doc, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("invalid email or password")
		}
		utils.GetLogger().Error("Failed to fetch doctor for sign-in", zap.Error(err))
		return nil, fmt.Errorf("sign-in failed, please try again")
	}
	if !doc.IsActive {
		return nil, fmt.Errorf("this account has been deactivated")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(doc.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := s.issueToken(ctx, doc)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		ID:        doc.ID,
		Token:     token,
		Name:      doc.Name,
		Email:     doc.Email,
		Specialty: doc.Specialty,
	}, nil
}

// RevokeToken signs the doctor out everywhere by clearing the stored
// token hash and the auth cache entry.
func (s *DefaultDoctorService) RevokeToken(ctx context.Context, doctorID string) error {
	if err := s.Repo.SetTokenHash(ctx, doctorID, ""); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	if s.AuthCache != nil {
		if err := s.AuthCache.Del(ctx, utils.AuthCachePrefix+doctorID).Err(); err != nil {
			utils.GetLogger().Warn("Failed to clear auth cache entry",
				zap.String("doctorID", doctorID), zap.Error(err))
		}
	}
	return nil
}

func (s *DefaultDoctorService) issueToken(ctx context.Context, doc *models.Doctor) (string, error) {
	token, err := utils.GenerateToken(doc.ID, doc.Email, tokenDuration)
	if err != nil {
		utils.GetLogger().Error("Failed to generate auth token", zap.Error(err))
		return "", fmt.Errorf("authentication failed, please try again")
	}

	hash := utils.HashToken(token)
	if err := s.Repo.SetTokenHash(ctx, doc.ID, hash); err != nil {
		utils.GetLogger().Error("Failed to store token hash", zap.Error(err))
		return "", fmt.Errorf("authentication failed, please try again")
	}
	if s.AuthCache != nil {
		if err := s.AuthCache.Set(ctx, utils.AuthCachePrefix+doc.ID, hash, time.Hour).Err(); err != nil {
			utils.GetLogger().Warn("Failed to prime auth cache", zap.Error(err))
		}
	}
	return token, nil
}
