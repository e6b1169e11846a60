package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"ser-backend/models"
)

const userColumns = `id, username, password_hash, display_name, email, avatar_url, gender,
	is_admin, is_banned, ban_reason, created_at, last_active, profile_completed`

// AuthService provides registration, authentication and profile management
// on top of the relational user store.
type AuthService struct {
	db  *sql.DB
	log *logrus.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(db *sql.DB, log *logrus.Logger) *AuthService {
	return &AuthService{db: db, log: log}
}

// Register membuat user baru dengan password yang di-hash dan mengembalikan user tersebut.
// Cek keunikan username dan insert berjalan dalam satu transaksi.
func (s *AuthService) Register(username, password, displayName string) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.log.Error("Error hashing password: ", err)
		return nil, errors.New("failed to hash password")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// Cek apakah username sudah dipakai
	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists); err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hashedPassword),
		DisplayName:  &displayName,
		CreatedAt:    now,
		LastActive:   now,
	}

	query := `INSERT INTO users (id, username, password_hash, display_name, created_at, last_active, profile_completed)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

	if _, err := tx.Exec(query, user.ID, user.Username, user.PasswordHash, displayName,
		user.CreatedAt, user.LastActive, false); err != nil {
		s.log.Error("Error creating user: ", err)
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate memverifikasi username dan password terhadap hash yang tersimpan.
// User tidak ditemukan dan password salah sengaja dikembalikan sebagai error
// yang sama supaya username tidak bisa di-enumerate.
func (s *AuthService) Authenticate(username, password string) (*models.User, error) {
	user, err := s.getUser(`SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	if errors.Is(err, ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	} else if err != nil {
		return nil, fmt.Errorf("kesalahan saat mengambil data pengguna: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// TouchLastActive updates last_active to the current time after a successful login.
func (s *AuthService) TouchLastActive(userID string) (time.Time, error) {
	now := time.Now().UTC()
	if _, err := s.db.Exec(`UPDATE users SET last_active = $1 WHERE id = $2`, now, userID); err != nil {
		s.log.Error("Gagal memperbarui last_active: ", err)
		return time.Time{}, err
	}
	return now, nil
}

// GetByID retrieves a single user by their ID.
func (s *AuthService) GetByID(id string) (*models.User, error) {
	return s.getUser(`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// UpdateProfile menerapkan update parsial pada kolom profil: hanya field yang
// terisi di request yang diubah. Kalau complete bernilai true, flag
// profile_completed ikut di-set tanpa syarat.
func (s *AuthService) UpdateProfile(id string, req *models.ProfileRequest, complete bool) (*models.User, error) {
	var (
		sets []string
		args []interface{}
	)

	if dn := req.ResolvedDisplayName(); dn != "" {
		sets = append(sets, fmt.Sprintf("display_name = $%d", len(args)+1))
		args = append(args, dn)
	}
	if req.Gender != "" {
		sets = append(sets, fmt.Sprintf("gender = $%d", len(args)+1))
		args = append(args, req.Gender)
	}
	if req.AvatarURL != "" {
		sets = append(sets, fmt.Sprintf("avatar_url = $%d", len(args)+1))
		args = append(args, req.AvatarURL)
	}
	if complete {
		sets = append(sets, fmt.Sprintf("profile_completed = $%d", len(args)+1))
		args = append(args, true)
	}

	// Body kosong pada update-profile adalah no-op yang valid
	if len(sets) == 0 {
		return s.GetByID(id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d`, strings.Join(sets, ", "), len(args))

	res, err := s.db.Exec(query, args...)
	if err != nil {
		s.log.Error("Gagal memperbarui profil: ", err)
		return nil, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, ErrUserNotFound
	}

	return s.GetByID(id)
}

func (s *AuthService) getUser(query string, arg interface{}) (*models.User, error) {
	var user models.User
	err := s.db.QueryRow(query, arg).Scan(
		&user.ID, &user.Username, &user.PasswordHash,
		&user.DisplayName, &user.Email, &user.AvatarURL, &user.Gender,
		&user.IsAdmin, &user.IsBanned, &user.BanReason,
		&user.CreatedAt, &user.LastActive, &user.ProfileCompleted,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	} else if err != nil {
		return nil, err
	}
	return &user, nil
}
