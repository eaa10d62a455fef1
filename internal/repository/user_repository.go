package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/upkyp/visit-booking-service/internal/fieldcrypt"
	"github.com/upkyp/visit-booking-service/internal/model"
	"github.com/upkyp/visit-booking-service/internal/utils"
)

// UserRepo persists application users. PII fields (full name, phone)
// are encrypted with the injected cipher before they touch the
// database; plaintext never leaves the request scope.
type UserRepo struct {
	DB     *sql.DB
	Cipher *fieldcrypt.Cipher
}

func NewUserRepo(db *sql.DB, cipher *fieldcrypt.Cipher) *UserRepo {
	return &UserRepo{DB: db, Cipher: cipher}
}

// Create inserts a user and returns its ID. The password is bcrypt
// hashed and the name/phone fields are encrypted here so callers only
// ever handle plaintext.
func (r *UserRepo) Create(ctx context.Context, email, password, role, fullName, phone string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	nameEnc, err := r.Cipher.EncryptString(strings.TrimSpace(fullName))
	if err != nil {
		return 0, err
	}
	var phoneEnc *string
	if p := strings.TrimSpace(phone); p != "" {
		enc, err := r.Cipher.EncryptString(p)
		if err != nil {
			return 0, err
		}
		phoneEnc = &enc
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (email, password_hash, role, full_name_enc, phone_enc) VALUES (?,?,?,?,?)",
		email, hash, role, nameEnc, phoneEnc)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,email,password_hash,role,full_name_enc,phone_enc,is_active,created_at,updated_at FROM users WHERE email=? LIMIT 1",
		email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.FullNameEnc, &u.PhoneEnc, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,email,password_hash,role,full_name_enc,phone_enc,is_active,created_at,updated_at FROM users WHERE id=? LIMIT 1",
		id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.FullNameEnc, &u.PhoneEnc, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// DisplayName decrypts a user's full name. On decryption failure the
// repository degrades to "N/A" rather than failing the caller; the
// cipher itself reports a typed error so other call sites may choose
// to propagate instead.
func (r *UserRepo) DisplayName(u model.User) string {
	name, err := r.Cipher.DecryptString(u.FullNameEnc)
	if err != nil {
		return "N/A"
	}
	return name
}
