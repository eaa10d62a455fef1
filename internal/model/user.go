package model

import "time"

// Role names stored in the users.role column.  Landlords manage
// properties and approve visits; tenants browse listings and request
// visits.  The values are upper-cased in the database and in JWT
// claims.
const (
    RoleLandlord = "LANDLORD"
    RoleTenant   = "TENANT"
)

// User represents an application user record as stored in the
// `users` table.  Each field corresponds to a column in the
// database.  Personally identifiable fields (full name, phone) are
// stored encrypted; the FullNameEnc and PhoneEnc fields hold the
// ciphertext and are never returned to clients directly.  Handlers
// define separate response types with decrypted display values.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Email        – unique email address.
//  PasswordHash – bcrypt hashed password.
//  Role         – role name (LANDLORD or TENANT).
//  FullNameEnc  – AES-GCM ciphertext of the user's full name.
//  PhoneEnc     – AES-GCM ciphertext of the user's phone number (nullable).
//  IsActive     – whether the account is active.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
    ID           uint64    // users.id
    Email        string    // users.email
    PasswordHash string    // users.password_hash
    Role         string    // users.role
    FullNameEnc  string    // users.full_name_enc
    PhoneEnc     *string   // users.phone_enc (nullable)
    IsActive     bool      // users.is_active
    CreatedAt    time.Time // users.created_at
    UpdatedAt    time.Time // users.updated_at
}

// RefreshToken models an entry in the `refresh_tokens` table.  Each
// refresh token belongs to a user and carries metadata for expiry
// and revocation.  The plain token is not stored; only its
// SHA-256 hash.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – owner of the token.
//  TokenHash – SHA-256 hex digest of the token value.
//  ExpiresAt – expiration timestamp of the token.
//  RevokedAt – when the token was revoked (null if still active).
//  CreatedAt – timestamp of creation.
type RefreshToken struct {
    ID        uint64     // refresh_tokens.id
    UserID    uint64     // refresh_tokens.user_id
    TokenHash string     // refresh_tokens.token_hash
    ExpiresAt time.Time  // refresh_tokens.expires_at
    RevokedAt *time.Time // refresh_tokens.revoked_at (nullable)
    CreatedAt time.Time  // refresh_tokens.created_at
}
