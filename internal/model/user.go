package model

// Role classifies an account. The set is closed: values outside the three
// constants are rejected at the API boundary instead of being stored.
type Role string

const (
	RoleUser      Role = "user"
	RoleAuthority Role = "authority"
	RoleVolunteer Role = "volunteer"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAuthority, RoleVolunteer:
		return true
	}
	return false
}

// User represents a registered account. The credential is stored as a
// bcrypt hash and is never serialized, so API responses carry the record
// without a separate stripping step in the handlers.
//
// Fields:
//  ID              – unique identifier of the user.
//  Username        – unique display name.
//  PasswordHash    – bcrypt hash of the credential secret.
//  ProfilePic      – optional URL of a profile image.
//  Verified        – whether the account has been verified.
//  CommunityPoints – non-negative score earned through participation.
//  Role            – account role (user, authority or volunteer).
//  OrganizationID  – organization for authorities and volunteers.
//  Jurisdiction    – geographic area string for authority accounts.
type User struct {
	ID              string  `json:"id"`
	Username        string  `json:"username"`
	PasswordHash    string  `json:"-"`
	ProfilePic      *string `json:"profilePic"`
	Verified        bool    `json:"verified"`
	CommunityPoints float64 `json:"communityPoints"`
	Role            Role    `json:"role"`
	OrganizationID  *string `json:"organizationId"`
	Jurisdiction    *string `json:"jurisdiction"`
}
