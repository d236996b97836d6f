package models

// RoleAdmin is the only role allowed into the dashboard.
const RoleAdmin = "admin"

// StaffProfile is stored under users/{uid} in the document store.
type StaffProfile struct {
	UID   string `json:"uid" firestore:"-" bson:"_id"`
	Email string `json:"email" firestore:"email" bson:"email"`
	Name  string `json:"name" firestore:"name" bson:"name"`
	Role  string `json:"role" firestore:"role" bson:"role"`
}

// NewStaffRequest is the admin form for adding a staff member.
type NewStaffRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// AuthResponse is returned by a successful admin login.
type AuthResponse struct {
	UID       string `json:"uid"`
	Token     string `json:"token"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	ExpiresAt int64  `json:"expiresAt"`
}
