package entity

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleCustomer Role = "CUSTOMER"
)

type UserStatus string

const (
	UserActive   UserStatus = "ACTIVE"
	UserInactive UserStatus = "INACTIVE"
	UserBlocked  UserStatus = "BLOCKED"
)

// User is a portal account. Customers are restaurant owners.
type User struct {
	ID             int64      `json:"id"`
	Email          string     `json:"email"`
	Name           string     `json:"name"`
	PhoneNumber    string     `json:"phoneNumber,omitempty"`
	Avatar         string     `json:"avatar,omitempty"`
	RestaurantName string     `json:"restaurantName,omitempty"`
	Address        string     `json:"address,omitempty"`
	Role           Role       `json:"role"`
	Status         UserStatus `json:"status"`
	Audit
}

func (u User) IsAdmin() bool { return u.Role == RoleAdmin }
