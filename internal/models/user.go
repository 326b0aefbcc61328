package models

// Operator is a dashboard account loaded from configuration.
type Operator struct {
	Email    string
	FullName string
	Password string // bcrypt hash
	Role     string
}

const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)
