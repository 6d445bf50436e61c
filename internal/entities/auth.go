package entities

type Credentials struct {
	Email    string
	Password string
}

type Registration struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

type User struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
}

type AuthResult struct {
	Token string
	User  User
}
