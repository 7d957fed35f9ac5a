package account

type UserAccountDB struct {
	ID       int64
	Username string
	Password string
	Role     string
	Status   string
}
