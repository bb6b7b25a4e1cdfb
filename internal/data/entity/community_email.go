package entity

// CommunityEmail is a mailing-list signup.
type CommunityEmail struct {
	BaseSimple
	Email string `db:"email"`
}
