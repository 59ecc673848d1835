package entity

type Review struct {
	Base
	MovieID  int64  `db:"movie_id"`
	UserName string `db:"user_name"`
	Comment  string `db:"comment"`
	Rating   int    `db:"rating"` // 1-5
}
