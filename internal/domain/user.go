package domain

import "time"

type User struct {
	Id        UserId
	Username  Username
	PassHash  string
	CreatedAt time.Time
}
