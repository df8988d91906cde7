package domain

type (
	UserId   = int64
	Username = string

	GroupId   = int64
	GroupSlug = string

	PostId   = int64
	PostText = string
)
