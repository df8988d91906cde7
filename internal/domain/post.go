package domain

import "time"

// Post is the unit of content. Author and PubDate are fixed at creation;
// only Text and Group change afterwards, and only through the edit flow.
type Post struct {
	Id      PostId
	Text    PostText
	Author  User
	Group   *Group // nil means the post is not assigned to any group
	PubDate time.Time
}
